package service

import (
	"context"

	"MiniTube.com/cmd/model"
	"MiniTube.com/pkg/cache"
	"MiniTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// VideoService 视频读模型拼装与视频生命周期管理
type VideoService struct {
	videos     VideoStore
	engagement EngagementStore
	relations  RelationStore
	countCache *cache.ViewCountCache
}

func NewVideoService(videos VideoStore, engagement EngagementStore, relations RelationStore, countCache *cache.ViewCountCache) *VideoService {
	return &VideoService{
		videos:     videos,
		engagement: engagement,
		relations:  relations,
		countCache: countCache,
	}
}

type CreateVideoParams struct {
	Title       string
	Description string
	Url         string
	Thumbnail   string
}

func (s *VideoService) CreateVideo(ctx context.Context, userId int64, params *CreateVideoParams) (*model.Video, error) {
	if params.Title == "" || params.Url == "" {
		return nil, errno.ParamErr.WithMessage("Title and url are required")
	}
	video := &model.Video{
		UserId:      userId,
		Title:       params.Title,
		Description: params.Description,
		VideoUrl:    params.Url,
		CoverUrl:    params.Thumbnail,
	}
	if err := s.videos.CreateVideo(ctx, video); err != nil {
		hlog.CtxErrorf(ctx, "failed to create video: %v", err)
		return nil, err
	}
	return video, nil
}

// DeleteVideo 归属校验通过后级联删除浏览 点赞 评论与视频本身
// 级联在一个事务内完成 不会留下半删状态
func (s *VideoService) DeleteVideo(ctx context.Context, videoId, callerId int64) error {
	video, err := s.videos.GetVideoById(ctx, videoId)
	if err != nil {
		hlog.CtxErrorf(ctx, "failed to load video %d: %v", videoId, err)
		return err
	}
	if video == nil {
		return errno.VideoNotFoundErr
	}
	if video.UserId != callerId {
		return errno.ForbiddenErr
	}

	if err := s.videos.DeleteVideoCascade(ctx, videoId); err != nil {
		hlog.CtxErrorf(ctx, "failed to cascade delete video %d: %v", videoId, err)
		return err
	}
	if err := s.countCache.Invalidate(ctx, videoId); err != nil {
		hlog.CtxWarnf(ctx, "failed to invalidate view count cache for video %d: %v", videoId, err)
	}
	return nil
}

// GetVideoDetail 拼装视频详情 基础记录 评论 衍生计数 调用方相关标志
// 纯读操作 caller为nil时所有标志保持false
func (s *VideoService) GetVideoDetail(ctx context.Context, videoId int64, caller *model.User) (*VideoDetail, error) {
	video, err := s.videos.GetVideoById(ctx, videoId)
	if err != nil {
		hlog.CtxErrorf(ctx, "failed to load video %d: %v", videoId, err)
		return nil, err
	}
	if video == nil {
		return nil, errno.VideoNotFoundErr
	}

	comments, err := s.engagement.ListVideoComments(ctx, videoId)
	if err != nil {
		hlog.CtxErrorf(ctx, "failed to list comments for video %d: %v", videoId, err)
		return nil, err
	}

	likes, dislikes, err := s.engagement.GetReactionCounts(ctx, videoId)
	if err != nil {
		hlog.CtxErrorf(ctx, "failed to count reactions for video %d: %v", videoId, err)
		return nil, err
	}

	views, err := s.engagement.CountViews(ctx, videoId)
	if err != nil {
		hlog.CtxErrorf(ctx, "failed to count views for video %d: %v", videoId, err)
		return nil, err
	}

	subscribers, err := s.relations.CountSubscribers(ctx, video.UserId)
	if err != nil {
		hlog.CtxErrorf(ctx, "failed to count subscribers for user %d: %v", video.UserId, err)
		return nil, err
	}

	detail := &VideoDetail{
		VideoItem:        *toVideoItem(video),
		Comments:         make([]*CommentItem, 0, len(comments)),
		CommentCount:     int64(len(comments)),
		LikesCount:       likes,
		DislikesCount:    dislikes,
		SubscribersCount: subscribers,
	}
	detail.Views = views
	for _, comment := range comments {
		detail.Comments = append(detail.Comments, &CommentItem{
			Id:        comment.CommentId,
			Text:      comment.Content,
			CreatedAt: comment.CreatedAt,
			User:      toAuthor(comment.User),
		})
	}

	if caller != nil {
		if err := s.fillCallerFlags(ctx, detail, video, caller); err != nil {
			return nil, err
		}
	}
	return detail, nil
}

func (s *VideoService) fillCallerFlags(ctx context.Context, detail *VideoDetail, video *model.Video, caller *model.User) error {
	detail.IsMine = caller.UserId == video.UserId

	reaction, err := s.engagement.GetReaction(ctx, caller.UserId, video.VideoId)
	if err != nil {
		hlog.CtxErrorf(ctx, "failed to load reaction user=%d video=%d: %v", caller.UserId, video.VideoId, err)
		return err
	}
	if reaction != nil {
		detail.IsLiked = reaction.Polarity > 0
		detail.IsDisliked = reaction.Polarity < 0
	}

	viewed, err := s.engagement.HasViewed(ctx, caller.UserId, video.VideoId)
	if err != nil {
		hlog.CtxErrorf(ctx, "failed to check view user=%d video=%d: %v", caller.UserId, video.VideoId, err)
		return err
	}
	detail.IsViewed = viewed

	subscribed, err := s.relations.IsSubscribed(ctx, caller.UserId, video.UserId)
	if err != nil {
		hlog.CtxErrorf(ctx, "failed to check subscription user=%d target=%d: %v", caller.UserId, video.UserId, err)
		return err
	}
	detail.IsSubscribed = subscribed
	return nil
}
