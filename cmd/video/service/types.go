package service

import (
	"context"

	"MiniTube.com/cmd/model"
)

type VideoStore interface {
	CreateVideo(ctx context.Context, video *model.Video) error
	GetVideoById(ctx context.Context, videoId int64) (*model.Video, error)
	ListVideos(ctx context.Context) ([]*model.Video, error)
	SearchVideos(ctx context.Context, query string) ([]*model.Video, error)
	GetVideoViewCounts(ctx context.Context, videoIds []int64) (map[int64]int64, error)
	DeleteVideoCascade(ctx context.Context, videoId int64) error
}

type EngagementStore interface {
	GetReaction(ctx context.Context, userId, videoId int64) (*model.VideoLike, error)
	GetReactionCounts(ctx context.Context, videoId int64) (likes int64, dislikes int64, err error)
	CountViews(ctx context.Context, videoId int64) (int64, error)
	HasViewed(ctx context.Context, userId, videoId int64) (bool, error)
	ListVideoComments(ctx context.Context, videoId int64) ([]*model.Comment, error)
}

type RelationStore interface {
	IsSubscribed(ctx context.Context, subscriberId, targetId int64) (bool, error)
	CountSubscribers(ctx context.Context, userId int64) (int64, error)
}

// Author 读模型中暴露的作者信息
type Author struct {
	Id        int64  `json:"id"`
	Username  string `json:"username"`
	AvatarUrl string `json:"avatar"`
}

// VideoItem 列表接口的读模型
type VideoItem struct {
	Id          int64   `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Url         string  `json:"url"`
	Thumbnail   string  `json:"thumbnail"`
	CreatedAt   string  `json:"createdAt"`
	Views       int64   `json:"views"`
	User        *Author `json:"user,omitempty"`
}

// CommentItem 视频详情中的评论
type CommentItem struct {
	Id        int64   `json:"id"`
	Text      string  `json:"text"`
	CreatedAt string  `json:"createdAt"`
	User      *Author `json:"user,omitempty"`
}

// VideoDetail 视频详情读模型 计数与调用方相关标志一次拼装完成
type VideoDetail struct {
	VideoItem

	Comments         []*CommentItem `json:"comments"`
	CommentCount     int64          `json:"commentCount"`
	LikesCount       int64          `json:"likesCount"`
	DislikesCount    int64          `json:"dislikesCount"`
	SubscribersCount int64          `json:"subscribersCount"`

	// 调用方相关标志 匿名访问时全部为false
	IsMine       bool `json:"isMine"`
	IsLiked      bool `json:"isLiked"`
	IsDisliked   bool `json:"isDisliked"`
	IsViewed     bool `json:"isViewed"`
	IsSubscribed bool `json:"isSubscribed"`
}

func toAuthor(user *model.User) *Author {
	if user == nil {
		return nil
	}
	return &Author{
		Id:        user.UserId,
		Username:  user.UserName,
		AvatarUrl: user.AvatarUrl,
	}
}

func toVideoItem(video *model.Video) *VideoItem {
	return &VideoItem{
		Id:          video.VideoId,
		Title:       video.Title,
		Description: video.Description,
		Url:         video.VideoUrl,
		Thumbnail:   video.CoverUrl,
		CreatedAt:   video.CreatedAt,
		User:        toAuthor(video.User),
	}
}
