package service

import (
	"context"

	"MiniTube.com/cmd/model"
	"MiniTube.com/pkg/constants"
	"MiniTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

type VideoStore interface {
	GetVideoById(ctx context.Context, videoId int64) (*model.Video, error)
}

type ReactionStore interface {
	ToggleReaction(ctx context.Context, userId, videoId, polarity int64) (int64, error)
	GetReaction(ctx context.Context, userId, videoId int64) (*model.VideoLike, error)
}

// LikeActionService 点赞/点踩状态机
// 每个(user, video)只有NONE/LIKED/DISLIKED三种状态 切换由存储层事务串行化
type LikeActionService struct {
	videos    VideoStore
	reactions ReactionStore
}

func NewLikeActionService(videos VideoStore, reactions ReactionStore) *LikeActionService {
	return &LikeActionService{
		videos:    videos,
		reactions: reactions,
	}
}

// ToggleLike NONE->LIKED LIKED->NONE DISLIKED->LIKED
// 返回操作后的极性 0表示无记录
func (s *LikeActionService) ToggleLike(ctx context.Context, userId, videoId int64) (int64, error) {
	return s.toggle(ctx, userId, videoId, constants.PolarityLike)
}

// ToggleDislike NONE->DISLIKED DISLIKED->NONE LIKED->DISLIKED
func (s *LikeActionService) ToggleDislike(ctx context.Context, userId, videoId int64) (int64, error) {
	return s.toggle(ctx, userId, videoId, constants.PolarityDislike)
}

func (s *LikeActionService) toggle(ctx context.Context, userId, videoId, polarity int64) (int64, error) {
	video, err := s.videos.GetVideoById(ctx, videoId)
	if err != nil {
		hlog.CtxErrorf(ctx, "failed to load video %d: %v", videoId, err)
		return 0, err
	}
	if video == nil {
		return 0, errno.VideoNotFoundErr
	}

	state, err := s.reactions.ToggleReaction(ctx, userId, videoId, polarity)
	if err != nil {
		hlog.CtxErrorf(ctx, "failed to toggle reaction user=%d video=%d: %v", userId, videoId, err)
		return 0, err
	}
	return state, nil
}
