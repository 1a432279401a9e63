package service

import (
	"context"

	"MiniTube.com/pkg/cache"
	"MiniTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

type ViewStore interface {
	CreateView(ctx context.Context, videoId int64, userId *int64) error
}

// ViewService 浏览事件记录 匿名与登录用户都可以产生浏览
type ViewService struct {
	videos     VideoStore
	views      ViewStore
	countCache *cache.ViewCountCache
}

func NewViewService(videos VideoStore, views ViewStore, countCache *cache.ViewCountCache) *ViewService {
	return &ViewService{
		videos:     videos,
		views:      views,
		countCache: countCache,
	}
}

// AddVideoView 追加一条浏览记录 不做去重 每次调用都是独立事件
func (s *ViewService) AddVideoView(ctx context.Context, videoId int64, userId *int64) error {
	video, err := s.videos.GetVideoById(ctx, videoId)
	if err != nil {
		hlog.CtxErrorf(ctx, "failed to load video %d: %v", videoId, err)
		return err
	}
	if video == nil {
		return errno.VideoNotFoundErr
	}

	if err := s.views.CreateView(ctx, videoId, userId); err != nil {
		hlog.CtxErrorf(ctx, "failed to record view for video %d: %v", videoId, err)
		return err
	}

	// 缓存失效失败不影响写入结果
	if err := s.countCache.Invalidate(ctx, videoId); err != nil {
		hlog.CtxWarnf(ctx, "failed to invalidate view count cache for video %d: %v", videoId, err)
	}
	return nil
}
