package service

import (
	"context"
	"sort"

	"MiniTube.com/cmd/model"
	"MiniTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// ListRecommended 推荐列表 按创建时间倒序 附带浏览数
func (s *VideoService) ListRecommended(ctx context.Context) ([]*VideoItem, error) {
	videos, err := s.videos.ListVideos(ctx)
	if err != nil {
		hlog.CtxErrorf(ctx, "failed to list videos: %v", err)
		return nil, err
	}
	return s.attachViewCounts(ctx, videos)
}

// ListTrending 热门列表 按浏览数倒序 浏览数相同时新视频在前
// 原始实现按一个不存在的字段排序等于没有排序 这里改为明确的浏览数排序
func (s *VideoService) ListTrending(ctx context.Context) ([]*VideoItem, error) {
	items, err := s.ListRecommended(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Views != items[j].Views {
			return items[i].Views > items[j].Views
		}
		return items[i].CreatedAt > items[j].CreatedAt
	})
	return items, nil
}

// SearchVideos 标题或描述的子串匹配 空查询直接拒绝
func (s *VideoService) SearchVideos(ctx context.Context, query string) ([]*VideoItem, error) {
	if query == "" {
		return nil, errno.ParamErr.WithMessage("Please enter a search query")
	}
	videos, err := s.videos.SearchVideos(ctx, query)
	if err != nil {
		hlog.CtxErrorf(ctx, "failed to search videos: %v", err)
		return nil, err
	}
	return s.attachViewCounts(ctx, videos)
}

// attachViewCounts 为一批视频补齐浏览数
// 先查缓存 未命中的视频走一次分组查询 而不是逐个视频round-trip
func (s *VideoService) attachViewCounts(ctx context.Context, videos []*model.Video) ([]*VideoItem, error) {
	items := make([]*VideoItem, 0, len(videos))
	if len(videos) == 0 {
		return items, nil
	}

	videoIds := make([]int64, 0, len(videos))
	for _, video := range videos {
		videoIds = append(videoIds, video.VideoId)
	}

	cached, err := s.countCache.GetViewCounts(ctx, videoIds)
	if err != nil {
		hlog.CtxWarnf(ctx, "view count cache read failed: %v", err)
		cached = map[int64]int64{}
	}

	missing := make([]int64, 0, len(videoIds))
	for _, id := range videoIds {
		if _, ok := cached[id]; !ok {
			missing = append(missing, id)
		}
	}

	if len(missing) > 0 {
		fresh, err := s.videos.GetVideoViewCounts(ctx, missing)
		if err != nil {
			hlog.CtxErrorf(ctx, "failed to batch count views: %v", err)
			return nil, err
		}
		// 没有浏览记录的视频在分组结果里不出现 显式补零 避免反复穿透缓存
		for _, id := range missing {
			if _, ok := fresh[id]; !ok {
				fresh[id] = 0
			}
		}
		if err := s.countCache.SetViewCounts(ctx, fresh); err != nil {
			hlog.CtxWarnf(ctx, "view count cache write failed: %v", err)
		}
		for id, count := range fresh {
			cached[id] = count
		}
	}

	for _, video := range videos {
		item := toVideoItem(video)
		item.Views = cached[video.VideoId]
		items = append(items, item)
	}
	return items, nil
}
