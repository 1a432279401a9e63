package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// 缓存键名常量
const (
	// 视频浏览数缓存键
	VideoViewCountKey = "video:view_count:%d"
)

// ViewCountCache 列表接口的浏览数缓存 短TTL
// client为nil时所有方法退化为未命中 不影响主流程
type ViewCountCache struct {
	client *redis.Client
	expire time.Duration
}

func NewViewCountCache(client *redis.Client) *ViewCountCache {
	return &ViewCountCache{
		client: client,
		expire: 1 * time.Minute,
	}
}

// GetViewCounts 批量读取缓存的浏览数 未命中的视频不出现在结果中
func (vcc *ViewCountCache) GetViewCounts(ctx context.Context, videoIds []int64) (map[int64]int64, error) {
	result := make(map[int64]int64, len(videoIds))
	if vcc == nil || vcc.client == nil || len(videoIds) == 0 {
		return result, nil
	}

	keys := make([]string, 0, len(videoIds))
	for _, id := range videoIds {
		keys = append(keys, fmt.Sprintf(VideoViewCountKey, id))
	}

	values, err := vcc.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to mget view counts: %w", err)
	}
	for i, v := range values {
		s, ok := v.(string)
		if !ok {
			continue // 缓存未命中
		}
		var count int64
		if _, err := fmt.Sscanf(s, "%d", &count); err != nil {
			continue
		}
		result[videoIds[i]] = count
	}
	return result, nil
}

// SetViewCounts 批量写入浏览数
func (vcc *ViewCountCache) SetViewCounts(ctx context.Context, counts map[int64]int64) error {
	if vcc == nil || vcc.client == nil || len(counts) == 0 {
		return nil
	}

	pipe := vcc.client.Pipeline()
	for videoId, count := range counts {
		pipe.Set(ctx, fmt.Sprintf(VideoViewCountKey, videoId), fmt.Sprintf("%d", count), vcc.expire)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to set view counts: %w", err)
	}
	return nil
}

// Invalidate 新增浏览记录后使对应视频的缓存失效
func (vcc *ViewCountCache) Invalidate(ctx context.Context, videoId int64) error {
	if vcc == nil || vcc.client == nil {
		return nil
	}
	return vcc.client.Del(ctx, fmt.Sprintf(VideoViewCountKey, videoId)).Err()
}
