package service

import (
	"context"
	"testing"

	"MiniTube.com/cmd/model"
	"MiniTube.com/pkg/errno"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedFeed(f *videoFixture) {
	f.videos.add(&model.Video{VideoId: 1, UserId: 1, Title: "golang tutorial", Description: "learn go", CreatedAt: "2026-08-01 10:00:00"})
	f.videos.add(&model.Video{VideoId: 2, UserId: 1, Title: "cooking pasta", Description: "italian dinner", CreatedAt: "2026-08-02 10:00:00"})
	f.videos.add(&model.Video{VideoId: 3, UserId: 2, Title: "go concurrency", Description: "channels and goroutines", CreatedAt: "2026-08-03 10:00:00"})
	f.videos.views[1] = 5
	f.videos.views[3] = 5
	f.videos.views[2] = 2
}

func TestListRecommendedNewestFirst(t *testing.T) {
	ctx := context.Background()
	f := newVideoFixture(t)
	seedFeed(f)

	items, err := f.svc.ListRecommended(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, int64(3), items[0].Id)
	assert.Equal(t, int64(2), items[1].Id)
	assert.Equal(t, int64(1), items[2].Id)

	// 浏览数批量补齐 没有记录的视频为0
	assert.Equal(t, int64(5), items[0].Views)
	assert.Equal(t, int64(2), items[1].Views)
	assert.Equal(t, int64(5), items[2].Views)
}

func TestListRecommendedEmpty(t *testing.T) {
	ctx := context.Background()
	f := newVideoFixture(t)

	items, err := f.svc.ListRecommended(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

// 热门按浏览数倒序 浏览数相同时新视频在前
func TestListTrendingByViews(t *testing.T) {
	ctx := context.Background()
	f := newVideoFixture(t)
	seedFeed(f)

	items, err := f.svc.ListTrending(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, int64(3), items[0].Id)
	assert.Equal(t, int64(1), items[1].Id)
	assert.Equal(t, int64(2), items[2].Id)
}

func TestSearchVideos(t *testing.T) {
	ctx := context.Background()
	f := newVideoFixture(t)
	seedFeed(f)

	// 大小写不敏感 标题与描述都参与匹配
	items, err := f.svc.SearchVideos(ctx, "GO")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, int64(3), items[0].Id)
	assert.Equal(t, int64(1), items[1].Id)

	items, err = f.svc.SearchVideos(ctx, "italian")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int64(2), items[0].Id)

	items, err = f.svc.SearchVideos(ctx, "nothing matches this")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestSearchVideosEmptyQuery(t *testing.T) {
	ctx := context.Background()
	f := newVideoFixture(t)

	_, err := f.svc.SearchVideos(ctx, "")
	require.Error(t, err)
	assert.Equal(t, int64(errno.ParamErrCode), errno.ConvertErr(err).ErrCode)
}
