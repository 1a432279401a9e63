package service

import (
	"context"
	"testing"

	"MiniTube.com/cmd/model"
	"MiniTube.com/pkg/cache"
	"MiniTube.com/pkg/errno"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViewFixture(t *testing.T) (*ViewService, *fakeViewStore) {
	t.Helper()
	videos := newFakeVideoStore(&model.Video{VideoId: 100, UserId: 1, Title: "first"})
	views := &fakeViewStore{}
	return NewViewService(videos, views, cache.NewViewCountCache(nil)), views
}

func TestAddVideoViewAppendsEveryCall(t *testing.T) {
	ctx := context.Background()
	svc, views := newViewFixture(t)

	userId := int64(7)
	for i := 0; i < 3; i++ {
		require.NoError(t, svc.AddVideoView(ctx, 100, &userId))
	}
	// 不去重 三次调用三条记录
	assert.Equal(t, 3, views.countFor(100))
}

func TestAddVideoViewAnonymous(t *testing.T) {
	ctx := context.Background()
	svc, views := newViewFixture(t)

	require.NoError(t, svc.AddVideoView(ctx, 100, nil))
	assert.Equal(t, 1, views.countFor(100))
	assert.Nil(t, views.views[0].UserId)
}

func TestAddVideoViewVideoNotFound(t *testing.T) {
	ctx := context.Background()
	svc, views := newViewFixture(t)

	err := svc.AddVideoView(ctx, 999, nil)
	assert.ErrorIs(t, err, errno.VideoNotFoundErr)
	assert.Equal(t, 0, views.countFor(999))
}
