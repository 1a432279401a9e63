package service

import (
	"context"
	"testing"

	"MiniTube.com/cmd/model"
	"MiniTube.com/pkg/errno"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCommentFixture(t *testing.T) (*CommentService, *fakeCommentStore) {
	t.Helper()
	videos := newFakeVideoStore(&model.Video{VideoId: 100, UserId: 1, Title: "first"})
	comments := newFakeCommentStore()
	return NewCommentService(videos, comments), comments
}

func TestAddComment(t *testing.T) {
	ctx := context.Background()
	svc, store := newCommentFixture(t)

	comment, err := svc.AddComment(ctx, 7, 100, "nice video")
	require.NoError(t, err)
	require.NotNil(t, comment)
	assert.Equal(t, int64(7), comment.UserId)
	assert.Equal(t, int64(100), comment.VideoId)
	assert.Equal(t, "nice video", comment.Content)

	stored, err := store.GetCommentById(ctx, comment.CommentId)
	require.NoError(t, err)
	assert.Equal(t, comment, stored)
}

func TestAddCommentEmptyText(t *testing.T) {
	ctx := context.Background()
	svc, _ := newCommentFixture(t)

	_, err := svc.AddComment(ctx, 7, 100, "")
	require.Error(t, err)
	e := errno.ConvertErr(err)
	assert.Equal(t, int64(errno.ParamErrCode), e.ErrCode)
}

func TestAddCommentVideoNotFound(t *testing.T) {
	ctx := context.Background()
	svc, _ := newCommentFixture(t)

	_, err := svc.AddComment(ctx, 7, 999, "hello")
	assert.ErrorIs(t, err, errno.VideoNotFoundErr)
}

func TestDeleteCommentByAuthor(t *testing.T) {
	ctx := context.Background()
	svc, store := newCommentFixture(t)

	comment, err := svc.AddComment(ctx, 7, 100, "to be removed")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteComment(ctx, comment.CommentId, 7))
	stored, err := store.GetCommentById(ctx, comment.CommentId)
	require.NoError(t, err)
	assert.Nil(t, stored)
}

// 归属校验先于删除 非作者删除不改变数据
func TestDeleteCommentNotAuthor(t *testing.T) {
	ctx := context.Background()
	svc, store := newCommentFixture(t)

	comment, err := svc.AddComment(ctx, 7, 100, "keep me")
	require.NoError(t, err)

	err = svc.DeleteComment(ctx, comment.CommentId, 8)
	assert.ErrorIs(t, err, errno.ForbiddenErr)

	stored, err := store.GetCommentById(ctx, comment.CommentId)
	require.NoError(t, err)
	assert.NotNil(t, stored)
}

func TestDeleteCommentNotFound(t *testing.T) {
	ctx := context.Background()
	svc, _ := newCommentFixture(t)

	err := svc.DeleteComment(ctx, 424242, 7)
	assert.ErrorIs(t, err, errno.CommentNotFoundErr)
}
