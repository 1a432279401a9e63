package service

import (
	"context"

	"MiniTube.com/cmd/model"
	"MiniTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

type CommentStore interface {
	CreateComment(ctx context.Context, comment *model.Comment) error
	GetCommentById(ctx context.Context, commentId int64) (*model.Comment, error)
	DeleteComment(ctx context.Context, commentId int64) error
}

type CommentService struct {
	videos   VideoStore
	comments CommentStore
}

func NewCommentService(videos VideoStore, comments CommentStore) *CommentService {
	return &CommentService{
		videos:   videos,
		comments: comments,
	}
}

func (s *CommentService) AddComment(ctx context.Context, userId, videoId int64, content string) (*model.Comment, error) {
	if content == "" {
		return nil, errno.ParamErr.WithMessage("Comment text is required")
	}

	video, err := s.videos.GetVideoById(ctx, videoId)
	if err != nil {
		hlog.CtxErrorf(ctx, "failed to load video %d: %v", videoId, err)
		return nil, err
	}
	if video == nil {
		return nil, errno.VideoNotFoundErr
	}

	comment := &model.Comment{
		UserId:  userId,
		VideoId: videoId,
		Content: content,
	}
	if err := s.comments.CreateComment(ctx, comment); err != nil {
		hlog.CtxErrorf(ctx, "failed to create comment on video %d: %v", videoId, err)
		return nil, err
	}
	return comment, nil
}

// DeleteComment 只有评论作者可以删除 归属校验先于删除执行
func (s *CommentService) DeleteComment(ctx context.Context, commentId, callerId int64) error {
	comment, err := s.comments.GetCommentById(ctx, commentId)
	if err != nil {
		hlog.CtxErrorf(ctx, "failed to load comment %d: %v", commentId, err)
		return err
	}
	if comment == nil {
		return errno.CommentNotFoundErr
	}
	if comment.UserId != callerId {
		return errno.ForbiddenErr
	}
	return s.comments.DeleteComment(ctx, commentId)
}
