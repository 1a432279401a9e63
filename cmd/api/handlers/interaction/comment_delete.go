package handlers

import (
	"context"

	"MiniTube.com/cmd/api/handlers/common"
	"MiniTube.com/cmd/api/mw"
	"MiniTube.com/cmd/interaction/service"
	"MiniTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
)

// DeleteComment 仅评论作者可删除 归属校验在服务层先于删除执行
func DeleteComment(svc *service.CommentService) app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		commentId, err := commentIdParam(c)
		if err != nil {
			common.SendResponse(c, errno.ParamErr, nil)
			return
		}

		user := mw.GetCurrentUser(c)
		if user == nil {
			common.SendResponse(c, errno.AuthorizationFailedErr, nil)
			return
		}

		if err := svc.DeleteComment(ctx, commentId, user.UserId); err != nil {
			common.SendResponse(c, errno.ConvertErr(err), nil)
			return
		}
		common.SendResponse(c, errno.Success, nil)
	}
}
