package handlers

import (
	"context"

	"MiniTube.com/cmd/api/handlers/common"
	"MiniTube.com/cmd/api/mw"
	"MiniTube.com/cmd/interaction/service"
	"MiniTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/common/utils"
)

func CreateComment(svc *service.CommentService) app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		videoId, err := videoIdParam(c)
		if err != nil {
			common.SendResponse(c, errno.ParamErr, nil)
			return
		}

		var param CreateCommentParam
		if err := c.BindAndValidate(&param); err != nil {
			hlog.CtxInfof(ctx, "bind comment param failed: %v", err)
			common.SendResponse(c, errno.ParamErr, nil)
			return
		}

		user := mw.GetCurrentUser(c)
		if user == nil {
			common.SendResponse(c, errno.AuthorizationFailedErr, nil)
			return
		}

		comment, err := svc.AddComment(ctx, user.UserId, videoId, param.Text)
		if err != nil {
			common.SendResponse(c, errno.ConvertErr(err), nil)
			return
		}
		common.SendResponse(c, errno.Success, utils.H{"comment": comment})
	}
}
