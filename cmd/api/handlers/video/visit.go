package handlers

import (
	"context"

	"MiniTube.com/cmd/api/handlers/common"
	"MiniTube.com/cmd/api/mw"
	interaction "MiniTube.com/cmd/interaction/service"
	"MiniTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
)

// Visit 记录一次浏览 匿名也计数 不做去重
func Visit(svc *interaction.ViewService) app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		videoId, err := videoIdParam(c)
		if err != nil {
			common.SendResponse(c, errno.ParamErr, nil)
			return
		}

		var userId *int64
		if user := mw.GetCurrentUser(c); user != nil {
			userId = &user.UserId
		}

		if err := svc.AddVideoView(ctx, videoId, userId); err != nil {
			common.SendResponse(c, errno.ConvertErr(err), nil)
			return
		}
		common.SendResponse(c, errno.Success, nil)
	}
}
