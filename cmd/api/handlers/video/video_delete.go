package handlers

import (
	"context"

	"MiniTube.com/cmd/api/handlers/common"
	"MiniTube.com/cmd/api/mw"
	"MiniTube.com/cmd/video/service"
	"MiniTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
)

// Delete 删除视频及其全部浏览 点赞 评论 仅作者可操作
func Delete(svc *service.VideoService) app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		videoId, err := videoIdParam(c)
		if err != nil {
			common.SendResponse(c, errno.ParamErr, nil)
			return
		}

		user := mw.GetCurrentUser(c)
		if user == nil {
			common.SendResponse(c, errno.AuthorizationFailedErr, nil)
			return
		}

		if err := svc.DeleteVideo(ctx, videoId, user.UserId); err != nil {
			common.SendResponse(c, errno.ConvertErr(err), nil)
			return
		}
		common.SendResponse(c, errno.Success, nil)
	}
}
