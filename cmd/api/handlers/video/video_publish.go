package handlers

import (
	"context"

	"MiniTube.com/cmd/api/handlers/common"
	"MiniTube.com/cmd/api/mw"
	"MiniTube.com/cmd/video/service"
	"MiniTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/common/utils"
)

// Publish 创建视频 媒体文件本身由外部存储托管 这里只登记元数据
func Publish(svc *service.VideoService) app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		var param CreateVideoParam
		if err := c.BindAndValidate(&param); err != nil {
			hlog.CtxInfof(ctx, "bind create video param failed: %v", err)
			common.SendResponse(c, errno.ParamErr, nil)
			return
		}

		user := mw.GetCurrentUser(c)
		if user == nil {
			common.SendResponse(c, errno.AuthorizationFailedErr, nil)
			return
		}

		video, err := svc.CreateVideo(ctx, user.UserId, &service.CreateVideoParams{
			Title:       param.Title,
			Description: param.Description,
			Url:         param.Url,
			Thumbnail:   param.Thumbnail,
		})
		if err != nil {
			common.SendResponse(c, errno.ConvertErr(err), nil)
			return
		}
		common.SendResponse(c, errno.Success, utils.H{"video": video})
	}
}
