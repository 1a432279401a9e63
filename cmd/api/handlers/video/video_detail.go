package handlers

import (
	"context"

	"MiniTube.com/cmd/api/handlers/common"
	"MiniTube.com/cmd/api/mw"
	"MiniTube.com/cmd/video/service"
	"MiniTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
)

// Detail 视频详情 匿名可访问 调用方相关标志随身份降级为false
func Detail(svc *service.VideoService) app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		videoId, err := videoIdParam(c)
		if err != nil {
			common.SendResponse(c, errno.ParamErr, nil)
			return
		}

		detail, err := svc.GetVideoDetail(ctx, videoId, mw.GetCurrentUser(c))
		if err != nil {
			common.SendResponse(c, errno.ConvertErr(err), nil)
			return
		}
		common.SendResponse(c, errno.Success, utils.H{"video": detail})
	}
}
