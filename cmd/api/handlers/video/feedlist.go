package handlers

import (
	"context"

	"MiniTube.com/cmd/api/handlers/common"
	"MiniTube.com/cmd/video/service"
	"MiniTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
)

// Feed 推荐列表 按创建时间倒序
func Feed(svc *service.VideoService) app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		videos, err := svc.ListRecommended(ctx)
		if err != nil {
			common.SendResponse(c, errno.ConvertErr(err), nil)
			return
		}
		common.SendResponse(c, errno.Success, utils.H{"videos": videos})
	}
}

// Trending 热门列表 按浏览数倒序
func Trending(svc *service.VideoService) app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		videos, err := svc.ListTrending(ctx)
		if err != nil {
			common.SendResponse(c, errno.ConvertErr(err), nil)
			return
		}
		common.SendResponse(c, errno.Success, utils.H{"videos": videos})
	}
}

// Search 标题或描述的子串搜索
func Search(svc *service.VideoService) app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		videos, err := svc.SearchVideos(ctx, c.Query("query"))
		if err != nil {
			common.SendResponse(c, errno.ConvertErr(err), nil)
			return
		}
		common.SendResponse(c, errno.Success, utils.H{"videos": videos})
	}
}
