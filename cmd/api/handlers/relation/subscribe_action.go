package handlers

import (
	"context"
	"strconv"

	"MiniTube.com/cmd/api/handlers/common"
	"MiniTube.com/cmd/api/mw"
	"MiniTube.com/cmd/relation/service"
	"MiniTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
)

// SubscribeAction 订阅/退订切换 自己订阅自己会被拒绝
func SubscribeAction(svc *service.RelationService) app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		targetId, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
		if err != nil {
			common.SendResponse(c, errno.ParamErr, nil)
			return
		}

		user := mw.GetCurrentUser(c)
		if user == nil {
			common.SendResponse(c, errno.AuthorizationFailedErr, nil)
			return
		}

		subscribed, err := svc.ToggleSubscription(ctx, user.UserId, targetId)
		if err != nil {
			common.SendResponse(c, errno.ConvertErr(err), nil)
			return
		}
		common.SendResponse(c, errno.Success, utils.H{"isSubscribed": subscribed})
	}
}
