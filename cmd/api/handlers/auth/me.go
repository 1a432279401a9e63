package handlers

import (
	"context"

	"MiniTube.com/cmd/api/handlers/common"
	"MiniTube.com/cmd/api/mw"
	"MiniTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
)

// Me 返回当前凭证解析出的用户
func Me() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		user := mw.GetCurrentUser(c)
		if user == nil {
			common.SendResponse(c, errno.AuthorizationFailedErr, nil)
			return
		}
		common.SendResponse(c, errno.Success, utils.H{"user": user})
	}
}
