package handlers

import (
	"context"

	"MiniTube.com/cmd/api/handlers/common"
	"MiniTube.com/pkg/constants"
	"MiniTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol"
)

// SignOut 清除会话cookie
// 凭证本身无状态 服务端没有撤销列表 登出只是客户端侧的清理
func SignOut() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		c.SetCookie(constants.SessionCookieName, "", -1,
			"/", "", protocol.CookieSameSiteLaxMode, false, true)
		common.SendResponse(c, errno.Success, nil)
	}
}
