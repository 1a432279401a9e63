package handlers

import (
	"context"
	"time"

	"MiniTube.com/cmd/api/handlers/common"
	"MiniTube.com/cmd/auth/service"
	"MiniTube.com/pkg/constants"
	"MiniTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol"
)

// GoogleSignIn 用第三方身份令牌换取会话凭证
// 凭证写入HTTP-only cookie 同时放在响应体里便于客户端存为bearer头
func GoogleSignIn(svc *service.SignInService, expire time.Duration) app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		var param GoogleSignInParam
		if err := c.BindAndValidate(&param); err != nil {
			hlog.CtxInfof(ctx, "bind google signin param failed: %v", err)
			common.SendResponse(c, errno.ParamErr, nil)
			return
		}

		user, token, err := svc.GoogleSignIn(ctx, param.IdToken)
		if err != nil {
			common.SendResponse(c, errno.ConvertErr(err), nil)
			return
		}

		c.SetCookie(constants.SessionCookieName, token, int(expire/time.Second),
			"/", "", protocol.CookieSameSiteLaxMode, false, true)
		common.SendResponse(c, errno.Success, utils.H{
			"token": token,
			"user":  user,
		})
	}
}
