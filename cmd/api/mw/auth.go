package mw

import (
	"context"
	"strings"

	"MiniTube.com/cmd/api/handlers/common"
	"MiniTube.com/cmd/model"
	"MiniTube.com/pkg/constants"
	"MiniTube.com/pkg/errno"
	"MiniTube.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

const ctxUserKey = "current_user"

type UserStore interface {
	GetUserById(ctx context.Context, userId int64) (*model.User, error)
}

// Middleware 从请求凭证解析当前用户
type Middleware struct {
	tokens *jwt.SessionToken
	users  UserStore
}

func New(tokens *jwt.SessionToken, users UserStore) *Middleware {
	return &Middleware{
		tokens: tokens,
		users:  users,
	}
}

// RequireAuth 必须携带有效凭证 否则401
// 凭证缺失与凭证无效返回完全相同的结果 不向外泄露有效性信息
func (m *Middleware) RequireAuth() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		user := m.resolveUser(ctx, c)
		if user == nil {
			common.SendResponse(c, errno.AuthorizationFailedErr, nil)
			c.Abort()
			return
		}
		c.Set(ctxUserKey, user)
		c.Next(ctx)
	}
}

// OptionalAuth 尽力解析用户 失败时继续以匿名身份处理请求
func (m *Middleware) OptionalAuth() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		if user := m.resolveUser(ctx, c); user != nil {
			c.Set(ctxUserKey, user)
		}
		c.Next(ctx)
	}
}

// resolveUser 提取凭证 校验 加载用户 任一步失败都返回nil
func (m *Middleware) resolveUser(ctx context.Context, c *app.RequestContext) *model.User {
	token := extractToken(c)
	if token == "" {
		return nil
	}

	userId, err := m.tokens.Verify(token)
	if err != nil {
		return nil
	}

	user, err := m.users.GetUserById(ctx, userId)
	if err != nil {
		hlog.CtxErrorf(ctx, "failed to load user %d: %v", userId, err)
		return nil
	}
	// 凭证指向的用户已不存在 与无效凭证同样处理
	return user
}

// extractToken Authorization头优先 其次HTTP-only cookie
func extractToken(c *app.RequestContext) string {
	auth := string(c.GetHeader("Authorization"))
	if auth != "" {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return string(c.Cookie(constants.SessionCookieName))
}

// GetCurrentUser 读取鉴权中间件解析出的用户 匿名请求返回nil
func GetCurrentUser(c *app.RequestContext) *model.User {
	v, ok := c.Get(ctxUserKey)
	if !ok {
		return nil
	}
	user, ok := v.(*model.User)
	if !ok {
		return nil
	}
	return user
}
