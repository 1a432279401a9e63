package service

import (
	"context"
	"strings"

	"MiniTube.com/cmd/dal/db"
	"MiniTube.com/cmd/model"
	"MiniTube.com/pkg/errno"
	"MiniTube.com/pkg/jwt"
	"MiniTube.com/pkg/oauth"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

type UserStore interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserById(ctx context.Context, userId int64) (*model.User, error)
}

// SignInService 身份提供方换票 本地用户解析 会话凭证签发
type SignInService struct {
	verifier oauth.TokenVerifier
	users    UserStore
	tokens   *jwt.SessionToken
}

func NewSignInService(verifier oauth.TokenVerifier, users UserStore, tokens *jwt.SessionToken) *SignInService {
	return &SignInService{
		verifier: verifier,
		users:    users,
		tokens:   tokens,
	}
}

// GoogleSignIn 校验Google ID Token 解析或创建本地用户 返回用户与会话凭证
func (s *SignInService) GoogleSignIn(ctx context.Context, idToken string) (*model.User, string, error) {
	if idToken == "" {
		return nil, "", errno.TokenInvailedErr
	}

	profile, err := s.verifier.Verify(ctx, idToken)
	if err != nil {
		return nil, "", err
	}

	user, err := s.resolveOrCreateUser(ctx, profile)
	if err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(user.UserId)
	if err != nil {
		hlog.CtxErrorf(ctx, "issue session token failed: %v", err)
		return nil, "", err
	}
	return user, token, nil
}

// resolveOrCreateUser 按邮箱查找 不存在则创建
// 同一邮箱并发首次登录时 邮箱唯一索引保证只有一行存活
// 输掉竞争的创建以重复键错误失败 此处降级为再次查询
func (s *SignInService) resolveOrCreateUser(ctx context.Context, profile *oauth.Profile) (*model.User, error) {
	user, err := s.users.GetUserByEmail(ctx, profile.Email)
	if err != nil {
		return nil, err
	}
	if user != nil {
		return user, nil
	}

	username := profile.Name
	if username == "" {
		username = strings.SplitN(profile.Email, "@", 2)[0]
	}
	user = &model.User{
		UserName:  username,
		Email:     profile.Email,
		AvatarUrl: profile.AvatarUrl,
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		if db.IsDuplicateKey(err) {
			hlog.CtxInfof(ctx, "concurrent signup for %s, falling back to lookup", profile.Email)
			winner, lookupErr := s.users.GetUserByEmail(ctx, profile.Email)
			if lookupErr != nil {
				return nil, lookupErr
			}
			if winner == nil {
				return nil, errno.ServiceErr
			}
			return winner, nil
		}
		return nil, err
	}
	return user, nil
}

// GetUserById 供鉴权中间件解析凭证对应的用户
func (s *SignInService) GetUserById(ctx context.Context, userId int64) (*model.User, error) {
	return s.users.GetUserById(ctx, userId)
}
