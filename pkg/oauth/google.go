package oauth

import (
	"context"

	"MiniTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"google.golang.org/api/idtoken"
)

// Profile 外部身份提供方返回的用户画像
type Profile struct {
	Subject   string
	Email     string
	Name      string
	AvatarUrl string
}

// TokenVerifier 校验第三方身份令牌并解析出用户画像
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*Profile, error)
}

// GoogleVerifier 通过Google公钥校验ID Token 校验audience为配置的client_id
type GoogleVerifier struct {
	clientId string
}

func NewGoogleVerifier(clientId string) *GoogleVerifier {
	return &GoogleVerifier{clientId: clientId}
}

func (g *GoogleVerifier) Verify(ctx context.Context, token string) (*Profile, error) {
	payload, err := idtoken.Validate(ctx, token, g.clientId)
	if err != nil {
		// 签名/audience校验失败与过期一律视为无效凭证
		hlog.CtxInfof(ctx, "google id token rejected: %v", err)
		return nil, errno.TokenInvailedErr
	}

	profile := &Profile{Subject: payload.Subject}
	if email, ok := payload.Claims["email"].(string); ok {
		profile.Email = email
	}
	if name, ok := payload.Claims["name"].(string); ok {
		profile.Name = name
	}
	if picture, ok := payload.Claims["picture"].(string); ok {
		profile.AvatarUrl = picture
	}
	if profile.Email == "" {
		return nil, errno.TokenInvailedErr
	}
	return profile, nil
}
