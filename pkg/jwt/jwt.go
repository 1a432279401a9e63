package jwt

import (
	"time"

	"MiniTube.com/pkg/errno"
	"github.com/golang-jwt/jwt/v4"
)

// SessionToken 负责会话凭证的签发与校验
// 凭证是无状态的 服务端不保存撤销列表 登出只是客户端清除cookie
type SessionToken struct {
	secret []byte
	expire time.Duration
}

func NewSessionToken(secret string, expire time.Duration) *SessionToken {
	return &SessionToken{
		secret: []byte(secret),
		expire: expire,
	}
}

// Issue 签发携带{id}的凭证 过期时间由配置决定
func (s *SessionToken) Issue(userId int64) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"id":  userId,
		"iat": now.Unix(),
		"exp": now.Add(s.expire).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify 校验凭证 签名错误 载荷畸形 过期均返回TokenInvailedErr
// 不区分具体失败原因 避免向调用方泄露凭证有效性信息
func (s *SessionToken) Verify(tokenString string) (int64, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errno.TokenInvailedErr
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, errno.TokenInvailedErr
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errno.TokenInvailedErr
	}
	// MapClaims经过json反序列化 数值是float64
	id, ok := claims["id"].(float64)
	if !ok {
		return 0, errno.TokenInvailedErr
	}
	return int64(id), nil
}
