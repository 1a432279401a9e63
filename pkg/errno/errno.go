package errno

import (
	"errors"
	"fmt"
)

const (
	SuccessCode    = 0
	ServiceErrCode = 10001
	ParamErrCode   = 10002

	// 认证相关错误码 统一返回401 不区分凭证缺失和凭证无效
	AuthorizationFailedErrCode = 10101
	TokenInvailedErrCode       = 10102

	ForbiddenErrCode = 10201

	UserNotFoundErrCode    = 10301
	VideoNotFoundErrCode   = 10302
	CommentNotFoundErrCode = 10303

	SelfSubscribeErrCode = 10401
)

type ErrNo struct {
	ErrCode int64
	ErrMsg  string
}

func (e ErrNo) Error() string {
	return fmt.Sprintf("err_code=%d, err_msg=%s", e.ErrCode, e.ErrMsg)
}

func NewErrNo(code int64, msg string) ErrNo {
	return ErrNo{code, msg}
}

func (e ErrNo) WithMessage(msg string) ErrNo {
	e.ErrMsg = msg
	return e
}

var (
	Success    = NewErrNo(SuccessCode, "Success")
	ServiceErr = NewErrNo(ServiceErrCode, "Service is unable to handle this request")
	ParamErr   = NewErrNo(ParamErrCode, "Wrong Parameter has been given")

	AuthorizationFailedErr = NewErrNo(AuthorizationFailedErrCode, "You need to be logged in to visit this route")
	TokenInvailedErr       = NewErrNo(TokenInvailedErrCode, "Token is invalid")

	ForbiddenErr = NewErrNo(ForbiddenErrCode, "You don't have permissions to perform this action")

	UserNotFoundErr    = NewErrNo(UserNotFoundErrCode, "User is not found")
	VideoNotFoundErr   = NewErrNo(VideoNotFoundErrCode, "Video is not found")
	CommentNotFoundErr = NewErrNo(CommentNotFoundErrCode, "Comment is not found")

	SelfSubscribeErr = NewErrNo(SelfSubscribeErrCode, "You cannot subscribe to yourself")
)

// ConvertErr convert error to ErrNo
// 内部错误不向外暴露细节 统一收敛为ServiceErr
func ConvertErr(err error) ErrNo {
	Err := ErrNo{}
	if errors.As(err, &Err) {
		return Err
	}
	s := ServiceErr
	return s
}
