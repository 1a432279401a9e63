package common

import (
	"MiniTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

type Response struct {
	Code    int64       `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// SendResponse pack response
// 错误码同时映射为HTTP状态 鉴权类错误不区分凭证缺失与无效
func SendResponse(c *app.RequestContext, err error, data interface{}) {
	Err := errno.ConvertErr(err)
	c.JSON(statusOf(Err.ErrCode), Response{
		Code:    Err.ErrCode,
		Message: Err.ErrMsg,
		Data:    data,
	})
}

func statusOf(code int64) int {
	switch code {
	case errno.SuccessCode:
		return consts.StatusOK
	case errno.ParamErrCode, errno.SelfSubscribeErrCode:
		return consts.StatusBadRequest
	case errno.AuthorizationFailedErrCode, errno.TokenInvailedErrCode:
		return consts.StatusUnauthorized
	case errno.ForbiddenErrCode:
		return consts.StatusForbidden
	case errno.UserNotFoundErrCode, errno.VideoNotFoundErrCode, errno.CommentNotFoundErrCode:
		return consts.StatusNotFound
	default:
		return consts.StatusInternalServerError
	}
}
