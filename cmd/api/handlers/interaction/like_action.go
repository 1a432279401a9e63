package handlers

import (
	"context"

	"MiniTube.com/cmd/api/handlers/common"
	"MiniTube.com/cmd/api/mw"
	"MiniTube.com/cmd/interaction/service"
	"MiniTube.com/pkg/constants"
	"MiniTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
)

// Like 切换点赞 再次点击撤销 点踩状态下点击翻转为点赞
func Like(svc *service.LikeActionService) app.HandlerFunc {
	return likeAction(svc.ToggleLike)
}

// Dislike 切换点踩
func Dislike(svc *service.LikeActionService) app.HandlerFunc {
	return likeAction(svc.ToggleDislike)
}

func likeAction(toggle func(ctx context.Context, userId, videoId int64) (int64, error)) app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		videoId, err := videoIdParam(c)
		if err != nil {
			common.SendResponse(c, errno.ParamErr, nil)
			return
		}

		user := mw.GetCurrentUser(c)
		if user == nil {
			common.SendResponse(c, errno.AuthorizationFailedErr, nil)
			return
		}

		state, err := toggle(ctx, user.UserId, videoId)
		if err != nil {
			common.SendResponse(c, errno.ConvertErr(err), nil)
			return
		}
		common.SendResponse(c, errno.Success, utils.H{
			"isLiked":    state == constants.PolarityLike,
			"isDisliked": state == constants.PolarityDislike,
		})
	}
}
