package service

import (
	"context"

	"MiniTube.com/cmd/model"
	"MiniTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

type SubscriptionStore interface {
	ToggleSubscription(ctx context.Context, subscriberId, targetId int64) (bool, error)
}

type UserStore interface {
	GetUserById(ctx context.Context, userId int64) (*model.User, error)
}

// RelationService 订阅关系的建立与解除
type RelationService struct {
	users         UserStore
	subscriptions SubscriptionStore
}

func NewRelationService(users UserStore, subscriptions SubscriptionStore) *RelationService {
	return &RelationService{
		users:         users,
		subscriptions: subscriptions,
	}
}

// ToggleSubscription 已有边则删除 没有则创建 返回操作后的订阅状态
// 自己订阅自己在进入存储层之前就被拒绝 唯一索引无法表达这条规则
func (s *RelationService) ToggleSubscription(ctx context.Context, subscriberId, targetId int64) (bool, error) {
	if subscriberId == targetId {
		return false, errno.SelfSubscribeErr
	}

	target, err := s.users.GetUserById(ctx, targetId)
	if err != nil {
		hlog.CtxErrorf(ctx, "failed to load user %d: %v", targetId, err)
		return false, err
	}
	if target == nil {
		return false, errno.UserNotFoundErr
	}

	return s.subscriptions.ToggleSubscription(ctx, subscriberId, targetId)
}
