package db

import (
	"context"
	"time"

	"MiniTube.com/cmd/model"
	"MiniTube.com/pkg/constants"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type RelationRepo struct {
	db *gorm.DB
}

func NewRelationRepo(db *gorm.DB) *RelationRepo {
	return &RelationRepo{db: db}
}

// ToggleSubscription 幂等的建边/删边 返回操作后是否处于订阅状态
// (subscriber, subscribed_to)唯一索引兜底并发创建
func (r *RelationRepo) ToggleSubscription(ctx context.Context, subscriberId, targetId int64) (bool, error) {
	var subscribed bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.Subscription
		result := tx.Model(&model.Subscription{}).
			Where("subscriber_id = ? AND subscribed_to_id = ?", subscriberId, targetId).
			Limit(1).Find(&existing)
		if result.Error != nil {
			return errors.Wrap(result.Error, "query subscription failed")
		}

		if result.RowsAffected > 0 {
			if err := tx.Where("subscription_id = ?", existing.SubscriptionId).
				Delete(&model.Subscription{}).Error; err != nil {
				return errors.Wrap(err, "delete subscription failed")
			}
			subscribed = false
			return nil
		}

		sub := &model.Subscription{
			SubscriptionId: int64(uuid.New().ID()),
			SubscriberId:   subscriberId,
			SubscribedToId: targetId,
			CreatedAt:      time.Now().Format(constants.DataFormate),
		}
		if err := tx.Create(sub).Error; err != nil {
			return errors.Wrap(err, "create subscription failed")
		}
		subscribed = true
		return nil
	})
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		// 并发创建撞唯一索引 已有边 视为订阅成功
		return true, nil
	}
	return subscribed, err
}

func (r *RelationRepo) IsSubscribed(ctx context.Context, subscriberId, targetId int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Subscription{}).
		Where("subscriber_id = ? AND subscribed_to_id = ?", subscriberId, targetId).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "IsSubscribed failed")
	}
	return count > 0, nil
}

// CountSubscribers 指向该用户的订阅边数
func (r *RelationRepo) CountSubscribers(ctx context.Context, userId int64) (count int64, err error) {
	if err := r.db.WithContext(ctx).Model(&model.Subscription{}).
		Where("subscribed_to_id = ?", userId).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "CountSubscribers failed")
	}
	return count, nil
}
