package model

// Subscription 订阅关系 subscriber -> subscribed_to 的有向边 每个有序对唯一
type Subscription struct {
	SubscriptionId int64  `gorm:"column:subscription_id;primaryKey" json:"subscription_id"`
	SubscriberId   int64  `gorm:"column:subscriber_id;uniqueIndex:uk_subscriptions_pair" json:"subscriber_id"`
	SubscribedToId int64  `gorm:"column:subscribed_to_id;uniqueIndex:uk_subscriptions_pair" json:"subscribed_to_id"`
	CreatedAt      string `gorm:"column:created_at" json:"created_at"`
}

func (s *Subscription) TableName() string {
	return "subscriptions"
}
