package model

// 订阅关系：subscriber关注channel（channel也是一个用户）
// 联合唯一索引保证同一对(订阅者,频道)只有一条记录，防止并发重复订阅
type Subscription struct {
	BaseModel
	SubscriberID uint64 `gorm:"uniqueIndex:idx_subscriber_channel"`
	ChannelID    uint64 `gorm:"uniqueIndex:idx_subscriber_channel"`

	Subscriber User `gorm:"foreignKey:SubscriberID"`
	Channel    User `gorm:"foreignKey:ChannelID"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}
