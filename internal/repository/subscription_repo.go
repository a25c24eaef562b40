package repository

import (
	"VidTube/internal/model"

	"gorm.io/gorm"
)

type SubscriptionRepository interface {
	// 按(订阅者,频道)查找订阅记录，找不到返回gorm.ErrRecordNotFound
	Find(subscriberID, channelID uint64) (*model.Subscription, error)
	Create(sub *model.Subscription) error
	DeleteByID(id uint64) error

	CountByChannel(channelID uint64) (int64, error)
	// 某频道的全部订阅者，预加载Subscriber用户信息
	FindByChannel(channelID uint64) ([]model.Subscription, error)
	// 某用户订阅的全部频道，预加载Channel用户信息
	FindBySubscriber(subscriberID uint64) ([]model.Subscription, error)

	WithTx(tx *gorm.DB) SubscriptionRepository
}

type subscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) WithTx(tx *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: tx}
}

func (r *subscriptionRepository) Find(subscriberID, channelID uint64) (*model.Subscription, error) {
	var sub model.Subscription
	err := r.db.Where("subscriber_id = ? AND channel_id = ?", subscriberID, channelID).First(&sub).Error
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *subscriptionRepository) Create(sub *model.Subscription) error {
	return r.db.Create(sub).Error
}

func (r *subscriptionRepository) DeleteByID(id uint64) error {
	return r.db.Exec("DELETE FROM subscriptions WHERE id = ?", id).Error
}

func (r *subscriptionRepository) CountByChannel(channelID uint64) (int64, error) {
	var count int64
	err := r.db.Model(&model.Subscription{}).Where("channel_id = ?", channelID).Count(&count).Error
	return count, err
}

func (r *subscriptionRepository) FindByChannel(channelID uint64) ([]model.Subscription, error) {
	var subs []model.Subscription
	err := r.db.Preload("Subscriber").
		Where("channel_id = ?", channelID).
		Order("created_at desc").
		Find(&subs).Error
	return subs, err
}

func (r *subscriptionRepository) FindBySubscriber(subscriberID uint64) ([]model.Subscription, error) {
	var subs []model.Subscription
	err := r.db.Preload("Channel").
		Where("subscriber_id = ?", subscriberID).
		Order("created_at desc").
		Find(&subs).Error
	return subs, err
}
