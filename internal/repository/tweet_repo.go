package repository

import (
	"VidTube/internal/model"

	"gorm.io/gorm"
)

type TweetRepository interface {
	Create(tweet *model.Tweet) error
	FindByID(tweetID uint64) (*model.Tweet, error)
	DistinctIDsByOwner(ownerID uint64) ([]uint64, error)
}

type tweetRepository struct {
	db *gorm.DB
}

func NewTweetRepository(db *gorm.DB) TweetRepository {
	return &tweetRepository{db: db}
}

func (r *tweetRepository) Create(tweet *model.Tweet) error {
	return r.db.Create(tweet).Error
}

func (r *tweetRepository) FindByID(tweetID uint64) (*model.Tweet, error) {
	var result model.Tweet
	err := r.db.Preload("Owner").First(&result, tweetID).Error
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *tweetRepository) DistinctIDsByOwner(ownerID uint64) ([]uint64, error) {
	var ids []uint64
	err := r.db.Model(&model.Tweet{}).
		Where("owner_id = ?", ownerID).
		Pluck("id", &ids).Error
	return ids, err
}
