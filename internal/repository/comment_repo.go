package repository

import (
	"VidTube/internal/model"

	"gorm.io/gorm"
)

type CommentRepository interface {
	Create(comment *model.Comment) error
	FindByID(commentID uint64) (*model.Comment, error)

	// 分页获取视频的评论，desc为true时最新的在前
	FindByVideoID(videoID uint64, offset, limit int, desc bool) ([]model.Comment, error)
	// 某视频下全部评论的ID，删除视频时级联清理评论上的点赞用
	IDsByVideo(videoID uint64) ([]uint64, error)
	DeleteByVideoID(videoID uint64) error
	DistinctIDsByOwner(ownerID uint64) ([]uint64, error)

	WithTx(tx *gorm.DB) CommentRepository
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

// WithTx 返回一个新的、使用事务的 commentRepository 实例
func (r *commentRepository) WithTx(tx *gorm.DB) CommentRepository {
	return &commentRepository{db: tx}
}

func (r *commentRepository) Create(comment *model.Comment) error {
	return r.db.Create(comment).Error
}

// 利用commentID找comment，顺便把作者Preload进去
func (r *commentRepository) FindByID(commentID uint64) (*model.Comment, error) {
	var result model.Comment
	err := r.db.Preload("Owner").First(&result, commentID).Error
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *commentRepository) FindByVideoID(videoID uint64, offset, limit int, desc bool) ([]model.Comment, error) {
	order := "created_at asc"
	if desc {
		order = "created_at desc"
	}
	var comments []model.Comment
	err := r.db.
		Preload("Owner"). // 预加载评论的作者信息，一次性查出来
		Where("video_id = ?", videoID).
		Order(order).
		Offset(offset).
		Limit(limit).
		Find(&comments).Error
	return comments, err
}

func (r *commentRepository) IDsByVideo(videoID uint64) ([]uint64, error) {
	var ids []uint64
	err := r.db.Model(&model.Comment{}).
		Where("video_id = ?", videoID).
		Pluck("id", &ids).Error
	return ids, err
}

func (r *commentRepository) DeleteByVideoID(videoID uint64) error {
	return r.db.Where("video_id = ?", videoID).Delete(&model.Comment{}).Error
}

func (r *commentRepository) DistinctIDsByOwner(ownerID uint64) ([]uint64, error) {
	var ids []uint64
	err := r.db.Model(&model.Comment{}).
		Where("owner_id = ?", ownerID).
		Pluck("id", &ids).Error
	return ids, err
}
