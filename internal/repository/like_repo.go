package repository

import (
	"VidTube/internal/model"

	"gorm.io/gorm"
)

type LikeRepository interface {
	// 按(用户,对象,类型)三元组查找点赞记录，找不到返回gorm.ErrRecordNotFound
	FindByTarget(userID, targetID uint64, kind model.LikeKind) (*model.Like, error)
	Create(like *model.Like) error
	DeleteByID(id uint64) error

	// 批量清理某一类对象集合上的全部点赞，删除视频时做级联清理用
	DeleteByTargets(kind model.LikeKind, targetIDs []uint64) error

	// 统计某一类对象集合收到的点赞总数，给频道数据面板用
	CountByTargets(kind model.LikeKind, targetIDs []uint64) (int64, error)
	// 某用户点赞过的某类对象的ID列表
	FindTargetIDsByUser(userID uint64, kind model.LikeKind) ([]uint64, error)

	WithTx(tx *gorm.DB) LikeRepository
}

type likeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

// WithTx 返回一个新的、使用事务的 likeRepository 实例
func (r *likeRepository) WithTx(tx *gorm.DB) LikeRepository {
	return &likeRepository{db: tx}
}

func (r *likeRepository) FindByTarget(userID, targetID uint64, kind model.LikeKind) (*model.Like, error) {
	var like model.Like
	err := r.db.Where("user_id = ? AND target_id = ? AND target_kind = ?", userID, targetID, kind).First(&like).Error
	if err != nil {
		return nil, err
	}
	return &like, nil
}

func (r *likeRepository) Create(like *model.Like) error {
	return r.db.Create(like).Error
}

func (r *likeRepository) DeleteByID(id uint64) error {
	// 用主键删，避免gorm对复合条件Delete的“翻译”问题
	return r.db.Exec("DELETE FROM likes WHERE id = ?", id).Error
}

func (r *likeRepository) DeleteByTargets(kind model.LikeKind, targetIDs []uint64) error {
	if len(targetIDs) == 0 {
		return nil
	}
	// 和DeleteByID一样走硬删除，软删除的残留行会被唯一索引挡住后续点赞
	return r.db.Exec("DELETE FROM likes WHERE target_kind = ? AND target_id IN (?)", kind, targetIDs).Error
}

func (r *likeRepository) CountByTargets(kind model.LikeKind, targetIDs []uint64) (int64, error) {
	var count int64
	err := r.db.Model(&model.Like{}).
		Where("target_kind = ? AND target_id IN (?)", kind, targetIDs).
		Count(&count).Error
	return count, err
}

func (r *likeRepository) FindTargetIDsByUser(userID uint64, kind model.LikeKind) ([]uint64, error) {
	var ids []uint64
	err := r.db.Model(&model.Like{}).
		Where("user_id = ? AND target_kind = ?", userID, kind).
		Order("created_at desc").
		Pluck("target_id", &ids).Error
	return ids, err
}
