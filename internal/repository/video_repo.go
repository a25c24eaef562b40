package repository

import (
	"VidTube/internal/model"
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

// VideoListOptions 是列表查询的全部条件，由service层组装好
// （可见性规则、排序白名单、分页合法化都在service层完成，repo只负责翻译成SQL）
type VideoListOptions struct {
	Query         string // 标题的大小写不敏感子串匹配
	OwnerID       uint64 // 0表示不按频道过滤
	OnlyPublished bool
	SortBy        string // 已通过白名单校验的列名
	SortDesc      bool
	Offset        int
	Limit         int
}

type VideoRepository interface {
	Create(video *model.Video) error
	FindByID(videoID uint64) (*model.Video, error)
	FindByIDs(videoIDs []uint64) ([]model.Video, error)
	// 频道主视角的查找：ID和归属必须同时匹配，“不存在”和“不是你的”不作区分
	FindOwned(videoID, ownerID uint64) (*model.Video, error)

	List(opts VideoListOptions) ([]model.Video, error)
	FindByOwner(ownerID uint64) ([]model.Video, error)

	CountByOwner(ownerID uint64) (int64, error)
	SumViewsByOwner(ownerID uint64) (int64, error)
	DistinctIDsByOwner(ownerID uint64) ([]uint64, error)

	SetPublished(videoID uint64, published bool) error
	// 部分更新视频元数据，fields的键由service层白名单控制
	UpdateDetails(videoID uint64, fields map[string]interface{}) error
	DeleteByID(videoID uint64) error
	// 播放量原子+1，由消费者进程调用
	IncrementViews(videoID uint64) error

	GetVideoCache(videoID uint64) (*model.Video, error)
	SetVideoCache(video *model.Video) error
	DropVideoCache(videoID uint64) error

	WithTx(tx *gorm.DB) VideoRepository
}

type videoRepository struct {
	db  *gorm.DB
	rdb *redis.Client
}

func NewVideoRepository(db *gorm.DB, rdb *redis.Client) VideoRepository {
	return &videoRepository{
		db:  db,
		rdb: rdb,
	}
}

// WithTx 返回一个新的、使用事务的 videoRepository 实例
// rdb必须跟着副本走，事务内的删除/更新才不会漏掉缓存失效
func (r *videoRepository) WithTx(tx *gorm.DB) VideoRepository {
	return &videoRepository{
		db:  tx,
		rdb: r.rdb,
	}
}

func (r *videoRepository) Create(video *model.Video) error {
	return r.db.Create(video).Error
}

// 利用videoID找视频，preload其中的Owner结构
func (r *videoRepository) FindByID(videoID uint64) (*model.Video, error) {
	var video model.Video
	err := r.db.Preload("Owner").First(&video, videoID).Error
	if err != nil {
		return nil, err
	}
	return &video, nil
}

func (r *videoRepository) FindByIDs(videoIDs []uint64) ([]model.Video, error) {
	if len(videoIDs) == 0 {
		return nil, nil
	}
	var videos []model.Video
	err := r.db.Preload("Owner").
		Where("id IN (?)", videoIDs).
		Find(&videos).Error
	return videos, err
}

func (r *videoRepository) FindOwned(videoID, ownerID uint64) (*model.Video, error) {
	var video model.Video
	err := r.db.Where("id = ? AND owner_id = ?", videoID, ownerID).First(&video).Error
	if err != nil {
		return nil, err
	}
	return &video, nil
}

func (r *videoRepository) List(opts VideoListOptions) ([]model.Video, error) {
	q := r.db.Model(&model.Video{}).Preload("Owner")
	if opts.Query != "" {
		q = q.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(opts.Query)+"%")
	}
	if opts.OwnerID != 0 {
		q = q.Where("owner_id = ?", opts.OwnerID)
	}
	if opts.OnlyPublished {
		q = q.Where("is_published = ?", true)
	}
	dir := "asc"
	if opts.SortDesc {
		dir = "desc"
	}
	var videos []model.Video
	err := q.Order(opts.SortBy + " " + dir).
		Offset(opts.Offset).
		Limit(opts.Limit).
		Find(&videos).Error
	return videos, err
}

// 频道主自己的全部视频（含未发布），时间倒序
func (r *videoRepository) FindByOwner(ownerID uint64) ([]model.Video, error) {
	var videos []model.Video
	err := r.db.Where("owner_id = ?", ownerID).Order("created_at desc").Find(&videos).Error
	return videos, err
}

func (r *videoRepository) CountByOwner(ownerID uint64) (int64, error) {
	var count int64
	err := r.db.Model(&model.Video{}).Where("owner_id = ?", ownerID).Count(&count).Error
	return count, err
}

func (r *videoRepository) SumViewsByOwner(ownerID uint64) (int64, error) {
	var total int64
	// 没有任何视频时SUM是NULL，用COALESCE保证拿到的是0而不是扫描错误
	err := r.db.Model(&model.Video{}).
		Where("owner_id = ?", ownerID).
		Select("COALESCE(SUM(views), 0)").
		Scan(&total).Error
	return total, err
}

func (r *videoRepository) DistinctIDsByOwner(ownerID uint64) ([]uint64, error) {
	var ids []uint64
	err := r.db.Model(&model.Video{}).
		Where("owner_id = ?", ownerID).
		Pluck("id", &ids).Error
	return ids, err
}

func (r *videoRepository) SetPublished(videoID uint64, published bool) error {
	err := r.db.Model(&model.Video{}).Where("id = ?", videoID).UpdateColumn("is_published", published).Error
	if err != nil {
		return err
	}
	// 发布状态变了，旧缓存必须失效
	return r.DropVideoCache(videoID)
}

func (r *videoRepository) UpdateDetails(videoID uint64, fields map[string]interface{}) error {
	err := r.db.Model(&model.Video{}).Where("id = ?", videoID).Updates(fields).Error
	if err != nil {
		return err
	}
	return r.DropVideoCache(videoID)
}

func (r *videoRepository) DeleteByID(videoID uint64) error {
	// 软删除，DeletedAt会被置位，后续查询都查不到
	err := r.db.Delete(&model.Video{}, videoID).Error
	if err != nil {
		return err
	}
	return r.DropVideoCache(videoID)
}

func (r *videoRepository) IncrementViews(videoID uint64) error {
	// UPDATE `videos` SET `views` = `views` + 1 WHERE id = ?，播放量单调递增
	return r.db.Model(&model.Video{}).Where("id = ?", videoID).UpdateColumn("views", gorm.Expr("views + ?", 1)).Error
}

// 返回存储单个视频信息的字符串Key
func (r *videoRepository) keyVideoInfo(videoID uint64) string {
	return fmt.Sprintf("video:info:%d", videoID)
}

// 从Redis缓存中获取单个Video信息
func (r *videoRepository) GetVideoCache(videoID uint64) (*model.Video, error) {
	if r.rdb == nil {
		return nil, nil // 消费者进程、事务副本里没有Redis
	}
	key := r.keyVideoInfo(videoID)
	videoJSON, err := r.rdb.Get(context.Background(), key).Result()
	if err == redis.Nil {
		return nil, nil // 缓存不存在，但Redis正常工作
	} else if err != nil {
		return nil, err // Redis本身出错了
	}
	var video model.Video
	if err := json.Unmarshal([]byte(videoJSON), &video); err != nil {
		return nil, err
	}
	return &video, nil
}

// 将单个视频信息存入Redis缓存，过期时间加随机抖动防止缓存雪崩
func (r *videoRepository) SetVideoCache(video *model.Video) error {
	if r.rdb == nil {
		return nil
	}
	key := r.keyVideoInfo(video.ID)
	videoJSON, err := json.Marshal(video)
	if err != nil {
		return err
	}
	expiration := time.Minute*5 + time.Duration(rand.Intn(60))*time.Second
	return r.rdb.Set(context.Background(), key, videoJSON, expiration).Err()
}

func (r *videoRepository) DropVideoCache(videoID uint64) error {
	if r.rdb == nil {
		return nil
	}
	return r.rdb.Del(context.Background(), r.keyVideoInfo(videoID)).Err()
}
