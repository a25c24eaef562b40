package data

import (
	"VidTube/internal/repository"

	"gorm.io/gorm"
)

// UnitOfWork 定义了事务管理器的接口
// toggle类操作的“查找-插入/删除”两步、删除视频的级联清理，
// 都必须落在同一个事务里
type UnitOfWork interface {
	// Execute 将一个函数包裹在数据库事务中执行，
	// 并为这个函数提供能在事务中工作的 Repositories
	Execute(func(repos *TransactionalRepositories) error) error
}

// TransactionalRepositories 持有所有需要在同一个事务中操作的 Repository
type TransactionalRepositories struct {
	LikeRepo         repository.LikeRepository
	SubscriptionRepo repository.SubscriptionRepository
	VideoRepo        repository.VideoRepository
	CommentRepo      repository.CommentRepository
}

// db是事务的入口和管理者
type gormUnitOfWork struct {
	db               *gorm.DB
	likeRepo         repository.LikeRepository
	subscriptionRepo repository.SubscriptionRepository
	videoRepo        repository.VideoRepository
	commentRepo      repository.CommentRepository
}

// NewUnitOfWork 创建一个基于GORM的“工作单元”
// 注意，它接收的是原始的、非事务的 repositories
func NewUnitOfWork(
	db *gorm.DB,
	likeRepo repository.LikeRepository,
	subscriptionRepo repository.SubscriptionRepository,
	videoRepo repository.VideoRepository,
	commentRepo repository.CommentRepository,
) UnitOfWork {
	return &gormUnitOfWork{
		db:               db,
		likeRepo:         likeRepo,
		subscriptionRepo: subscriptionRepo,
		videoRepo:        videoRepo,
		commentRepo:      commentRepo,
	}
}

// 契约：fn func(repos *TransactionalRepositories) error
// 为fn创建事务，把绑定了该事务的Repo副本“注入”给业务逻辑
// fn返回error则整个事务回滚，返回nil则提交
func (u *gormUnitOfWork) Execute(fn func(repos *TransactionalRepositories) error) error {
	return u.db.Transaction(func(tx *gorm.DB) error {
		transactionalRepos := &TransactionalRepositories{
			LikeRepo:         u.likeRepo.WithTx(tx),
			SubscriptionRepo: u.subscriptionRepo.WithTx(tx),
			VideoRepo:        u.videoRepo.WithTx(tx),
			CommentRepo:      u.commentRepo.WithTx(tx),
		}
		return fn(transactionalRepos)
	})
}
