package service

import (
	"VidTube/internal/apperr"
	"VidTube/internal/data"
	"VidTube/internal/model"
	"VidTube/internal/repository"
	"VidTube/pkg/logger"
	"errors"

	"gorm.io/gorm"
)

// RelationService 负责“存在即状态”的开关型关联：点赞和订阅
// 同一个调用既是开也是关：记录不存在就创建，存在就删除，连续调两次回到原状
type RelationService interface {
	// 返回翻转后的记录和created标志（true=本次创建，false=本次删除）
	ToggleLike(userID, targetID uint64, kind model.LikeKind) (*model.Like, bool, error)
	ToggleSubscription(subscriberID, channelID uint64) (*model.Subscription, bool, error)

	GetLikedVideos(userID uint64) ([]model.Video, error)
	GetSubscribedChannels(subscriberID uint64) ([]model.Subscription, error)
	GetChannelSubscribers(channelID uint64) ([]model.Subscription, error)
}

type relationService struct {
	likeRepo         repository.LikeRepository
	subscriptionRepo repository.SubscriptionRepository
	videoRepo        repository.VideoRepository
	commentRepo      repository.CommentRepository
	tweetRepo        repository.TweetRepository
	userRepo         repository.UserRepository
	uow              data.UnitOfWork
}

func NewRelationService(
	likeRepo repository.LikeRepository,
	subscriptionRepo repository.SubscriptionRepository,
	videoRepo repository.VideoRepository,
	commentRepo repository.CommentRepository,
	tweetRepo repository.TweetRepository,
	userRepo repository.UserRepository,
	uow data.UnitOfWork,
) RelationService {
	return &relationService{
		likeRepo:         likeRepo,
		subscriptionRepo: subscriptionRepo,
		videoRepo:        videoRepo,
		commentRepo:      commentRepo,
		tweetRepo:        tweetRepo,
		userRepo:         userRepo,
		uow:              uow,
	}
}

// 确认被点赞的对象真实存在，按类型分派到对应的仓库
// “不存在”统一折算成404一类的合并错误，不区分是真没有还是没权限看
func (s *relationService) ensureLikeTarget(targetID uint64, kind model.LikeKind) error {
	var err error
	switch kind {
	case model.LikeKindVideo:
		_, err = s.videoRepo.FindByID(targetID)
	case model.LikeKindComment:
		_, err = s.commentRepo.FindByID(targetID)
	case model.LikeKindTweet:
		_, err = s.tweetRepo.FindByID(targetID)
	default:
		return apperr.New(apperr.KindBadRequest, "不支持的点赞对象类型")
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.New(apperr.KindNotFound, "点赞对象不存在或无权访问")
		}
		return apperr.Wrap(apperr.KindInternal, "查询点赞对象失败", err)
	}
	return nil
}

// 点赞/取消点赞：1、确认对象存在 2、事务内按三元组查找 3、有则删（取消），无则建（点赞）
// 两个分支是仅有的两种结果，不存在中间态
func (s *relationService) ToggleLike(userID, targetID uint64, kind model.LikeKind) (*model.Like, bool, error) {
	if err := s.ensureLikeTarget(targetID, kind); err != nil {
		return nil, false, err
	}

	var (
		record  *model.Like
		created bool
	)
	err := s.uow.Execute(func(repos *data.TransactionalRepositories) error {
		existing, err := repos.LikeRepo.FindByTarget(userID, targetID, kind)
		if err == nil {
			// 已点赞，本次调用是“取消”，把删掉的记录返回给调用方
			record = existing
			created = false
			return repos.LikeRepo.DeleteByID(existing.ID)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		newLike := &model.Like{UserID: userID, TargetID: targetID, TargetKind: kind}
		if err := repos.LikeRepo.Create(newLike); err != nil {
			return err
		}
		record = newLike
		created = true
		return nil
	})
	if err != nil {
		// 并发下两个请求可能同时观察到“未点赞”并都走创建分支，
		// 唯一索引保证只有一条落库；输掉的一方把已存在的记录当作创建成功返回
		if repository.IsDuplicateKey(err) {
			logger.Log.WithError(err).
				WithField("user_id", userID).
				WithField("target_id", targetID).
				Warn("点赞并发冲突，按已点赞处理")
			existing, findErr := s.likeRepo.FindByTarget(userID, targetID, kind)
			if findErr != nil {
				// 赢家可能在这个窗口里又取消了点赞：最终状态是“未点赞”，
				// 对本次请求来说等价于点了又取消，按取消成功返回
				if errors.Is(findErr, gorm.ErrRecordNotFound) {
					return &model.Like{UserID: userID, TargetID: targetID, TargetKind: kind}, false, nil
				}
				return nil, false, apperr.Wrap(apperr.KindInternal, "点赞失败", findErr)
			}
			return existing, true, nil
		}
		return nil, false, apperr.Wrap(apperr.KindInternal, "点赞操作失败", err)
	}
	return record, created, nil
}

// 订阅/取消订阅，和点赞同构，多一条“不能订阅自己”的规则
func (s *relationService) ToggleSubscription(subscriberID, channelID uint64) (*model.Subscription, bool, error) {
	if subscriberID == channelID {
		// 自己订阅自己是业务错误，直接拒绝，不碰存储
		return nil, false, apperr.New(apperr.KindBadRequest, "不能订阅自己的频道")
	}
	if _, err := s.userRepo.FindByID(channelID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, apperr.New(apperr.KindNotFound, "频道不存在或无权访问")
		}
		return nil, false, apperr.Wrap(apperr.KindInternal, "查询频道失败", err)
	}

	var (
		record  *model.Subscription
		created bool
	)
	err := s.uow.Execute(func(repos *data.TransactionalRepositories) error {
		existing, err := repos.SubscriptionRepo.Find(subscriberID, channelID)
		if err == nil {
			record = existing
			created = false
			return repos.SubscriptionRepo.DeleteByID(existing.ID)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		newSub := &model.Subscription{SubscriberID: subscriberID, ChannelID: channelID}
		if err := repos.SubscriptionRepo.Create(newSub); err != nil {
			return err
		}
		record = newSub
		created = true
		return nil
	})
	if err != nil {
		if repository.IsDuplicateKey(err) {
			logger.Log.WithError(err).
				WithField("subscriber_id", subscriberID).
				WithField("channel_id", channelID).
				Warn("订阅并发冲突，按已订阅处理")
			existing, findErr := s.subscriptionRepo.Find(subscriberID, channelID)
			if findErr != nil {
				if errors.Is(findErr, gorm.ErrRecordNotFound) {
					return &model.Subscription{SubscriberID: subscriberID, ChannelID: channelID}, false, nil
				}
				return nil, false, apperr.Wrap(apperr.KindInternal, "订阅失败", findErr)
			}
			return existing, true, nil
		}
		return nil, false, apperr.Wrap(apperr.KindInternal, "订阅操作失败", err)
	}
	return record, created, nil
}

// 某用户点赞过的视频列表：先从likes表取目标ID，再批量查视频
func (s *relationService) GetLikedVideos(userID uint64) ([]model.Video, error) {
	ids, err := s.likeRepo.FindTargetIDsByUser(userID, model.LikeKindVideo)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "查询点赞记录失败", err)
	}
	if len(ids) == 0 {
		return nil, nil // 空列表不是错误
	}
	videos, err := s.videoRepo.FindByIDs(ids)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "查询视频失败", err)
	}
	return videos, nil
}

func (s *relationService) GetSubscribedChannels(subscriberID uint64) ([]model.Subscription, error) {
	subs, err := s.subscriptionRepo.FindBySubscriber(subscriberID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "查询订阅列表失败", err)
	}
	return subs, nil
}

func (s *relationService) GetChannelSubscribers(channelID uint64) ([]model.Subscription, error) {
	subs, err := s.subscriptionRepo.FindByChannel(channelID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "查询订阅者列表失败", err)
	}
	return subs, nil
}
