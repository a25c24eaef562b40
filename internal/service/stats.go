package service

import (
	"VidTube/internal/apperr"
	"VidTube/internal/model"
	"VidTube/internal/repository"

	"golang.org/x/sync/errgroup"
)

// ChannelStats 是频道数据面板的聚合结果
// 全部是确定的整数：频道什么都没有时就是一排0，不会出现null
type ChannelStats struct {
	TotalVideos       int64
	TotalSubscribers  int64
	TotalVideoLikes   int64
	TotalTweetLikes   int64
	TotalCommentLikes int64
	TotalViews        int64
}

type StatsService interface {
	ChannelStats(ownerID uint64) (*ChannelStats, error)
}

type statsService struct {
	videoRepo        repository.VideoRepository
	tweetRepo        repository.TweetRepository
	commentRepo      repository.CommentRepository
	likeRepo         repository.LikeRepository
	subscriptionRepo repository.SubscriptionRepository
}

func NewStatsService(
	videoRepo repository.VideoRepository,
	tweetRepo repository.TweetRepository,
	commentRepo repository.CommentRepository,
	likeRepo repository.LikeRepository,
	subscriptionRepo repository.SubscriptionRepository,
) StatsService {
	return &statsService{
		videoRepo:        videoRepo,
		tweetRepo:        tweetRepo,
		commentRepo:      commentRepo,
		likeRepo:         likeRepo,
		subscriptionRepo: subscriptionRepo,
	}
}

// 频道统计，三个阶段的扇出/扇入，每个阶段内的子查询相互独立、并行执行：
// 1、视频数 ∥ 订阅者数
// 2、三类自有内容的ID集合
// 3、三类内容收到的点赞数 ∥ 播放量总和
// 全部是只读查询，不开跨查询事务，结果是“某一时刻附近”的快照
// 任意一条子查询失败，整个聚合失败，不返回残缺的统计
func (s *statsService) ChannelStats(ownerID uint64) (*ChannelStats, error) {
	stats := &ChannelStats{}

	// 第一阶段：两个独立的计数
	var g errgroup.Group
	g.Go(func() error {
		n, err := s.videoRepo.CountByOwner(ownerID)
		stats.TotalVideos = n
		return err
	})
	g.Go(func() error {
		n, err := s.subscriptionRepo.CountByChannel(ownerID)
		stats.TotalSubscribers = n
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "频道统计失败", err)
	}

	// 第二阶段：三类内容的ID集合，供第三阶段的IN查询使用
	var (
		videoIDs   []uint64
		tweetIDs   []uint64
		commentIDs []uint64
	)
	var g2 errgroup.Group
	g2.Go(func() error {
		ids, err := s.videoRepo.DistinctIDsByOwner(ownerID)
		videoIDs = ids
		return err
	})
	g2.Go(func() error {
		ids, err := s.tweetRepo.DistinctIDsByOwner(ownerID)
		tweetIDs = ids
		return err
	})
	g2.Go(func() error {
		ids, err := s.commentRepo.DistinctIDsByOwner(ownerID)
		commentIDs = ids
		return err
	})
	if err := g2.Wait(); err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "频道统计失败", err)
	}

	// 第三阶段：点赞计数和播放总量
	// ID集合为空就短路成0，绝不对空集合发IN查询
	var g3 errgroup.Group
	g3.Go(func() error {
		if len(videoIDs) == 0 {
			return nil
		}
		n, err := s.likeRepo.CountByTargets(model.LikeKindVideo, videoIDs)
		stats.TotalVideoLikes = n
		return err
	})
	g3.Go(func() error {
		if len(tweetIDs) == 0 {
			return nil
		}
		n, err := s.likeRepo.CountByTargets(model.LikeKindTweet, tweetIDs)
		stats.TotalTweetLikes = n
		return err
	})
	g3.Go(func() error {
		if len(commentIDs) == 0 {
			return nil
		}
		n, err := s.likeRepo.CountByTargets(model.LikeKindComment, commentIDs)
		stats.TotalCommentLikes = n
		return err
	})
	g3.Go(func() error {
		if len(videoIDs) == 0 {
			return nil // 没有视频，播放量就是0
		}
		total, err := s.videoRepo.SumViewsByOwner(ownerID)
		stats.TotalViews = total
		return err
	})
	if err := g3.Wait(); err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "频道统计失败", err)
	}

	return stats, nil
}
