package service

import (
	"VidTube/internal/apperr"
	"VidTube/internal/data"
	"VidTube/internal/model"
	"VidTube/internal/repository"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// 允许排序的列白名单，防止把用户输入直接拼进ORDER BY
var videoSortColumns = map[string]bool{
	"created_at": true,
	"views":      true,
	"duration":   true,
	"title":      true,
}

// ListVideosOptions 是对外的列表查询参数，原样来自查询串，
// 合法化（分页、排序、可见性）全部在service内完成
type ListVideosOptions struct {
	Query    string
	OwnerID  uint64 // 0表示不限定频道
	SortBy   string
	SortType string // "asc" / "desc"
	Page     int
	Limit    int
}

type PublishVideoInput struct {
	Title        string
	Description  string
	VideoURL     string
	ThumbnailURL string
	Duration     float64
}

// UpdateVideoInput 是元数据的部分更新，空字段表示不改
type UpdateVideoInput struct {
	Title       string
	Description string
}

type VideoService interface {
	PublishVideo(ownerID uint64, in PublishVideoInput) (*model.Video, error)
	GetVideoByID(videoID uint64) (*model.Video, error)
	// callerID是已认证的调用方，控制未发布视频的可见性
	ListVideos(callerID uint64, opts ListVideosOptions) ([]model.Video, error)
	// 频道主查看自己的全部视频（含未发布）
	GetChannelVideos(ownerID uint64) ([]model.Video, error)
	TogglePublishStatus(ownerID, videoID uint64) (*model.Video, error)
	UpdateVideo(ownerID, videoID uint64, in UpdateVideoInput) (*model.Video, error)
	DeleteVideo(ownerID, videoID uint64) (*model.Video, error)
}

type videoService struct {
	sf singleflight.Group

	videoRepo repository.VideoRepository
	uow       data.UnitOfWork
}

func NewVideoService(videoRepo repository.VideoRepository, uow data.UnitOfWork) VideoService {
	return &videoService{
		videoRepo: videoRepo,
		uow:       uow,
	}
}

func (s *videoService) PublishVideo(ownerID uint64, in PublishVideoInput) (*model.Video, error) {
	if in.Title == "" || in.Description == "" {
		return nil, apperr.New(apperr.KindBadRequest, "标题和简介不能为空")
	}
	newVideo := &model.Video{
		OwnerID:      ownerID,
		Title:        in.Title,
		Description:  in.Description,
		VideoURL:     in.VideoURL,
		ThumbnailURL: in.ThumbnailURL,
		Duration:     in.Duration,
		IsPublished:  true,
	}
	if err := s.videoRepo.Create(newVideo); err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "发布视频失败", err)
	}
	return newVideo, nil
}

// 根据videoID查找视频：1、查Redis缓存 2、未命中则通过SingleFlight查库并回填
func (s *videoService) GetVideoByID(videoID uint64) (*model.Video, error) {
	video, err := s.videoRepo.GetVideoCache(videoID)
	if err == nil && video != nil {
		return video, nil
	}
	// 不是缓存未命中，而是Redis本身出错了
	if err != nil && err != redis.Nil {
		return nil, apperr.Wrap(apperr.KindInternal, "查询视频失败", err)
	}
	// 缓存未命中，SingleFlight合并同一时间对同一个视频的查库
	key := fmt.Sprintf("get_video_%d", videoID)
	result, err, _ := s.sf.Do(key, func() (interface{}, error) {
		dbVideo, dbErr := s.videoRepo.FindByID(videoID)
		if dbErr != nil {
			return nil, dbErr
		}
		_ = s.videoRepo.SetVideoCache(dbVideo)
		return dbVideo, nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.KindNotFound, "视频不存在或无权访问")
		}
		return nil, apperr.Wrap(apperr.KindInternal, "查询视频失败", err)
	}
	return result.(*model.Video), nil
}

// 视频列表：过滤+排序+分页
// 可见性是硬性规则：只要不是在看自己的频道，未发布的视频一律过滤掉
func (s *videoService) ListVideos(callerID uint64, opts ListVideosOptions) ([]model.Video, error) {
	page := opts.Page
	if page < 1 {
		page = defaultPage
	}
	limit := opts.Limit
	if limit < 1 {
		limit = defaultLimit
	}
	sortBy := opts.SortBy
	if !videoSortColumns[sortBy] {
		sortBy = "created_at"
	}

	listOpts := repository.VideoListOptions{
		Query:   opts.Query,
		OwnerID: opts.OwnerID,
		// 调用方≠频道主（含未限定频道的全站列表）时强制只看已发布
		OnlyPublished: opts.OwnerID != callerID,
		SortBy:        sortBy,
		SortDesc:      opts.SortType != "asc", // 默认倒序
		Offset:        (page - 1) * limit,
		Limit:         limit,
	}
	videos, err := s.videoRepo.List(listOpts)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "查询视频列表失败", err)
	}
	// 没有匹配不是错误，翻过尾页也不是，交给handler用“无结果”文案渲染
	return videos, nil
}

func (s *videoService) GetChannelVideos(ownerID uint64) ([]model.Video, error) {
	videos, err := s.videoRepo.FindByOwner(ownerID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "查询频道视频失败", err)
	}
	return videos, nil
}

// 翻转发布状态，只有频道主本人可以操作
// “视频不存在”和“视频不是你的”刻意返回同一种错误
func (s *videoService) TogglePublishStatus(ownerID, videoID uint64) (*model.Video, error) {
	video, err := s.videoRepo.FindOwned(videoID, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.KindNotFound, "视频不存在或无权访问")
		}
		return nil, apperr.Wrap(apperr.KindInternal, "查询视频失败", err)
	}
	if err := s.videoRepo.SetPublished(video.ID, !video.IsPublished); err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "更新发布状态失败", err)
	}
	video.IsPublished = !video.IsPublished
	return video, nil
}

// 更新视频元数据，只改传了的字段，和发布状态翻转一样只许频道主本人操作
func (s *videoService) UpdateVideo(ownerID, videoID uint64, in UpdateVideoInput) (*model.Video, error) {
	fields := map[string]interface{}{}
	if in.Title != "" {
		fields["title"] = in.Title
	}
	if in.Description != "" {
		fields["description"] = in.Description
	}
	if len(fields) == 0 {
		return nil, apperr.New(apperr.KindBadRequest, "没有要更新的字段")
	}

	video, err := s.videoRepo.FindOwned(videoID, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.KindNotFound, "视频不存在或无权访问")
		}
		return nil, apperr.Wrap(apperr.KindInternal, "查询视频失败", err)
	}
	if err := s.videoRepo.UpdateDetails(video.ID, fields); err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "更新视频失败", err)
	}
	if in.Title != "" {
		video.Title = in.Title
	}
	if in.Description != "" {
		video.Description = in.Description
	}
	return video, nil
}

// 删除视频：1、校验归属（“不存在”和“不是你的”不作区分）
// 2、事务内级联清理：视频上的赞、评论上的赞、评论，最后是视频本身
// 不留孤儿数据，频道统计不会再把已删视频的评论算进去
func (s *videoService) DeleteVideo(ownerID, videoID uint64) (*model.Video, error) {
	video, err := s.videoRepo.FindOwned(videoID, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.KindNotFound, "视频不存在或无权删除")
		}
		return nil, apperr.Wrap(apperr.KindInternal, "查询视频失败", err)
	}

	err = s.uow.Execute(func(repos *data.TransactionalRepositories) error {
		if err := repos.LikeRepo.DeleteByTargets(model.LikeKindVideo, []uint64{video.ID}); err != nil {
			return err
		}
		commentIDs, err := repos.CommentRepo.IDsByVideo(video.ID)
		if err != nil {
			return err
		}
		if err := repos.LikeRepo.DeleteByTargets(model.LikeKindComment, commentIDs); err != nil {
			return err
		}
		if err := repos.CommentRepo.DeleteByVideoID(video.ID); err != nil {
			return err
		}
		return repos.VideoRepo.DeleteByID(video.ID)
	})
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "删除视频失败", err)
	}
	return video, nil
}
