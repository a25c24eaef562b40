package service

import (
	"VidTube/internal/apperr"
	"VidTube/internal/model"
	"VidTube/internal/repository"
	"errors"
	"strings"

	"gorm.io/gorm"
)

type CommentService interface {
	AddComment(userID, videoID uint64, content string) (*model.Comment, error)
	// 分页获取一个视频的评论，sortType为"asc"/"desc"，默认最新在前
	GetVideoComments(videoID uint64, page, limit int, sortType string) ([]model.Comment, error)
}

type commentService struct {
	commentRepo repository.CommentRepository
	videoRepo   repository.VideoRepository
}

func NewCommentService(commentRepo repository.CommentRepository, videoRepo repository.VideoRepository) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		videoRepo:   videoRepo,
	}
}

// 发表评论：1、内容非空校验 2、确认视频存在 3、入库后带作者信息重查一遍返回
func (s *commentService) AddComment(userID, videoID uint64, content string) (*model.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, apperr.New(apperr.KindBadRequest, "评论内容不能为空")
	}
	if _, err := s.videoRepo.FindByID(videoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.KindNotFound, "视频不存在或无权访问")
		}
		return nil, apperr.Wrap(apperr.KindInternal, "查询视频失败", err)
	}
	newComment := &model.Comment{
		OwnerID: userID,
		VideoID: videoID,
		Content: content,
	}
	if err := s.commentRepo.Create(newComment); err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "评论失败", err)
	}
	// 创建成功后，立刻把它带着作者信息再查出来
	created, err := s.commentRepo.FindByID(newComment.ID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "评论失败", err)
	}
	return created, nil
}

// 获取视频评论列表：1、确认视频存在 2、分页参数合法化 3、按时间排序取一页
func (s *commentService) GetVideoComments(videoID uint64, page, limit int, sortType string) ([]model.Comment, error) {
	if _, err := s.videoRepo.FindByID(videoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.KindNotFound, "视频不存在或无权访问")
		}
		return nil, apperr.Wrap(apperr.KindInternal, "查询视频失败", err)
	}
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	comments, err := s.commentRepo.FindByVideoID(videoID, (page-1)*limit, limit, sortType != "asc")
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "查询评论失败", err)
	}
	// 空页不是错误，handler用“暂无评论”文案渲染
	return comments, nil
}
