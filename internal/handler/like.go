package handler

import (
	"VidTube/internal/dto"
	"VidTube/internal/model"
	"VidTube/internal/service"
	"VidTube/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

type LikeHandler interface {
	ToggleVideoLike(c *gin.Context)
	ToggleCommentLike(c *gin.Context)
	ToggleTweetLike(c *gin.Context)
	GetLikedVideos(c *gin.Context)
}

type likeHandler struct {
	RelationService service.RelationService
}

func NewLikeHandler(relationService service.RelationService) LikeHandler {
	return &likeHandler{RelationService: relationService}
}

// 三种点赞共用的流程：1、校验路径参数ID 2、从认证后的context取userID 3、toggle
// 本次创建回201，本次删除回200，翻转后的那条记录放在data里
func (h *likeHandler) toggle(c *gin.Context, paramName string, kind model.LikeKind) {
	targetID, ok := pathID(c, paramName)
	if !ok {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	logCtx := logger.Log.WithField("user_id", userID).
		WithField("target_id", targetID).
		WithField("target_kind", kind)

	like, created, err := h.RelationService.ToggleLike(userID, targetID, kind)
	if err != nil {
		logCtx.WithError(err).Error("点赞切换失败")
		sendError(c, err)
		return
	}
	if created {
		logCtx.Info("点赞成功")
		sendSuccess(c, http.StatusCreated, "点赞成功", dto.ToLikeResponse(like))
		return
	}
	logCtx.Info("取消点赞成功")
	sendSuccess(c, http.StatusOK, "取消点赞成功", dto.ToLikeResponse(like))
}

func (h *likeHandler) ToggleVideoLike(c *gin.Context) {
	h.toggle(c, "video_id", model.LikeKindVideo)
}

func (h *likeHandler) ToggleCommentLike(c *gin.Context) {
	h.toggle(c, "comment_id", model.LikeKindComment)
}

func (h *likeHandler) ToggleTweetLike(c *gin.Context) {
	h.toggle(c, "tweet_id", model.LikeKindTweet)
}

// 当前用户点赞过的视频列表
func (h *likeHandler) GetLikedVideos(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	videos, err := h.RelationService.GetLikedVideos(userID)
	if err != nil {
		logger.Log.WithError(err).WithField("user_id", userID).Error("获取点赞视频失败")
		sendError(c, err)
		return
	}
	message := "获取点赞视频成功"
	if len(videos) == 0 {
		message = "暂无点赞视频"
	}
	sendSuccess(c, http.StatusOK, message, dto.ToVideoResponses(videos))
}
