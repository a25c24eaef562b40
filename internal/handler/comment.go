package handler

import (
	"VidTube/internal/dto"
	"VidTube/internal/service"
	"VidTube/pkg/logger"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type CommentHandler interface {
	AddComment(c *gin.Context)
	GetVideoComments(c *gin.Context)
}

type commentHandler struct {
	CommentService service.CommentService
}

func NewCommentHandler(commentService service.CommentService) CommentHandler {
	return &commentHandler{CommentService: commentService}
}

type AddCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// 发表评论：1、校验视频ID 2、解析Body 3、从context取userID 4、创建评论
func (h *commentHandler) AddComment(c *gin.Context) {
	videoID, ok := pathID(c, "video_id")
	if !ok {
		return
	}
	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Log.WithError(err).Error("评论参数解析失败")
		sendBadRequest(c, "无效的参数")
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	logCtx := logger.Log.WithField("user_id", userID).WithField("video_id", videoID)

	comment, err := h.CommentService.AddComment(userID, videoID, req.Content)
	if err != nil {
		logCtx.WithError(err).Error("创建评论失败")
		sendError(c, err)
		return
	}
	logCtx.WithField("comment_id", comment.ID).Info("评论创建成功")
	sendSuccess(c, http.StatusCreated, "评论成功", dto.ToCommentResponse(comment))
}

// 获取一个视频的评论：?page=&limit=&sort_type=，默认最新在前
func (h *commentHandler) GetVideoComments(c *gin.Context) {
	videoID, ok := pathID(c, "video_id")
	if !ok {
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	sortType := c.DefaultQuery("sort_type", "desc")

	comments, err := h.CommentService.GetVideoComments(videoID, page, limit, sortType)
	if err != nil {
		logger.Log.WithError(err).WithField("video_id", videoID).Error("获取评论列表失败")
		sendError(c, err)
		return
	}
	message := "获取评论列表成功"
	if len(comments) == 0 {
		message = "暂无评论"
	}
	sendSuccess(c, http.StatusOK, message, dto.ToCommentResponses(comments))
}
