package handler

import (
	"VidTube/internal/dto"
	"VidTube/internal/ident"
	"VidTube/internal/service"
	"VidTube/pkg/logger"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type VideoHandler interface {
	PublishVideo(c *gin.Context)
	GetVideoByID(c *gin.Context)
	ListVideos(c *gin.Context)
	TogglePublishStatus(c *gin.Context)
	UpdateVideo(c *gin.Context)
	DeleteVideo(c *gin.Context)
	WatchVideo(c *gin.Context)
}

type videoHandler struct {
	VideoService service.VideoService
	ViewService  service.ViewService
}

func NewVideoHandler(videoService service.VideoService, viewService service.ViewService) VideoHandler {
	return &videoHandler{
		VideoService: videoService,
		ViewService:  viewService,
	}
}

type PublishVideoRequest struct {
	Title        string  `json:"title" binding:"required"`
	Description  string  `json:"description" binding:"required"`
	VideoURL     string  `json:"video_url" binding:"required"`
	ThumbnailURL string  `json:"thumbnail_url" binding:"required"`
	Duration     float64 `json:"duration"`
}

// 发布视频：1、解析Body 2、从context取频道主 3、service层创建并通过dto返回
func (h *videoHandler) PublishVideo(c *gin.Context) {
	var req PublishVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Log.WithError(err).Error("发布视频参数解析失败")
		sendBadRequest(c, "无效的参数")
		return
	}
	ownerID, ok := currentUserID(c)
	if !ok {
		return
	}
	logCtx := logger.Log.WithField("owner_id", ownerID)
	logCtx.Info("开始处理发布视频请求")

	video, err := h.VideoService.PublishVideo(ownerID, service.PublishVideoInput{
		Title:        req.Title,
		Description:  req.Description,
		VideoURL:     req.VideoURL,
		ThumbnailURL: req.ThumbnailURL,
		Duration:     req.Duration,
	})
	if err != nil {
		logCtx.WithError(err).Error("发布视频业务处理失败")
		sendError(c, err)
		return
	}
	logCtx.WithField("video_id", video.ID).Info("视频发布成功")
	sendSuccess(c, http.StatusCreated, "视频发布成功", dto.ToVideoResponse(video))
}

func (h *videoHandler) GetVideoByID(c *gin.Context) {
	videoID, ok := pathID(c, "video_id")
	if !ok {
		return
	}
	video, err := h.VideoService.GetVideoByID(videoID)
	if err != nil {
		logger.Log.WithError(err).WithField("video_id", videoID).Warn("查找视频失败")
		sendError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, "获取视频成功", dto.ToVideoResponse(video))
}

// 视频列表：?query=&owner_id=&sort_by=&sort_type=&page=&limit=
// 分页参数解析失败一律退回默认值，不报错
func (h *videoHandler) ListVideos(c *gin.Context) {
	callerID, ok := currentUserID(c)
	if !ok {
		return
	}

	opts := service.ListVideosOptions{
		Query:    c.Query("query"),
		SortBy:   c.DefaultQuery("sort_by", "created_at"),
		SortType: c.DefaultQuery("sort_type", "desc"),
	}
	// owner_id是可选过滤；给了就必须是合法ID
	if ownerStr := c.Query("owner_id"); ownerStr != "" {
		ownerID, err := ident.Parse(ownerStr)
		if err != nil {
			sendBadRequest(c, "无效的频道ID")
			return
		}
		opts.OwnerID = ownerID
	}
	// 在查询参数里找page这个键，没找到就用默认值；解析失败得到0，service会纠正
	opts.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	opts.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "10"))

	videos, err := h.VideoService.ListVideos(callerID, opts)
	if err != nil {
		logger.Log.WithError(err).WithField("caller_id", callerID).Error("获取视频列表失败")
		sendError(c, err)
		return
	}
	message := "获取视频列表成功"
	if len(videos) == 0 {
		message = "没有匹配的视频"
	}
	sendSuccess(c, http.StatusOK, message, dto.ToVideoResponses(videos))
}

// 翻转发布状态，只有频道主本人可以
func (h *videoHandler) TogglePublishStatus(c *gin.Context) {
	videoID, ok := pathID(c, "video_id")
	if !ok {
		return
	}
	ownerID, ok := currentUserID(c)
	if !ok {
		return
	}
	logCtx := logger.Log.WithField("owner_id", ownerID).WithField("video_id", videoID)

	video, err := h.VideoService.TogglePublishStatus(ownerID, videoID)
	if err != nil {
		logCtx.WithError(err).Warn("切换发布状态失败")
		sendError(c, err)
		return
	}
	logCtx.WithField("is_published", video.IsPublished).Info("发布状态已切换")
	sendSuccess(c, http.StatusOK, "发布状态更新成功", dto.ToVideoResponse(video))
}

type UpdateVideoRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// 更新视频元数据（标题、简介），只改传了的字段，频道主本人专属
func (h *videoHandler) UpdateVideo(c *gin.Context) {
	videoID, ok := pathID(c, "video_id")
	if !ok {
		return
	}
	var req UpdateVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Log.WithError(err).Error("更新视频参数解析失败")
		sendBadRequest(c, "无效的参数")
		return
	}
	ownerID, ok := currentUserID(c)
	if !ok {
		return
	}
	logCtx := logger.Log.WithField("owner_id", ownerID).WithField("video_id", videoID)

	video, err := h.VideoService.UpdateVideo(ownerID, videoID, service.UpdateVideoInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		logCtx.WithError(err).Warn("更新视频失败")
		sendError(c, err)
		return
	}
	logCtx.Info("视频更新成功")
	sendSuccess(c, http.StatusOK, "视频更新成功", dto.ToVideoResponse(video))
}

// 删除视频及其关联数据（评论和点赞），频道主本人专属
func (h *videoHandler) DeleteVideo(c *gin.Context) {
	videoID, ok := pathID(c, "video_id")
	if !ok {
		return
	}
	ownerID, ok := currentUserID(c)
	if !ok {
		return
	}
	logCtx := logger.Log.WithField("owner_id", ownerID).WithField("video_id", videoID)

	video, err := h.VideoService.DeleteVideo(ownerID, videoID)
	if err != nil {
		logCtx.WithError(err).Warn("删除视频失败")
		sendError(c, err)
		return
	}
	logCtx.Info("视频删除成功")
	sendSuccess(c, http.StatusOK, "视频删除成功", dto.ToVideoResponse(video))
}

// 播放上报：校验ID后投递播放事件，播放量由消费者异步入库
func (h *videoHandler) WatchVideo(c *gin.Context) {
	videoID, ok := pathID(c, "video_id")
	if !ok {
		return
	}
	if err := h.ViewService.WatchVideo(videoID); err != nil {
		logger.Log.WithError(err).WithField("video_id", videoID).Error("播放上报失败")
		sendError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, "播放上报成功", nil)
}
