package handler

import (
	"VidTube/internal/dto"
	"VidTube/internal/service"
	"VidTube/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

type DashboardHandler interface {
	GetChannelStats(c *gin.Context)
	GetChannelVideos(c *gin.Context)
}

type dashboardHandler struct {
	StatsService service.StatsService
	VideoService service.VideoService
}

func NewDashboardHandler(statsService service.StatsService, videoService service.VideoService) DashboardHandler {
	return &dashboardHandler{
		StatsService: statsService,
		VideoService: videoService,
	}
}

// 频道数据面板，只统计调用方自己的频道
func (h *dashboardHandler) GetChannelStats(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	logCtx := logger.Log.WithField("channel_id", userID)

	stats, err := h.StatsService.ChannelStats(userID)
	if err != nil {
		logCtx.WithError(err).Error("频道统计失败")
		sendError(c, err)
		return
	}
	logCtx.Info("频道统计成功")
	sendSuccess(c, http.StatusOK, "获取频道统计成功", dto.ToChannelStatsResponse(stats))
}

// 频道主自己的视频列表，含未发布，最新在前
func (h *dashboardHandler) GetChannelVideos(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	videos, err := h.VideoService.GetChannelVideos(userID)
	if err != nil {
		logger.Log.WithError(err).WithField("channel_id", userID).Error("获取频道视频失败")
		sendError(c, err)
		return
	}
	message := "获取频道视频成功"
	if len(videos) == 0 {
		message = "暂无视频"
	}
	sendSuccess(c, http.StatusOK, message, dto.ToVideoResponses(videos))
}
