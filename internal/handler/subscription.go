package handler

import (
	"VidTube/internal/dto"
	"VidTube/internal/service"
	"VidTube/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

type SubscriptionHandler interface {
	ToggleSubscription(c *gin.Context)
	GetSubscribedChannels(c *gin.Context)
	GetChannelSubscribers(c *gin.Context)
}

type subscriptionHandler struct {
	RelationService service.RelationService
}

func NewSubscriptionHandler(relationService service.RelationService) SubscriptionHandler {
	return &subscriptionHandler{RelationService: relationService}
}

// 订阅切换：1、校验频道ID 2、取调用方 3、toggle，创建201/取消200
func (h *subscriptionHandler) ToggleSubscription(c *gin.Context) {
	channelID, ok := pathID(c, "channel_id")
	if !ok {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	logCtx := logger.Log.WithField("subscriber_id", userID).WithField("channel_id", channelID)

	sub, created, err := h.RelationService.ToggleSubscription(userID, channelID)
	if err != nil {
		logCtx.WithError(err).Error("订阅切换失败")
		sendError(c, err)
		return
	}
	if created {
		logCtx.Info("订阅成功")
		sendSuccess(c, http.StatusCreated, "订阅成功", dto.ToSubscriptionResponse(sub))
		return
	}
	logCtx.Info("取消订阅成功")
	sendSuccess(c, http.StatusOK, "取消订阅成功", dto.ToSubscriptionResponse(sub))
}

// 当前用户订阅的频道列表
func (h *subscriptionHandler) GetSubscribedChannels(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	subs, err := h.RelationService.GetSubscribedChannels(userID)
	if err != nil {
		logger.Log.WithError(err).WithField("subscriber_id", userID).Error("获取订阅列表失败")
		sendError(c, err)
		return
	}
	message := "获取订阅列表成功"
	if len(subs) == 0 {
		message = "暂无订阅"
	}
	sendSuccess(c, http.StatusOK, message, dto.ToSubscriptionResponses(subs))
}

// 当前用户（作为频道主）的订阅者列表
func (h *subscriptionHandler) GetChannelSubscribers(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	subs, err := h.RelationService.GetChannelSubscribers(userID)
	if err != nil {
		logger.Log.WithError(err).WithField("channel_id", userID).Error("获取订阅者列表失败")
		sendError(c, err)
		return
	}
	message := "获取订阅者列表成功"
	if len(subs) == 0 {
		message = "暂无订阅者"
	}
	sendSuccess(c, http.StatusOK, message, dto.ToSubscriptionResponses(subs))
}
