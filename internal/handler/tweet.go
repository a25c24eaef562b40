package handler

import (
	"VidTube/internal/service"
	"VidTube/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

type TweetHandler interface {
	CreateTweet(c *gin.Context)
}

type tweetHandler struct {
	TweetService service.TweetService
}

func NewTweetHandler(tweetService service.TweetService) TweetHandler {
	return &tweetHandler{TweetService: tweetService}
}

type CreateTweetRequest struct {
	Content string `json:"content" binding:"required"`
}

func (h *tweetHandler) CreateTweet(c *gin.Context) {
	var req CreateTweetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Log.WithError(err).Error("动态参数解析失败")
		sendBadRequest(c, "无效的参数")
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	logCtx := logger.Log.WithField("user_id", userID)

	tweet, err := h.TweetService.CreateTweet(userID, req.Content)
	if err != nil {
		logCtx.WithError(err).Error("发布动态失败")
		sendError(c, err)
		return
	}
	logCtx.WithField("tweet_id", tweet.ID).Info("动态发布成功")
	sendSuccess(c, http.StatusCreated, "动态发布成功", gin.H{
		"id":         tweet.ID,
		"content":    tweet.Content,
		"owner_id":   tweet.OwnerID,
		"created_at": tweet.CreatedAt,
	})
}
