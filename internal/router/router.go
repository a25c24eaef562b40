package router

import (
	"VidTube/internal/handler"
	"VidTube/internal/middleware"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(
	userHandler handler.UserHandler,
	videoHandler handler.VideoHandler,
	commentHandler handler.CommentHandler,
	tweetHandler handler.TweetHandler,
	likeHandler handler.LikeHandler,
	subscriptionHandler handler.SubscriptionHandler,
	dashboardHandler handler.DashboardHandler,
) *gin.Engine {
	r := gin.Default()
	r.GET("/healthcheck", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"statusCode": http.StatusOK,
			"success":    true,
			"message":    "API is healthy",
			"data":       gin.H{"status": "OK"},
		})
	})

	apiV1 := r.Group("/api/v1")
	{
		userGroup := apiV1.Group("/users")
		{
			userGroup.POST("/register", userHandler.Register)
			userGroup.POST("/login", userHandler.Login)
		}

		// 除注册/登录/健康检查外全部需要认证，列表的可见性规则依赖调用方身份
		authorized := apiV1.Group("/")
		authorized.Use(middleware.AuthMiddleware())
		{
			authorized.GET("/profile", userHandler.GetProfile)

			authorized.POST("/videos", videoHandler.PublishVideo)
			authorized.GET("/videos", videoHandler.ListVideos)
			authorized.GET("/videos/:video_id", videoHandler.GetVideoByID)
			authorized.PATCH("/videos/:video_id", videoHandler.UpdateVideo)
			authorized.DELETE("/videos/:video_id", videoHandler.DeleteVideo)
			authorized.PATCH("/videos/:video_id/publish", videoHandler.TogglePublishStatus)
			authorized.POST("/videos/:video_id/views", videoHandler.WatchVideo)

			authorized.GET("/videos/:video_id/comments", commentHandler.GetVideoComments)
			authorized.POST("/videos/:video_id/comments", commentHandler.AddComment)

			authorized.POST("/tweets", tweetHandler.CreateTweet)

			authorized.POST("/likes/toggle/v/:video_id", likeHandler.ToggleVideoLike)
			authorized.POST("/likes/toggle/c/:comment_id", likeHandler.ToggleCommentLike)
			authorized.POST("/likes/toggle/t/:tweet_id", likeHandler.ToggleTweetLike)
			authorized.GET("/likes/videos", likeHandler.GetLikedVideos)

			authorized.POST("/subscriptions/c/:channel_id", subscriptionHandler.ToggleSubscription)
			authorized.GET("/subscriptions/channels", subscriptionHandler.GetSubscribedChannels)
			authorized.GET("/subscriptions/subscribers", subscriptionHandler.GetChannelSubscribers)

			authorized.GET("/dashboard/stats", dashboardHandler.GetChannelStats)
			authorized.GET("/dashboard/videos", dashboardHandler.GetChannelVideos)
		}
	}

	return r
}
