package dto

import "VidTube/internal/service"

// ChannelStatsResponse 六个字段全部是整数，频道为空时就是一排0
type ChannelStatsResponse struct {
	TotalVideos       int64 `json:"total_videos"`
	TotalSubscribers  int64 `json:"total_subscribers"`
	TotalVideoLikes   int64 `json:"total_video_likes"`
	TotalTweetLikes   int64 `json:"total_tweet_likes"`
	TotalCommentLikes int64 `json:"total_comment_likes"`
	TotalViews        int64 `json:"total_views"`
}

func ToChannelStatsResponse(stats *service.ChannelStats) ChannelStatsResponse {
	return ChannelStatsResponse{
		TotalVideos:       stats.TotalVideos,
		TotalSubscribers:  stats.TotalSubscribers,
		TotalVideoLikes:   stats.TotalVideoLikes,
		TotalTweetLikes:   stats.TotalTweetLikes,
		TotalCommentLikes: stats.TotalCommentLikes,
		TotalViews:        stats.TotalViews,
	}
}
