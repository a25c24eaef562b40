package dto

import (
	"VidTube/internal/model"
	"time"
)

type VideoResponse struct {
	ID           uint64    `json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	VideoURL     string    `json:"video_url"`
	ThumbnailURL string    `json:"thumbnail_url"`
	Duration     float64   `json:"duration"`
	Views        uint64    `json:"views"`
	IsPublished  bool      `json:"is_published"`
	Owner        struct {  // 在这里定义Owner的精确形状
		ID   uint64 `json:"id"`
		Name string `json:"name"`
	} `json:"owner"`
}

// ToVideoResponse 把DB模型转换为API响应模型，正确利用preload返回的数据
func ToVideoResponse(video *model.Video) VideoResponse {
	resp := VideoResponse{
		ID:           video.ID,
		CreatedAt:    video.CreatedAt,
		Title:        video.Title,
		Description:  video.Description,
		VideoURL:     video.VideoURL,
		ThumbnailURL: video.ThumbnailURL,
		Duration:     video.Duration,
		Views:        video.Views,
		IsPublished:  video.IsPublished,
	}
	// 检查Owner是否被成功preload
	if video.Owner.ID != 0 {
		resp.Owner.ID = video.Owner.ID
		resp.Owner.Name = video.Owner.FullName
	} else {
		// 没有preload就退回video结构体自带的外键
		resp.Owner.ID = video.OwnerID
	}
	return resp
}

func ToVideoResponses(videos []model.Video) []VideoResponse {
	response := make([]VideoResponse, 0, len(videos))
	for i := range videos {
		response = append(response, ToVideoResponse(&videos[i]))
	}
	return response
}
