package dto

import (
	"VidTube/internal/model"
	"time"
)

// UserInfo 是在DTO中使用的、简化的用户信息
type UserInfo struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Avatar   string `json:"avatar"`
}

type CommentResponse struct {
	ID        uint64    `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	Owner     UserInfo  `json:"owner"`
}

func ToCommentResponse(comment *model.Comment) CommentResponse {
	resp := CommentResponse{
		ID:        comment.ID,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
	}
	// 安全地填充作者信息，只有preload成功才有
	if comment.Owner.ID != 0 {
		resp.Owner = UserInfo{
			ID:       comment.Owner.ID,
			Username: comment.Owner.Username,
			FullName: comment.Owner.FullName,
			Avatar:   comment.Owner.Avatar,
		}
	}
	return resp
}

func ToCommentResponses(comments []model.Comment) []CommentResponse {
	// 创建一个有预估容量的切片，性能稍好
	response := make([]CommentResponse, 0, len(comments))
	for i := range comments {
		response = append(response, ToCommentResponse(&comments[i]))
	}
	return response
}
