package dto

import (
	"VidTube/internal/model"
	"time"
)

type LikeResponse struct {
	ID         uint64         `json:"id"`
	UserID     uint64         `json:"user_id"`
	TargetID   uint64         `json:"target_id"`
	TargetKind model.LikeKind `json:"target_kind"`
	CreatedAt  time.Time      `json:"created_at"`
}

func ToLikeResponse(like *model.Like) LikeResponse {
	return LikeResponse{
		ID:         like.ID,
		UserID:     like.UserID,
		TargetID:   like.TargetID,
		TargetKind: like.TargetKind,
		CreatedAt:  like.CreatedAt,
	}
}

type SubscriptionResponse struct {
	ID           uint64    `json:"id"`
	SubscriberID uint64    `json:"subscriber_id"`
	ChannelID    uint64    `json:"channel_id"`
	CreatedAt    time.Time `json:"created_at"`
	// 订阅列表预加载了对端的用户信息，toggle的返回里没有
	Subscriber *UserInfo `json:"subscriber,omitempty"`
	Channel    *UserInfo `json:"channel,omitempty"`
}

func ToSubscriptionResponse(sub *model.Subscription) SubscriptionResponse {
	resp := SubscriptionResponse{
		ID:           sub.ID,
		SubscriberID: sub.SubscriberID,
		ChannelID:    sub.ChannelID,
		CreatedAt:    sub.CreatedAt,
	}
	if sub.Subscriber.ID != 0 {
		resp.Subscriber = &UserInfo{
			ID:       sub.Subscriber.ID,
			Username: sub.Subscriber.Username,
			FullName: sub.Subscriber.FullName,
			Avatar:   sub.Subscriber.Avatar,
		}
	}
	if sub.Channel.ID != 0 {
		resp.Channel = &UserInfo{
			ID:       sub.Channel.ID,
			Username: sub.Channel.Username,
			FullName: sub.Channel.FullName,
			Avatar:   sub.Channel.Avatar,
		}
	}
	return resp
}

func ToSubscriptionResponses(subs []model.Subscription) []SubscriptionResponse {
	response := make([]SubscriptionResponse, 0, len(subs))
	for i := range subs {
		response = append(response, ToSubscriptionResponse(&subs[i]))
	}
	return response
}
