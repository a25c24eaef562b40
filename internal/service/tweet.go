package service

import (
	"VidTube/internal/apperr"
	"VidTube/internal/model"
	"VidTube/internal/repository"
	"strings"
)

type TweetService interface {
	CreateTweet(userID uint64, content string) (*model.Tweet, error)
}

type tweetService struct {
	tweetRepo repository.TweetRepository
}

func NewTweetService(tweetRepo repository.TweetRepository) TweetService {
	return &tweetService{tweetRepo: tweetRepo}
}

func (s *tweetService) CreateTweet(userID uint64, content string) (*model.Tweet, error) {
	if strings.TrimSpace(content) == "" {
		return nil, apperr.New(apperr.KindBadRequest, "动态内容不能为空")
	}
	newTweet := &model.Tweet{
		OwnerID: userID,
		Content: content,
	}
	if err := s.tweetRepo.Create(newTweet); err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "发布动态失败", err)
	}
	return newTweet, nil
}
