package service

import (
	"VidTube/internal/apperr"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCreateTweet(t *testing.T) {
	tweetRepo := new(MockTweetRepository)
	svc := NewTweetService(tweetRepo)

	tweetRepo.On("Create", mock.AnythingOfType("*model.Tweet")).Return(nil)

	tweet, err := svc.CreateTweet(1, "今天发了新视频")

	assert.NoError(t, err)
	assert.Equal(t, uint64(1), tweet.OwnerID)
	assert.Equal(t, "今天发了新视频", tweet.Content)
}

func TestCreateTweet_BlankContent(t *testing.T) {
	tweetRepo := new(MockTweetRepository)
	svc := NewTweetService(tweetRepo)

	tweet, err := svc.CreateTweet(1, "  \n ")

	assert.Nil(t, tweet)
	assert.Equal(t, apperr.KindBadRequest, apperr.KindOf(err))
	tweetRepo.AssertNotCalled(t, "Create", mock.Anything)
}
