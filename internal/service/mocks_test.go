package service

import (
	"VidTube/internal/data"
	"VidTube/internal/model"
	"VidTube/internal/repository"

	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// 各仓库接口的testify mock，供本包的service测试使用

type MockLikeRepository struct {
	mock.Mock
}

func (m *MockLikeRepository) FindByTarget(userID, targetID uint64, kind model.LikeKind) (*model.Like, error) {
	args := m.Called(userID, targetID, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Like), args.Error(1)
}

func (m *MockLikeRepository) Create(like *model.Like) error {
	args := m.Called(like)
	return args.Error(0)
}

func (m *MockLikeRepository) DeleteByID(id uint64) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockLikeRepository) DeleteByTargets(kind model.LikeKind, targetIDs []uint64) error {
	args := m.Called(kind, targetIDs)
	return args.Error(0)
}

func (m *MockLikeRepository) CountByTargets(kind model.LikeKind, targetIDs []uint64) (int64, error) {
	args := m.Called(kind, targetIDs)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLikeRepository) FindTargetIDsByUser(userID uint64, kind model.LikeKind) ([]uint64, error) {
	args := m.Called(userID, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uint64), args.Error(1)
}

func (m *MockLikeRepository) WithTx(tx *gorm.DB) repository.LikeRepository {
	return m
}

type MockSubscriptionRepository struct {
	mock.Mock
}

func (m *MockSubscriptionRepository) Find(subscriberID, channelID uint64) (*model.Subscription, error) {
	args := m.Called(subscriberID, channelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Subscription), args.Error(1)
}

func (m *MockSubscriptionRepository) Create(sub *model.Subscription) error {
	args := m.Called(sub)
	return args.Error(0)
}

func (m *MockSubscriptionRepository) DeleteByID(id uint64) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockSubscriptionRepository) CountByChannel(channelID uint64) (int64, error) {
	args := m.Called(channelID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSubscriptionRepository) FindByChannel(channelID uint64) ([]model.Subscription, error) {
	args := m.Called(channelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Subscription), args.Error(1)
}

func (m *MockSubscriptionRepository) FindBySubscriber(subscriberID uint64) ([]model.Subscription, error) {
	args := m.Called(subscriberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Subscription), args.Error(1)
}

func (m *MockSubscriptionRepository) WithTx(tx *gorm.DB) repository.SubscriptionRepository {
	return m
}

type MockVideoRepository struct {
	mock.Mock
}

func (m *MockVideoRepository) Create(video *model.Video) error {
	args := m.Called(video)
	return args.Error(0)
}

func (m *MockVideoRepository) FindByID(videoID uint64) (*model.Video, error) {
	args := m.Called(videoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Video), args.Error(1)
}

func (m *MockVideoRepository) FindByIDs(videoIDs []uint64) ([]model.Video, error) {
	args := m.Called(videoIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Video), args.Error(1)
}

func (m *MockVideoRepository) FindOwned(videoID, ownerID uint64) (*model.Video, error) {
	args := m.Called(videoID, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Video), args.Error(1)
}

func (m *MockVideoRepository) List(opts repository.VideoListOptions) ([]model.Video, error) {
	args := m.Called(opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Video), args.Error(1)
}

func (m *MockVideoRepository) FindByOwner(ownerID uint64) ([]model.Video, error) {
	args := m.Called(ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Video), args.Error(1)
}

func (m *MockVideoRepository) CountByOwner(ownerID uint64) (int64, error) {
	args := m.Called(ownerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockVideoRepository) SumViewsByOwner(ownerID uint64) (int64, error) {
	args := m.Called(ownerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockVideoRepository) DistinctIDsByOwner(ownerID uint64) ([]uint64, error) {
	args := m.Called(ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uint64), args.Error(1)
}

func (m *MockVideoRepository) SetPublished(videoID uint64, published bool) error {
	args := m.Called(videoID, published)
	return args.Error(0)
}

func (m *MockVideoRepository) UpdateDetails(videoID uint64, fields map[string]interface{}) error {
	args := m.Called(videoID, fields)
	return args.Error(0)
}

func (m *MockVideoRepository) DeleteByID(videoID uint64) error {
	args := m.Called(videoID)
	return args.Error(0)
}

func (m *MockVideoRepository) IncrementViews(videoID uint64) error {
	args := m.Called(videoID)
	return args.Error(0)
}

func (m *MockVideoRepository) GetVideoCache(videoID uint64) (*model.Video, error) {
	args := m.Called(videoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Video), args.Error(1)
}

func (m *MockVideoRepository) SetVideoCache(video *model.Video) error {
	args := m.Called(video)
	return args.Error(0)
}

func (m *MockVideoRepository) DropVideoCache(videoID uint64) error {
	args := m.Called(videoID)
	return args.Error(0)
}

func (m *MockVideoRepository) WithTx(tx *gorm.DB) repository.VideoRepository {
	return m
}

type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(comment *model.Comment) error {
	args := m.Called(comment)
	return args.Error(0)
}

func (m *MockCommentRepository) FindByID(commentID uint64) (*model.Comment, error) {
	args := m.Called(commentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Comment), args.Error(1)
}

func (m *MockCommentRepository) FindByVideoID(videoID uint64, offset, limit int, desc bool) ([]model.Comment, error) {
	args := m.Called(videoID, offset, limit, desc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Comment), args.Error(1)
}

func (m *MockCommentRepository) IDsByVideo(videoID uint64) ([]uint64, error) {
	args := m.Called(videoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uint64), args.Error(1)
}

func (m *MockCommentRepository) DeleteByVideoID(videoID uint64) error {
	args := m.Called(videoID)
	return args.Error(0)
}

func (m *MockCommentRepository) DistinctIDsByOwner(ownerID uint64) ([]uint64, error) {
	args := m.Called(ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uint64), args.Error(1)
}

func (m *MockCommentRepository) WithTx(tx *gorm.DB) repository.CommentRepository {
	return m
}

type MockTweetRepository struct {
	mock.Mock
}

func (m *MockTweetRepository) Create(tweet *model.Tweet) error {
	args := m.Called(tweet)
	return args.Error(0)
}

func (m *MockTweetRepository) FindByID(tweetID uint64) (*model.Tweet, error) {
	args := m.Called(tweetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Tweet), args.Error(1)
}

func (m *MockTweetRepository) DistinctIDsByOwner(ownerID uint64) ([]uint64, error) {
	args := m.Called(ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uint64), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *model.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByUsername(username string) (*model.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(userID uint64) (*model.User, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

// fakeUnitOfWork 不开真实事务，直接用mock仓库执行回调
type fakeUnitOfWork struct {
	repos *data.TransactionalRepositories
}

func (u *fakeUnitOfWork) Execute(fn func(repos *data.TransactionalRepositories) error) error {
	return fn(u.repos)
}
