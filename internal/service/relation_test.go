package service

import (
	"VidTube/internal/apperr"
	"VidTube/internal/data"
	"VidTube/internal/model"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// 组装一套全mock的RelationService，所有测试共用
func newRelationFixture() (RelationService, *MockLikeRepository, *MockSubscriptionRepository, *MockVideoRepository, *MockCommentRepository, *MockTweetRepository, *MockUserRepository) {
	likeRepo := new(MockLikeRepository)
	subRepo := new(MockSubscriptionRepository)
	videoRepo := new(MockVideoRepository)
	commentRepo := new(MockCommentRepository)
	tweetRepo := new(MockTweetRepository)
	userRepo := new(MockUserRepository)
	uow := &fakeUnitOfWork{repos: &data.TransactionalRepositories{
		LikeRepo:         likeRepo,
		SubscriptionRepo: subRepo,
	}}
	svc := NewRelationService(likeRepo, subRepo, videoRepo, commentRepo, tweetRepo, userRepo, uow)
	return svc, likeRepo, subRepo, videoRepo, commentRepo, tweetRepo, userRepo
}

func TestToggleLike_CreatesWhenAbsent(t *testing.T) {
	svc, likeRepo, _, videoRepo, _, _, _ := newRelationFixture()

	videoRepo.On("FindByID", uint64(7)).Return(&model.Video{}, nil)
	likeRepo.On("FindByTarget", uint64(1), uint64(7), model.LikeKindVideo).
		Return(nil, gorm.ErrRecordNotFound)
	likeRepo.On("Create", mock.AnythingOfType("*model.Like")).Return(nil)

	record, created, err := svc.ToggleLike(1, 7, model.LikeKindVideo)

	assert.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, uint64(1), record.UserID)
	assert.Equal(t, uint64(7), record.TargetID)
	assert.Equal(t, model.LikeKindVideo, record.TargetKind)
	likeRepo.AssertExpectations(t)
}

func TestToggleLike_DeletesWhenPresent(t *testing.T) {
	svc, likeRepo, _, videoRepo, _, _, _ := newRelationFixture()

	existing := &model.Like{UserID: 1, TargetID: 7, TargetKind: model.LikeKindVideo}
	existing.ID = 99
	videoRepo.On("FindByID", uint64(7)).Return(&model.Video{}, nil)
	likeRepo.On("FindByTarget", uint64(1), uint64(7), model.LikeKindVideo).Return(existing, nil)
	likeRepo.On("DeleteByID", uint64(99)).Return(nil)

	record, created, err := svc.ToggleLike(1, 7, model.LikeKindVideo)

	assert.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, uint64(99), record.ID)
	likeRepo.AssertNotCalled(t, "Create", mock.Anything)
	likeRepo.AssertExpectations(t)
}

// 连续调两次回到原状：第一次创建，第二次删除
func TestToggleLike_TwiceRoundTrips(t *testing.T) {
	svc, likeRepo, _, videoRepo, _, _, _ := newRelationFixture()

	videoRepo.On("FindByID", uint64(7)).Return(&model.Video{}, nil)
	likeRepo.On("FindByTarget", uint64(1), uint64(7), model.LikeKindVideo).
		Return(nil, gorm.ErrRecordNotFound).Once()
	likeRepo.On("Create", mock.AnythingOfType("*model.Like")).
		Run(func(args mock.Arguments) {
			args.Get(0).(*model.Like).ID = 42
		}).Return(nil).Once()

	_, created, err := svc.ToggleLike(1, 7, model.LikeKindVideo)
	assert.NoError(t, err)
	assert.True(t, created)

	persisted := &model.Like{UserID: 1, TargetID: 7, TargetKind: model.LikeKindVideo}
	persisted.ID = 42
	likeRepo.On("FindByTarget", uint64(1), uint64(7), model.LikeKindVideo).
		Return(persisted, nil).Once()
	likeRepo.On("DeleteByID", uint64(42)).Return(nil).Once()

	_, created, err = svc.ToggleLike(1, 7, model.LikeKindVideo)
	assert.NoError(t, err)
	assert.False(t, created)
	likeRepo.AssertExpectations(t)
}

func TestToggleLike_TargetMissing(t *testing.T) {
	svc, likeRepo, _, _, commentRepo, _, _ := newRelationFixture()

	commentRepo.On("FindByID", uint64(5)).Return(nil, gorm.ErrRecordNotFound)

	record, created, err := svc.ToggleLike(1, 5, model.LikeKindComment)

	assert.Nil(t, record)
	assert.False(t, created)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	likeRepo.AssertNotCalled(t, "FindByTarget", mock.Anything, mock.Anything, mock.Anything)
}

func TestToggleLike_UnsupportedKind(t *testing.T) {
	svc, likeRepo, _, _, _, _, _ := newRelationFixture()

	record, created, err := svc.ToggleLike(1, 5, model.LikeKind("playlist"))

	assert.Nil(t, record)
	assert.False(t, created)
	assert.Equal(t, apperr.KindBadRequest, apperr.KindOf(err))
	likeRepo.AssertNotCalled(t, "FindByTarget", mock.Anything, mock.Anything, mock.Anything)
}

// 并发下输掉唯一索引竞争的一方，重查后按“本次创建”报告
func TestToggleLike_DuplicateKeyTreatedAsCreated(t *testing.T) {
	svc, likeRepo, _, videoRepo, _, _, _ := newRelationFixture()

	dupErr := &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}
	winner := &model.Like{UserID: 1, TargetID: 7, TargetKind: model.LikeKindVideo}
	winner.ID = 7001

	videoRepo.On("FindByID", uint64(7)).Return(&model.Video{}, nil)
	likeRepo.On("FindByTarget", uint64(1), uint64(7), model.LikeKindVideo).
		Return(nil, gorm.ErrRecordNotFound).Once()
	likeRepo.On("Create", mock.AnythingOfType("*model.Like")).Return(dupErr).Once()
	// 事务失败后走非事务仓库把赢家的记录查出来
	likeRepo.On("FindByTarget", uint64(1), uint64(7), model.LikeKindVideo).
		Return(winner, nil).Once()

	record, created, err := svc.ToggleLike(1, 7, model.LikeKindVideo)

	assert.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, uint64(7001), record.ID)
	likeRepo.AssertExpectations(t)
}

// 输掉竞争后重查时赢家已经取消了点赞：最终状态“未点赞”，
// 等价于点了又取消，按取消成功返回而不是报500
func TestToggleLike_DuplicateKeyThenGone(t *testing.T) {
	svc, likeRepo, _, videoRepo, _, _, _ := newRelationFixture()

	dupErr := &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}
	videoRepo.On("FindByID", uint64(7)).Return(&model.Video{}, nil)
	likeRepo.On("FindByTarget", uint64(1), uint64(7), model.LikeKindVideo).
		Return(nil, gorm.ErrRecordNotFound).Once()
	likeRepo.On("Create", mock.AnythingOfType("*model.Like")).Return(dupErr).Once()
	likeRepo.On("FindByTarget", uint64(1), uint64(7), model.LikeKindVideo).
		Return(nil, gorm.ErrRecordNotFound).Once()

	record, created, err := svc.ToggleLike(1, 7, model.LikeKindVideo)

	assert.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, uint64(1), record.UserID)
	assert.Equal(t, uint64(7), record.TargetID)
	likeRepo.AssertExpectations(t)
}

func TestToggleSubscription_CreatesWhenAbsent(t *testing.T) {
	svc, _, subRepo, _, _, _, userRepo := newRelationFixture()

	userRepo.On("FindByID", uint64(2)).Return(&model.User{}, nil)
	subRepo.On("Find", uint64(1), uint64(2)).Return(nil, gorm.ErrRecordNotFound)
	subRepo.On("Create", mock.AnythingOfType("*model.Subscription")).Return(nil)

	record, created, err := svc.ToggleSubscription(1, 2)

	assert.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, uint64(1), record.SubscriberID)
	assert.Equal(t, uint64(2), record.ChannelID)
	subRepo.AssertExpectations(t)
}

func TestToggleSubscription_DeletesWhenPresent(t *testing.T) {
	svc, _, subRepo, _, _, _, userRepo := newRelationFixture()

	existing := &model.Subscription{SubscriberID: 1, ChannelID: 2}
	existing.ID = 55
	userRepo.On("FindByID", uint64(2)).Return(&model.User{}, nil)
	subRepo.On("Find", uint64(1), uint64(2)).Return(existing, nil)
	subRepo.On("DeleteByID", uint64(55)).Return(nil)

	record, created, err := svc.ToggleSubscription(1, 2)

	assert.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, uint64(55), record.ID)
	subRepo.AssertNotCalled(t, "Create", mock.Anything)
}

// 自己订阅自己直接拒绝，连存储都不碰
func TestToggleSubscription_SelfRejected(t *testing.T) {
	svc, _, subRepo, _, _, _, userRepo := newRelationFixture()

	record, created, err := svc.ToggleSubscription(3, 3)

	assert.Nil(t, record)
	assert.False(t, created)
	assert.Equal(t, apperr.KindBadRequest, apperr.KindOf(err))
	userRepo.AssertNotCalled(t, "FindByID", mock.Anything)
	subRepo.AssertNotCalled(t, "Find", mock.Anything, mock.Anything)
}

func TestToggleSubscription_ChannelMissing(t *testing.T) {
	svc, _, subRepo, _, _, _, userRepo := newRelationFixture()

	userRepo.On("FindByID", uint64(404)).Return(nil, gorm.ErrRecordNotFound)

	_, _, err := svc.ToggleSubscription(1, 404)

	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	subRepo.AssertNotCalled(t, "Find", mock.Anything, mock.Anything)
}

func TestGetLikedVideos(t *testing.T) {
	svc, likeRepo, _, videoRepo, _, _, _ := newRelationFixture()

	likeRepo.On("FindTargetIDsByUser", uint64(1), model.LikeKindVideo).
		Return([]uint64{3, 9}, nil)
	videoRepo.On("FindByIDs", []uint64{3, 9}).
		Return([]model.Video{{Title: "a"}, {Title: "b"}}, nil)

	videos, err := svc.GetLikedVideos(1)

	assert.NoError(t, err)
	assert.Len(t, videos, 2)
}

// 一个赞都没点过：直接返回空，不做批量查询
func TestGetLikedVideos_Empty(t *testing.T) {
	svc, likeRepo, _, videoRepo, _, _, _ := newRelationFixture()

	likeRepo.On("FindTargetIDsByUser", uint64(1), model.LikeKindVideo).
		Return([]uint64{}, nil)

	videos, err := svc.GetLikedVideos(1)

	assert.NoError(t, err)
	assert.Empty(t, videos)
	videoRepo.AssertNotCalled(t, "FindByIDs", mock.Anything)
}
