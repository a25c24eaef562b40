package service

import (
	"VidTube/internal/apperr"
	"VidTube/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func newCommentFixture() (CommentService, *MockCommentRepository, *MockVideoRepository) {
	commentRepo := new(MockCommentRepository)
	videoRepo := new(MockVideoRepository)
	svc := NewCommentService(commentRepo, videoRepo)
	return svc, commentRepo, videoRepo
}

func TestAddComment(t *testing.T) {
	svc, commentRepo, videoRepo := newCommentFixture()

	videoRepo.On("FindByID", uint64(7)).Return(&model.Video{}, nil)
	commentRepo.On("Create", mock.AnythingOfType("*model.Comment")).
		Run(func(args mock.Arguments) {
			args.Get(0).(*model.Comment).ID = 33
		}).Return(nil)
	withOwner := &model.Comment{VideoID: 7, OwnerID: 1, Content: "不错", Owner: model.User{Username: "alice"}}
	withOwner.ID = 33
	commentRepo.On("FindByID", uint64(33)).Return(withOwner, nil)

	comment, err := svc.AddComment(1, 7, "不错")

	assert.NoError(t, err)
	assert.Equal(t, uint64(33), comment.ID)
	assert.Equal(t, "alice", comment.Owner.Username)
	commentRepo.AssertExpectations(t)
}

func TestAddComment_BlankContent(t *testing.T) {
	svc, commentRepo, videoRepo := newCommentFixture()

	testCases := []string{"", "   ", "\n\t "}
	for _, content := range testCases {
		_, err := svc.AddComment(1, 7, content)
		assert.Equal(t, apperr.KindBadRequest, apperr.KindOf(err))
	}
	videoRepo.AssertNotCalled(t, "FindByID", mock.Anything)
	commentRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestAddComment_VideoMissing(t *testing.T) {
	svc, commentRepo, videoRepo := newCommentFixture()

	videoRepo.On("FindByID", uint64(404)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.AddComment(1, 404, "有人吗")

	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	commentRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestGetVideoComments(t *testing.T) {
	svc, commentRepo, videoRepo := newCommentFixture()

	videoRepo.On("FindByID", uint64(7)).Return(&model.Video{}, nil)
	// 第二页、每页5条、默认最新在前 => offset 5、desc
	commentRepo.On("FindByVideoID", uint64(7), 5, 5, true).
		Return([]model.Comment{{Content: "a"}, {Content: "b"}}, nil)

	comments, err := svc.GetVideoComments(7, 2, 5, "")

	assert.NoError(t, err)
	assert.Len(t, comments, 2)
	commentRepo.AssertExpectations(t)
}

func TestGetVideoComments_CoercionAndAscending(t *testing.T) {
	svc, commentRepo, videoRepo := newCommentFixture()

	videoRepo.On("FindByID", uint64(7)).Return(&model.Video{}, nil)
	// 非法分页参数回退到第1页、每页10条；asc传到仓库
	commentRepo.On("FindByVideoID", uint64(7), 0, 10, false).
		Return([]model.Comment{}, nil)

	comments, err := svc.GetVideoComments(7, 0, -5, "asc")

	assert.NoError(t, err)
	assert.Empty(t, comments)
	commentRepo.AssertExpectations(t)
}

func TestGetVideoComments_VideoMissing(t *testing.T) {
	svc, commentRepo, videoRepo := newCommentFixture()

	videoRepo.On("FindByID", uint64(404)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.GetVideoComments(404, 1, 10, "")

	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	commentRepo.AssertNotCalled(t, "FindByVideoID", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
