package usecase

import (
	"testing"

	"clipstream/internal/entity"
	"clipstream/pkg/apperr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newLikeUseCaseForTest(likeRepo *MockLikeRepository, videoRepo *MockVideoRepository) LikeUseCase {
	return NewLikeUseCase(likeRepo, videoRepo, new(MockCommentRepository), new(MockTweetRepository), newTestRedisClient(), nil, newTestLogger())
}

func TestToggleLike_ReturnsStateAfterCall(t *testing.T) {
	actorID := uuid.NewString()
	videoID := uuid.NewString()
	target := entity.LikeTarget{Kind: entity.TargetVideo, ID: videoID}

	likeRepo := new(MockLikeRepository)
	videoRepo := new(MockVideoRepository)
	videoRepo.On("Exists", videoID).Return(true, nil)
	likeRepo.On("Toggle", actorID, target).Return(true, &entity.Like{UserID: actorID, Target: target}, nil).Once()
	likeRepo.On("Toggle", actorID, target).Return(false, nil, nil).Once()

	uc := newLikeUseCaseForTest(likeRepo, videoRepo)

	active, record, err := uc.Toggle(actorID, entity.TargetVideo, videoID)
	assert.NoError(t, err)
	assert.True(t, active)
	assert.NotNil(t, record)

	active, record, err = uc.Toggle(actorID, entity.TargetVideo, videoID)
	assert.NoError(t, err)
	assert.False(t, active)
	assert.Nil(t, record)

	likeRepo.AssertExpectations(t)
}

func TestToggleLike_Unauthenticated(t *testing.T) {
	likeRepo := new(MockLikeRepository)
	uc := newLikeUseCaseForTest(likeRepo, new(MockVideoRepository))

	_, _, err := uc.Toggle("", entity.TargetVideo, uuid.NewString())

	assert.Equal(t, apperr.KindUnauthenticated, apperr.KindOf(err))
	likeRepo.AssertNotCalled(t, "Toggle", mock.Anything, mock.Anything)
}

func TestToggleLike_TargetMissing(t *testing.T) {
	actorID := uuid.NewString()
	tweetID := uuid.NewString()

	likeRepo := new(MockLikeRepository)
	tweetRepo := new(MockTweetRepository)
	tweetRepo.On("Exists", tweetID).Return(false, nil)

	uc := NewLikeUseCase(likeRepo, new(MockVideoRepository), new(MockCommentRepository), tweetRepo, newTestRedisClient(), nil, newTestLogger())

	_, _, err := uc.Toggle(actorID, entity.TargetTweet, tweetID)

	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	likeRepo.AssertNotCalled(t, "Toggle", mock.Anything, mock.Anything)
}

func TestToggleLike_UnknownKind(t *testing.T) {
	uc := newLikeUseCaseForTest(new(MockLikeRepository), new(MockVideoRepository))

	_, _, err := uc.Toggle(uuid.NewString(), entity.TargetKind("channel"), uuid.NewString())

	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestLikeCount_CacheMissFallsBackToStore(t *testing.T) {
	videoID := uuid.NewString()
	target := entity.LikeTarget{Kind: entity.TargetVideo, ID: videoID}

	likeRepo := new(MockLikeRepository)
	videoRepo := new(MockVideoRepository)
	videoRepo.On("Exists", videoID).Return(true, nil)
	likeRepo.On("Count", target).Return(int64(7), nil)

	uc := newLikeUseCaseForTest(likeRepo, videoRepo)

	count, err := uc.Count(entity.TargetVideo, videoID)

	assert.NoError(t, err)
	assert.Equal(t, int64(7), count)
	likeRepo.AssertExpectations(t)
}
