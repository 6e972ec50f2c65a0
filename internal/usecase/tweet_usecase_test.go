package usecase

import (
	"strings"
	"testing"

	"clipstream/internal/entity"
	"clipstream/pkg/apperr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTweetUseCaseForTest(tweetRepo *MockTweetRepository) TweetUseCase {
	return NewTweetUseCase(tweetRepo, new(MockUserRepository), new(MockLikeRepository), newTestLogger())
}

func TestCreateTweet_MaxLengthAccepted(t *testing.T) {
	actorID := uuid.NewString()
	content := strings.Repeat("a", entity.MaxTweetLength)

	tweetRepo := new(MockTweetRepository)
	tweetRepo.On("Create", mock.AnythingOfType("*entity.Tweet")).Return(nil)

	uc := newTweetUseCaseForTest(tweetRepo)

	tweet, err := uc.Create(actorID, content)

	assert.NoError(t, err)
	assert.Equal(t, content, tweet.Content)
	assert.Equal(t, actorID, tweet.OwnerID)
	tweetRepo.AssertExpectations(t)
}

func TestCreateTweet_TooLongRejected(t *testing.T) {
	tweetRepo := new(MockTweetRepository)
	uc := newTweetUseCaseForTest(tweetRepo)

	_, err := uc.Create(uuid.NewString(), strings.Repeat("a", entity.MaxTweetLength+1))

	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	tweetRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCreateTweet_MultibyteRunesCountedOnce(t *testing.T) {
	tweetRepo := new(MockTweetRepository)
	tweetRepo.On("Create", mock.AnythingOfType("*entity.Tweet")).Return(nil)

	uc := newTweetUseCaseForTest(tweetRepo)

	// 280 runes, well over 280 bytes.
	_, err := uc.Create(uuid.NewString(), strings.Repeat("é", entity.MaxTweetLength))

	assert.NoError(t, err)
	tweetRepo.AssertExpectations(t)
}

func TestCreateTweet_EmptyRejected(t *testing.T) {
	tweetRepo := new(MockTweetRepository)
	uc := newTweetUseCaseForTest(tweetRepo)

	_, err := uc.Create(uuid.NewString(), "")

	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	tweetRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestUpdateTweet_ForbiddenForNonOwner(t *testing.T) {
	tweetID := uuid.NewString()
	ownerID := uuid.NewString()

	tweetRepo := new(MockTweetRepository)
	tweetRepo.On("GetByID", tweetID).Return(&entity.Tweet{ID: tweetID, OwnerID: ownerID, Content: "original"}, nil)

	uc := newTweetUseCaseForTest(tweetRepo)

	actor := entity.Actor{ID: uuid.NewString(), Role: entity.RoleUser}
	_, err := uc.Update(tweetID, actor, "rewritten")

	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
	tweetRepo.AssertNotCalled(t, "Update", mock.Anything)
}
