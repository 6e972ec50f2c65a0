package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"clipstream/internal/entity"
	"clipstream/internal/usecase"
	"clipstream/pkg/apperr"
	"clipstream/pkg/logger"
	"clipstream/pkg/pagination"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockTweetUseCase is a mock implementation of TweetUseCase
type MockTweetUseCase struct {
	mock.Mock
}

func (m *MockTweetUseCase) Create(actorID, content string) (*entity.Tweet, error) {
	args := m.Called(actorID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Tweet), args.Error(1)
}

func (m *MockTweetUseCase) List(query string, p pagination.Params) ([]*entity.Tweet, pagination.Meta, error) {
	args := m.Called(query, p)
	if args.Get(0) == nil {
		return nil, pagination.Meta{}, args.Error(2)
	}
	return args.Get(0).([]*entity.Tweet), args.Get(1).(pagination.Meta), args.Error(2)
}

func (m *MockTweetUseCase) ListByOwner(ownerID string, p pagination.Params) ([]*entity.Tweet, pagination.Meta, error) {
	args := m.Called(ownerID, p)
	if args.Get(0) == nil {
		return nil, pagination.Meta{}, args.Error(2)
	}
	return args.Get(0).([]*entity.Tweet), args.Get(1).(pagination.Meta), args.Error(2)
}

func (m *MockTweetUseCase) Update(tweetID string, actor entity.Actor, content string) (*entity.Tweet, error) {
	args := m.Called(tweetID, actor, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Tweet), args.Error(1)
}

func (m *MockTweetUseCase) Delete(tweetID string, actor entity.Actor) error {
	args := m.Called(tweetID, actor)
	return args.Error(0)
}

var _ usecase.TweetUseCase = (*MockTweetUseCase)(nil)

func TestCreateTweet_Success(t *testing.T) {
	mockUseCase := new(MockTweetUseCase)
	handler := NewTweetHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/tweets", authed("user-1", handler.Create))

	tweet := &entity.Tweet{ID: "tweet-1", OwnerID: "user-1", Content: "hello world"}
	mockUseCase.On("Create", "user-1", "hello world").Return(tweet, nil)

	payload := `{"content":"hello world"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/tweets", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestCreateTweet_TooLong(t *testing.T) {
	mockUseCase := new(MockTweetUseCase)
	handler := NewTweetHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/tweets", authed("user-1", handler.Create))

	long := strings.Repeat("a", entity.MaxTweetLength+1)
	mockUseCase.On("Create", "user-1", long).
		Return(nil, apperr.Validation("tweet exceeds 280 characters"))

	payload := `{"content":"` + long + `"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/tweets", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestUpdateTweet_NotFound(t *testing.T) {
	mockUseCase := new(MockTweetUseCase)
	handler := NewTweetHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.PATCH("/tweets/:id", authed("user-1", handler.Update))

	actor := entity.Actor{ID: "user-1", Role: entity.RoleUser}
	mockUseCase.On("Update", "missing", actor, "edited").
		Return(nil, apperr.NotFound("tweet not found"))

	payload := `{"content":"edited"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PATCH", "/tweets/missing", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockUseCase.AssertExpectations(t)
}
