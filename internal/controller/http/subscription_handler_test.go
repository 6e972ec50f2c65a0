package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"clipstream/internal/entity"
	"clipstream/internal/usecase"
	"clipstream/pkg/apperr"
	"clipstream/pkg/logger"
	"clipstream/pkg/pagination"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockSubscriptionUseCase is a mock implementation of SubscriptionUseCase
type MockSubscriptionUseCase struct {
	mock.Mock
}

func (m *MockSubscriptionUseCase) Toggle(actorID, channelID string) (bool, *entity.Subscription, error) {
	args := m.Called(actorID, channelID)
	if args.Get(1) == nil {
		return args.Bool(0), nil, args.Error(2)
	}
	return args.Bool(0), args.Get(1).(*entity.Subscription), args.Error(2)
}

func (m *MockSubscriptionUseCase) IsSubscribed(actorID, channelID string) (bool, error) {
	args := m.Called(actorID, channelID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSubscriptionUseCase) CountSubscribers(channelID string) (int64, error) {
	args := m.Called(channelID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSubscriptionUseCase) ListChannels(actorID string, p pagination.Params) ([]*entity.Subscription, pagination.Meta, error) {
	args := m.Called(actorID, p)
	if args.Get(0) == nil {
		return nil, pagination.Meta{}, args.Error(2)
	}
	return args.Get(0).([]*entity.Subscription), args.Get(1).(pagination.Meta), args.Error(2)
}

func (m *MockSubscriptionUseCase) ListSubscribers(channelID string, p pagination.Params) ([]*entity.Subscription, pagination.Meta, error) {
	args := m.Called(channelID, p)
	if args.Get(0) == nil {
		return nil, pagination.Meta{}, args.Error(2)
	}
	return args.Get(0).([]*entity.Subscription), args.Get(1).(pagination.Meta), args.Error(2)
}

var _ usecase.SubscriptionUseCase = (*MockSubscriptionUseCase)(nil)

func TestToggleSubscription_Subscribed(t *testing.T) {
	mockUseCase := new(MockSubscriptionUseCase)
	handler := NewSubscriptionHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/subscriptions/:channel_id", authed("user-123", handler.Toggle))

	sub := &entity.Subscription{ID: "sub-1", SubscriberID: "user-123", ChannelID: "channel-456"}
	mockUseCase.On("Toggle", "user-123", "channel-456").Return(true, sub, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/subscriptions/channel-456", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var body map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &body)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, true, data["subscribed"])

	mockUseCase.AssertExpectations(t)
}

func TestToggleSubscription_Unsubscribed(t *testing.T) {
	mockUseCase := new(MockSubscriptionUseCase)
	handler := NewSubscriptionHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/subscriptions/:channel_id", authed("user-123", handler.Toggle))

	mockUseCase.On("Toggle", "user-123", "channel-456").Return(false, nil, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/subscriptions/channel-456", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &body)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, false, data["subscribed"])

	mockUseCase.AssertExpectations(t)
}

func TestToggleSubscription_SelfSubscription(t *testing.T) {
	mockUseCase := new(MockSubscriptionUseCase)
	handler := NewSubscriptionHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/subscriptions/:channel_id", authed("user-123", handler.Toggle))

	mockUseCase.On("Toggle", "user-123", "user-123").
		Return(false, nil, apperr.Validation("cannot subscribe to your own channel"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/subscriptions/user-123", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var body map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &body)
	assert.Equal(t, "cannot subscribe to your own channel", body["message"])

	mockUseCase.AssertExpectations(t)
}

func TestCountSubscribers(t *testing.T) {
	mockUseCase := new(MockSubscriptionUseCase)
	handler := NewSubscriptionHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/channels/:channel_id/subscribers/count", handler.CountSubscribers)

	mockUseCase.On("CountSubscribers", "channel-456").Return(int64(1000), nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/channels/channel-456/subscribers/count", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &body)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(1000), data["subscribers"])

	mockUseCase.AssertExpectations(t)
}

func TestListChannels(t *testing.T) {
	mockUseCase := new(MockSubscriptionUseCase)
	handler := NewSubscriptionHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/subscriptions", authed("user-123", handler.ListChannels))

	subs := []*entity.Subscription{
		{ID: "sub-1", SubscriberID: "user-123", ChannelID: "channel-1"},
		{ID: "sub-2", SubscriberID: "user-123", ChannelID: "channel-2"},
	}
	p := pagination.Params{Page: 1, Limit: defaultSubscriptionLimit, Sort: pagination.SortNewest}
	mockUseCase.On("ListChannels", "user-123", p).Return(subs, pagination.NewMeta(2, p), nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/subscriptions", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &body)
	data := body["data"].(map[string]interface{})
	items := data["items"].([]interface{})
	assert.Equal(t, 2, len(items))

	mockUseCase.AssertExpectations(t)
}
