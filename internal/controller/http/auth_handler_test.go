package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"clipstream/internal/entity"
	"clipstream/internal/usecase"
	"clipstream/pkg/apperr"
	"clipstream/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockAuthUseCase is a mock implementation of AuthUseCase
type MockAuthUseCase struct {
	mock.Mock
}

func (m *MockAuthUseCase) Register(email, username, password, fullName string) (*entity.User, *usecase.TokenPair, error) {
	args := m.Called(email, username, password, fullName)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*entity.User), args.Get(1).(*usecase.TokenPair), args.Error(2)
}

func (m *MockAuthUseCase) Login(email, password string) (*entity.User, *usecase.TokenPair, error) {
	args := m.Called(email, password)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*entity.User), args.Get(1).(*usecase.TokenPair), args.Error(2)
}

func (m *MockAuthUseCase) Refresh(refreshToken string) (*usecase.TokenPair, error) {
	args := m.Called(refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.TokenPair), args.Error(1)
}

func (m *MockAuthUseCase) Logout(userID string) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockAuthUseCase) GetUser(userID string) (*entity.User, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockAuthUseCase) UpdateProfile(userID string, fullName *string) (*entity.User, error) {
	args := m.Called(userID, fullName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockAuthUseCase) UploadAvatar(userID string, fileReader io.Reader, contentType string) (*entity.User, error) {
	args := m.Called(userID, fileReader, contentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

var _ usecase.AuthUseCase = (*MockAuthUseCase)(nil)

func TestRegister_Success(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/auth/register", handler.Register)

	user := &entity.User{ID: "user-1", Email: "new@example.com", Username: "newuser", Role: entity.RoleUser}
	tokens := &usecase.TokenPair{AccessToken: "access", RefreshToken: "refresh"}
	mockUseCase.On("Register", "new@example.com", "newuser", "password123", "New User").Return(user, tokens, nil)

	payload := `{"email":"new@example.com","username":"newuser","password":"password123","full_name":"New User"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/auth/register", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var body map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &body)
	data := body["data"].(map[string]interface{})
	got := data["tokens"].(map[string]interface{})
	assert.Equal(t, "access", got["access_token"])

	mockUseCase.AssertExpectations(t)
}

func TestRegister_InvalidEmail(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/auth/register", handler.Register)

	payload := `{"email":"not-an-email","username":"newuser","password":"password123"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/auth/register", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertNotCalled(t, "Register")
}

func TestRegister_EmailTaken(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/auth/register", handler.Register)

	mockUseCase.On("Register", "taken@example.com", "newuser", "password123", "").
		Return(nil, nil, apperr.Conflict("email already registered"))

	payload := `{"email":"taken@example.com","username":"newuser","password":"password123"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/auth/register", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestLogin_BadCredentials(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/auth/login", handler.Login)

	mockUseCase.On("Login", "user@example.com", "wrong").
		Return(nil, nil, apperr.Unauthenticated("invalid email or password"))

	payload := `{"email":"user@example.com","password":"wrong"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/auth/login", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	var body map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &body)
	assert.Equal(t, "invalid email or password", body["message"])

	mockUseCase.AssertExpectations(t)
}

func TestRefresh_Success(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/auth/refresh", handler.Refresh)

	tokens := &usecase.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"}
	mockUseCase.On("Refresh", "old-refresh").Return(tokens, nil)

	payload := `{"refresh_token":"old-refresh"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/auth/refresh", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestMe_NeverLeaksCredentials(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/auth/me", authed("user-1", handler.Me))

	user := &entity.User{
		ID:           "user-1",
		Email:        "user@example.com",
		Username:     "someone",
		Password:     "hashed-secret",
		RefreshToken: "refresh-secret",
	}
	mockUseCase.On("GetUser", "user-1").Return(user, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/auth/me", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "hashed-secret")
	assert.NotContains(t, w.Body.String(), "refresh-secret")

	mockUseCase.AssertExpectations(t)
}

func TestLogout_Success(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/auth/logout", authed("user-1", handler.Logout))

	mockUseCase.On("Logout", "user-1").Return(nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/auth/logout", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertExpectations(t)
}
