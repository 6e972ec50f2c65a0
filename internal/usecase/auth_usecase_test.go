package usecase

import (
	"net/http"
	"testing"
	"time"

	"clipstream/internal/entity"
	"clipstream/pkg/apperr"
	"clipstream/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newAuthUseCaseForTest(userRepo *MockUserRepository) AuthUseCase {
	jwtService := jwt.NewService("test-secret-key", 15*time.Minute, 7*24*time.Hour)
	return NewAuthUseCase(userRepo, jwtService, nil, newTestLogger())
}

func TestRegister_Success(t *testing.T) {
	userRepo := new(MockUserRepository)
	userRepo.On("GetByEmail", "new@example.com").Return(nil, gorm.ErrRecordNotFound)
	userRepo.On("GetByUsername", "newuser").Return(nil, gorm.ErrRecordNotFound)
	userRepo.On("Create", mock.AnythingOfType("*entity.User")).Return(nil)
	userRepo.On("UpdateRefreshToken", mock.Anything, mock.Anything).Return(nil)

	uc := newAuthUseCaseForTest(userRepo)

	user, tokens, err := uc.Register("new@example.com", "newuser", "password123", "New User")

	assert.NoError(t, err)
	assert.Equal(t, "newuser", user.Username)
	assert.Empty(t, user.Password)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
}

func TestRegister_DuplicateKeyFromStoreIsConflict(t *testing.T) {
	// Pre-checks race with concurrent registration; when the unique
	// index fires anyway the caller still gets a 409, not a 500.
	userRepo := new(MockUserRepository)
	userRepo.On("GetByEmail", "raced@example.com").Return(nil, gorm.ErrRecordNotFound)
	userRepo.On("GetByUsername", "raced").Return(nil, gorm.ErrRecordNotFound)
	userRepo.On("Create", mock.AnythingOfType("*entity.User")).Return(gorm.ErrDuplicatedKey)

	uc := newAuthUseCaseForTest(userRepo)

	_, _, err := uc.Register("raced@example.com", "raced", "password123", "Raced User")

	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
	assert.Equal(t, http.StatusConflict, apperr.StatusCode(err))
}

func TestRegister_EmailTaken(t *testing.T) {
	userRepo := new(MockUserRepository)
	userRepo.On("GetByEmail", "taken@example.com").Return(&entity.User{Email: "taken@example.com"}, nil)

	uc := newAuthUseCaseForTest(userRepo)

	_, _, err := uc.Register("taken@example.com", "someone", "password123", "Someone")

	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
	userRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestLogin_BadPassword(t *testing.T) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("right-password"), bcrypt.MinCost)

	userRepo := new(MockUserRepository)
	userRepo.On("GetByEmail", "user@example.com").Return(&entity.User{Email: "user@example.com", Password: string(hashed)}, nil)

	uc := newAuthUseCaseForTest(userRepo)

	_, _, err := uc.Login("user@example.com", "wrong-password")

	assert.Equal(t, apperr.KindUnauthenticated, apperr.KindOf(err))
}
