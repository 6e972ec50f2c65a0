package usecase

import (
	"errors"
	"fmt"
	"io"

	"clipstream/internal/entity"
	"clipstream/internal/repo/persistent"
	"clipstream/pkg/apperr"
	"clipstream/pkg/jwt"
	"clipstream/pkg/logger"
	"clipstream/pkg/s3"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type AuthUseCase interface {
	Register(email, username, password, fullName string) (*entity.User, *TokenPair, error)
	Login(email, password string) (*entity.User, *TokenPair, error)
	Refresh(refreshToken string) (*TokenPair, error)
	Logout(userID string) error
	GetUser(userID string) (*entity.User, error)
	UpdateProfile(userID string, fullName *string) (*entity.User, error)
	UploadAvatar(userID string, fileReader io.Reader, contentType string) (*entity.User, error)
}

type authUseCase struct {
	userRepo   persistent.UserRepository
	jwtService *jwt.Service
	s3Client   *s3.Client
	logger     *logger.Logger
}

func NewAuthUseCase(
	userRepo persistent.UserRepository,
	jwtService *jwt.Service,
	s3Client *s3.Client,
	logger *logger.Logger,
) AuthUseCase {
	return &authUseCase{
		userRepo:   userRepo,
		jwtService: jwtService,
		s3Client:   s3Client,
		logger:     logger,
	}
}

func (uc *authUseCase) Register(email, username, password, fullName string) (*entity.User, *TokenPair, error) {
	if _, err := uc.userRepo.GetByEmail(email); err == nil {
		return nil, nil, apperr.Conflict("user with this email already exists")
	}
	if _, err := uc.userRepo.GetByUsername(username); err == nil {
		return nil, nil, apperr.Conflict("username already taken")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("Failed to hash password: %v", err)
		return nil, nil, apperr.Internal(err)
	}

	user := &entity.User{
		Email:    email,
		Username: username,
		Password: string(hashedPassword),
		FullName: fullName,
		Role:     entity.RoleUser,
	}

	if err := uc.userRepo.Create(user); err != nil {
		// The pre-checks race with concurrent registration; the unique
		// index is the authority.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, nil, apperr.Conflict("email or username already taken")
		}
		uc.logger.Error("Failed to create user: %v", err)
		return nil, nil, apperr.Internal(err)
	}

	tokens, err := uc.issueTokens(user)
	if err != nil {
		return nil, nil, err
	}

	user.Password = ""
	return user, tokens, nil
}

func (uc *authUseCase) Login(email, password string) (*entity.User, *TokenPair, error) {
	user, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		return nil, nil, apperr.Unauthenticated("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, nil, apperr.Unauthenticated("invalid credentials")
	}

	tokens, err := uc.issueTokens(user)
	if err != nil {
		return nil, nil, err
	}

	user.Password = ""
	return user, tokens, nil
}

// Refresh rotates the session: the presented refresh token must match the
// one persisted on the user, so logout invalidates it server-side.
func (uc *authUseCase) Refresh(refreshToken string) (*TokenPair, error) {
	userID, err := uc.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, apperr.Unauthenticated("invalid refresh token")
	}

	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, apperr.Unauthenticated("invalid refresh token")
	}

	if user.RefreshToken == "" || user.RefreshToken != refreshToken {
		return nil, apperr.Unauthenticated("refresh token has been revoked")
	}

	return uc.issueTokens(user)
}

func (uc *authUseCase) Logout(userID string) error {
	if err := uc.userRepo.UpdateRefreshToken(userID, ""); err != nil {
		uc.logger.Error("Failed to clear refresh token: %v", err)
		return apperr.Internal(err)
	}
	return nil
}

func (uc *authUseCase) GetUser(userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, apperr.Internal(err)
	}
	user.Password = ""
	return user, nil
}

func (uc *authUseCase) UpdateProfile(userID string, fullName *string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, apperr.Internal(err)
	}

	if fullName != nil {
		user.FullName = *fullName
	}

	if err := uc.userRepo.Update(user); err != nil {
		uc.logger.Error("Failed to update user: %v", err)
		return nil, apperr.Internal(err)
	}

	user.Password = ""
	return user, nil
}

func (uc *authUseCase) UploadAvatar(userID string, fileReader io.Reader, contentType string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, apperr.Internal(err)
	}

	fileKey := fmt.Sprintf("avatars/%s/%s", userID, uuid.New().String())
	avatarURL, err := uc.s3Client.UploadFile(fileKey, fileReader, contentType)
	if err != nil {
		uc.logger.Error("Failed to upload avatar: %v", err)
		return nil, apperr.Internal(err)
	}

	user.AvatarURL = avatarURL
	if err := uc.userRepo.Update(user); err != nil {
		uc.logger.Error("Failed to update user: %v", err)
		return nil, apperr.Internal(err)
	}

	user.Password = ""
	return user, nil
}

func (uc *authUseCase) issueTokens(user *entity.User) (*TokenPair, error) {
	accessToken, err := uc.jwtService.GenerateAccessToken(user.ID, string(user.Role))
	if err != nil {
		uc.logger.Error("Failed to generate access token: %v", err)
		return nil, apperr.Internal(err)
	}

	refreshToken, err := uc.jwtService.GenerateRefreshToken(user.ID)
	if err != nil {
		uc.logger.Error("Failed to generate refresh token: %v", err)
		return nil, apperr.Internal(err)
	}

	if err := uc.userRepo.UpdateRefreshToken(user.ID, refreshToken); err != nil {
		uc.logger.Error("Failed to persist refresh token: %v", err)
		return nil, apperr.Internal(err)
	}

	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}
