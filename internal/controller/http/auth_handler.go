package http

import (
	"net/http"

	"clipstream/internal/usecase"
	"clipstream/pkg/apperr"
	"clipstream/pkg/logger"
	"clipstream/pkg/response"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUseCase usecase.AuthUseCase
	logger      *logger.Logger
}

func NewAuthHandler(authUseCase usecase.AuthUseCase, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		logger:      logger,
	}
}

type registerRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"username" binding:"required,min=3,max=30"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"full_name"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type updateProfileRequest struct {
	FullName *string `json:"full_name"`
}

// Register godoc
// @Summary      Register a new user
// @Description  Create an account and return access/refresh tokens
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body registerRequest true "Registration data"
// @Success      201  {object}  response.Body
// @Failure      400  {object}  response.Body
// @Failure      409  {object}  response.Body
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperr.Validation(err.Error()))
		return
	}

	user, tokens, err := h.authUseCase.Register(req.Email, req.Username, req.Password, req.FullName)
	if err != nil {
		h.logger.Error("Failed to register user: %v", err)
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "user registered", gin.H{
		"user":   user,
		"tokens": tokens,
	})
}

// Login godoc
// @Summary      Log in
// @Description  Authenticate with email and password, returns token pair
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body loginRequest true "Credentials"
// @Success      200  {object}  response.Body
// @Failure      400  {object}  response.Body
// @Failure      401  {object}  response.Body
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperr.Validation(err.Error()))
		return
	}

	user, tokens, err := h.authUseCase.Login(req.Email, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "logged in", gin.H{
		"user":   user,
		"tokens": tokens,
	})
}

// Refresh godoc
// @Summary      Refresh tokens
// @Description  Exchange a valid refresh token for a new token pair
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body refreshRequest true "Refresh token"
// @Success      200  {object}  response.Body
// @Failure      401  {object}  response.Body
// @Router       /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperr.Validation(err.Error()))
		return
	}

	tokens, err := h.authUseCase.Refresh(req.RefreshToken)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "tokens refreshed", gin.H{"tokens": tokens})
}

// Logout godoc
// @Summary      Log out
// @Description  Invalidate the stored refresh token for the authenticated user
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Body
// @Failure      401  {object}  response.Body
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	userID := c.GetString("user_id")

	if err := h.authUseCase.Logout(userID); err != nil {
		h.logger.Error("Failed to log out user %s: %v", userID, err)
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "logged out", nil)
}

// Me godoc
// @Summary      Get current user
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Body
// @Failure      401  {object}  response.Body
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.authUseCase.GetUser(c.GetString("user_id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "current user", gin.H{"user": user})
}

// UpdateMe godoc
// @Summary      Update current user profile
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body updateProfileRequest true "Profile fields"
// @Success      200  {object}  response.Body
// @Failure      400  {object}  response.Body
// @Router       /auth/me [patch]
func (h *AuthHandler) UpdateMe(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperr.Validation(err.Error()))
		return
	}

	user, err := h.authUseCase.UpdateProfile(c.GetString("user_id"), req.FullName)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "profile updated", gin.H{"user": user})
}

// UploadAvatar godoc
// @Summary      Upload avatar
// @Description  Upload a new avatar image for the authenticated user
// @Tags         auth
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        avatar formData file true "Avatar image"
// @Success      200  {object}  response.Body
// @Failure      400  {object}  response.Body
// @Router       /auth/me/avatar [post]
func (h *AuthHandler) UploadAvatar(c *gin.Context) {
	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		response.Error(c, apperr.Validation("avatar file is required"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, apperr.Validation("cannot read avatar file"))
		return
	}
	defer file.Close()

	user, err := h.authUseCase.UploadAvatar(
		c.GetString("user_id"),
		file,
		fileHeader.Header.Get("Content-Type"),
	)
	if err != nil {
		h.logger.Error("Failed to upload avatar: %v", err)
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "avatar uploaded", gin.H{"user": user})
}
