package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"shop-admin.backend/internal/domain/entities"
	domainerrors "shop-admin.backend/internal/domain/errors"
	"shop-admin.backend/internal/interfaces/http/middleware"
	"shop-admin.backend/internal/interfaces/http/response"
	"shop-admin.backend/pkg/jwt"
)

type authService interface {
	Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*jwt.TokenPair, error)
	Logout(ctx context.Context, sessionID string) error
	GetUserByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
}

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authUsecase authService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUsecase authService) *AuthHandler {
	return &AuthHandler{authUsecase: authUsecase}
}

// Login handles admin login
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var input entities.LoginInput
	if !bindJSON(c, &input) {
		return
	}

	authResponse, err := h.authUsecase.Login(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, authResponse)
}

// RefreshToken exchanges a refresh token for a new pair
// POST /api/v1/auth/refresh
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var input struct {
		RefreshToken string `json:"refreshToken" binding:"required"`
	}
	if !bindJSON(c, &input) {
		return
	}

	tokens, err := h.authUsecase.RefreshToken(c.Request.Context(), input.RefreshToken)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, tokens)
}

// Logout ends the caller's session. Token-only callers just drop their tokens.
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if sessionID := middleware.GetSessionID(c); sessionID != "" {
		if err := h.authUsecase.Logout(c.Request.Context(), sessionID); err != nil {
			response.Error(c, err)
			return
		}
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Logged out"})
}

// GetMe returns the authenticated admin
// GET /api/v1/auth/me
func (h *AuthHandler) GetMe(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	user, err := h.authUsecase.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, user)
}
