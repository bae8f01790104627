package usecases

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"shop-admin.backend/internal/domain/entities"
	domainerrors "shop-admin.backend/internal/domain/errors"
	"shop-admin.backend/internal/domain/repositories"
	"shop-admin.backend/pkg/crypto"
	"shop-admin.backend/pkg/jwt"
	"shop-admin.backend/pkg/logger"
	"shop-admin.backend/pkg/redis"
)

// SessionStore keeps server-side admin sessions
type SessionStore interface {
	CreateSession(ctx context.Context, sessionID string, data *redis.SessionData, expiration time.Duration) error
	GetSession(ctx context.Context, sessionID string) (*redis.SessionData, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

var newSessionID = crypto.GenerateSessionID

// AuthUsecase handles admin authentication
type AuthUsecase struct {
	userRepo     repositories.UserRepository
	jwtService   *jwt.JWTService
	sessionStore SessionStore
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(userRepo repositories.UserRepository, jwtService *jwt.JWTService, sessionStore SessionStore) *AuthUsecase {
	return &AuthUsecase{
		userRepo:     userRepo,
		jwtService:   jwtService,
		sessionStore: sessionStore,
	}
}

// Login authenticates an admin and returns tokens, or a session id when requested
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
	user, err := u.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(input.Email)))
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}
		return nil, err
	}
	if !crypto.CheckPassword(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, domainerrors.Unauthorized("account is disabled")
	}

	pair, err := u.jwtService.GenerateTokenPair(user.ID, user.Email, user.RoleName)
	if err != nil {
		return nil, err
	}
	if err := u.userRepo.UpdateLastLogin(ctx, user.ID); err != nil {
		logger.Warn(ctx, "Failed to record last login", zap.String("user_id", user.ID.String()), zap.Error(err))
	}

	resp := &entities.AuthResponse{User: user, ExpiresAt: pair.ExpiresAt.Unix()}
	if !input.UseSession {
		resp.AccessToken = pair.AccessToken
		resp.RefreshToken = pair.RefreshToken
		return resp, nil
	}

	if u.sessionStore == nil {
		return nil, domainerrors.InternalServerError("sessions are not configured")
	}
	sessionID, err := newSessionID()
	if err != nil {
		return nil, err
	}
	data := &redis.SessionData{
		UserID:       user.ID,
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		CreatedAt:    time.Now(),
	}
	if err := u.sessionStore.CreateSession(ctx, sessionID, data, u.jwtService.RefreshExpiry()); err != nil {
		return nil, err
	}
	resp.SessionID = sessionID
	logger.Info(ctx, "Admin logged in", zap.String("user_id", user.ID.String()), zap.Bool("session", true))
	return resp, nil
}

// RefreshToken issues a new pair from a refresh token for a still active admin
func (u *AuthUsecase) RefreshToken(ctx context.Context, refreshToken string) (*jwt.TokenPair, error) {
	claims, err := u.jwtService.ValidateToken(refreshToken, jwt.TokenTypeRefresh)
	if err != nil {
		return nil, domainerrors.Unauthorized(err.Error())
	}
	user, err := u.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		if isNotFound(err) {
			return nil, domainerrors.ErrUnauthorized
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, domainerrors.ErrUnauthorized
	}
	return u.jwtService.GenerateTokenPair(user.ID, user.Email, user.RoleName)
}

// Logout removes a server-side session. Token logins have nothing to revoke.
func (u *AuthUsecase) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" || u.sessionStore == nil {
		return nil
	}
	return u.sessionStore.DeleteSession(ctx, sessionID)
}

// GetUserByID gets the current admin
func (u *AuthUsecase) GetUserByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	return u.userRepo.GetByID(ctx, id)
}
