package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	domainerrors "shop-admin.backend/internal/domain/errors"
	"shop-admin.backend/internal/interfaces/http/response"
	"shop-admin.backend/pkg/jwt"
	"shop-admin.backend/pkg/logger"
	"shop-admin.backend/pkg/redis"
)

const (
	// AuthorizationHeader is the header key for authorization
	AuthorizationHeader = "Authorization"
	// SessionHeader carries a server-side session id instead of a bearer token
	SessionHeader = "X-Session-Id"
	// BearerPrefix is the prefix for bearer tokens
	BearerPrefix = "Bearer "
	// UserIDKey is the context key for user ID
	UserIDKey = "userId"
	// UserEmailKey is the context key for user email
	UserEmailKey = "userEmail"
	// UserRoleKey is the context key for user role
	UserRoleKey = "userRole"
	// SessionIDKey is the context key for the session id when one was used
	SessionIDKey = "sessionId"
)

// SessionReader resolves a session id to its stored tokens
type SessionReader interface {
	GetSession(ctx context.Context, sessionID string) (*redis.SessionData, error)
}

// PermissionChecker reports whether a role holds any of the given permissions
type PermissionChecker interface {
	HasAnyPermission(ctx context.Context, role string, perms ...string) (bool, error)
}

// AuthMiddleware accepts either "Authorization: Bearer <jwt>" or an
// X-Session-Id header. A session takes precedence when both are sent.
func AuthMiddleware(jwtService *jwt.JWTService, sessions SessionReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		tokenString := ""

		sessionID := strings.TrimSpace(c.GetHeader(SessionHeader))
		if sessionID != "" {
			if sessions == nil {
				response.Error(c, domainerrors.Unauthorized("sessions are not enabled"))
				c.Abort()
				return
			}
			session, err := sessions.GetSession(ctx, sessionID)
			if err != nil || session == nil {
				logger.Warn(ctx, "Session lookup failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
				response.Error(c, domainerrors.Unauthorized("session is invalid or has expired"))
				c.Abort()
				return
			}
			tokenString = session.AccessToken
			c.Set(SessionIDKey, sessionID)
		} else {
			authHeader := c.GetHeader(AuthorizationHeader)
			if authHeader == "" {
				response.Error(c, domainerrors.Unauthorized("authorization header is required"))
				c.Abort()
				return
			}
			if !strings.HasPrefix(authHeader, BearerPrefix) {
				response.Error(c, domainerrors.Unauthorized("invalid authorization format, use: Bearer <token>"))
				c.Abort()
				return
			}
			tokenString = strings.TrimPrefix(authHeader, BearerPrefix)
		}

		claims, err := jwtService.ValidateToken(tokenString, jwt.TokenTypeAccess)
		if err != nil {
			msg := "invalid token"
			if errors.Is(err, jwt.ErrExpiredToken) {
				msg = "token has expired"
			}
			logger.Debug(ctx, "Token rejected", zap.String("path", c.Request.URL.Path), zap.Error(err))
			response.Error(c, domainerrors.Unauthorized(msg))
			c.Abort()
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(UserEmailKey, claims.Email)
		c.Set(UserRoleKey, claims.Role)
		c.Request = c.Request.WithContext(context.WithValue(ctx, logger.ActorIDKey, claims.UserID.String()))

		c.Next()
	}
}

// RequirePermission aborts with 403 unless the caller's role holds at least one of perms
func RequirePermission(checker PermissionChecker, perms ...string) gin.HandlerFunc {
	return RequirePermissionFor(checker, func(*gin.Context) []string { return perms })
}

// RequirePermissionFor is RequirePermission with the names derived from the
// request, e.g. settings.<group>.update from the :group parameter.
func RequirePermissionFor(checker PermissionChecker, permsOf func(c *gin.Context) []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		perms := permsOf(c)
		role, ok := GetUserRole(c)
		if !ok {
			response.Error(c, domainerrors.Unauthorized("authentication required"))
			c.Abort()
			return
		}
		allowed, err := checker.HasAnyPermission(c.Request.Context(), role, perms...)
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}
		if !allowed {
			response.Error(c, domainerrors.Forbidden("insufficient permissions"))
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetUserID gets the user ID from context
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(UserIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := userID.(uuid.UUID)
	return id, ok
}

// GetUserRole gets the user role from context
func GetUserRole(c *gin.Context) (string, bool) {
	role, exists := c.Get(UserRoleKey)
	if !exists {
		return "", false
	}
	s, ok := role.(string)
	return s, ok
}

// GetSessionID returns the session id the request authenticated with, if any
func GetSessionID(c *gin.Context) string {
	return c.GetString(SessionIDKey)
}
