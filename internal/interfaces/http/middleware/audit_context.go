package middleware

import (
	"github.com/gin-gonic/gin"
	"shop-admin.backend/internal/domain/entities"
)

// AuditContextMiddleware records who is acting so audit entries can be
// attributed. It must run after AuthMiddleware.
func AuditContextMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := entities.Actor{
			IP:        c.ClientIP(),
			UserAgent: c.Request.UserAgent(),
		}
		if id, ok := GetUserID(c); ok {
			actor.UserID = id
		}
		if role, ok := GetUserRole(c); ok {
			actor.Role = role
		}
		c.Request = c.Request.WithContext(entities.WithActor(c.Request.Context(), actor))
		c.Next()
	}
}
