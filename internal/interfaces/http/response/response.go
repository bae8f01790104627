package response

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	domainerrors "shop-admin.backend/internal/domain/errors"
	"shop-admin.backend/pkg/logger"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error sends an error response
func Error(c *gin.Context, err error) {
	appErr := domainerrors.FromError(err)
	if appErr == nil {
		appErr = domainerrors.InternalServerError("unknown error")
	}
	if appErr.Status >= 500 {
		logger.Error(c.Request.Context(), "request failed", zap.Error(err))
	}

	body := gin.H{
		"code":    appErr.Code,
		"message": appErr.Message,
	}
	if len(appErr.Fields) > 0 {
		body["fields"] = appErr.Fields
	}
	c.JSON(appErr.Status, body)
}

// ErrorWithError sends an error response with a specific status and message
func ErrorWithError(c *gin.Context, status int, code string, message string) {
	c.JSON(status, gin.H{
		"code":    code,
		"message": message,
	})
}
