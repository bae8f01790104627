package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	domainerrors "shop-admin.backend/internal/domain/errors"
	"shop-admin.backend/internal/interfaces/http/response"
	"shop-admin.backend/pkg/logger"
	"shop-admin.backend/pkg/redis"
)

const (
	IdempotencyHeader = "Idempotency-Key"
	// LockDuration is the time we hold the lock while processing
	LockDuration = 30 * time.Second
	// RetentionDuration is how long we keep the response
	RetentionDuration = 24 * time.Hour

	idempotencyProcessing = "processing"
)

var (
	redisGet   = redis.Get
	redisSet   = redis.Set
	redisSetNX = redis.SetNX
	redisDel   = redis.Del
)

type storedResponse struct {
	Status int    `json:"status"`
	Body   string `json:"body"`
}

type bodyRecorder struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w bodyRecorder) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// IdempotencyMiddleware replays the stored response when a mutation is retried
// with the same Idempotency-Key. Requests without the header pass through.
func IdempotencyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(IdempotencyHeader)
		if key == "" {
			c.Next()
			return
		}

		userID, _ := GetUserID(c)
		storageKey := fmt.Sprintf("idempotency:%s:%s:%s:%s", userID, c.Request.Method, c.FullPath(), key)
		ctx := c.Request.Context()

		val, err := redisGet(ctx, storageKey)
		switch {
		case err == nil && val == idempotencyProcessing:
			response.Error(c, domainerrors.Conflict("request already in progress"))
			c.Abort()
			return
		case err == nil:
			var stored storedResponse
			if jsonErr := json.Unmarshal([]byte(val), &stored); jsonErr == nil {
				c.Header("X-Idempotency-Hit", "true")
				c.Data(stored.Status, "application/json; charset=utf-8", []byte(stored.Body))
				c.Abort()
				return
			}
		case !redis.IsNil(err):
			logger.Warn(ctx, "Idempotency lookup failed", zap.Error(err))
			c.Next()
			return
		}

		acquired, err := redisSetNX(ctx, storageKey, idempotencyProcessing, LockDuration)
		if err != nil || !acquired {
			response.Error(c, domainerrors.Conflict("request already in progress"))
			c.Abort()
			return
		}

		w := &bodyRecorder{body: &bytes.Buffer{}, ResponseWriter: c.Writer}
		c.Writer = w

		c.Next()

		status := c.Writer.Status()
		if status >= http.StatusOK && status < http.StatusMultipleChoices {
			raw, _ := json.Marshal(storedResponse{Status: status, Body: w.body.String()})
			if err := redisSet(ctx, storageKey, string(raw), RetentionDuration); err != nil {
				logger.Warn(ctx, "Idempotency store failed", zap.Error(err))
			}
			return
		}
		// failed requests may be retried with the same key
		_ = redisDel(ctx, storageKey)
	}
}
