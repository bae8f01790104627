package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	domainerrors "shop-admin.backend/internal/domain/errors"
	"shop-admin.backend/internal/interfaces/http/response"
	"shop-admin.backend/pkg/utils"
)

// pathID parses a uuid path parameter, writing a 400 when it is malformed
func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid "+name))
		return uuid.Nil, false
	}
	return id, true
}

func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return false
	}
	return true
}

func paginationFrom(c *gin.Context) utils.PaginationParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(utils.DefaultPageLimit)))
	return utils.GetPaginationParams(page, limit)
}

// listed writes the common list envelope
func listed(c *gin.Context, items interface{}, total int64, p utils.PaginationParams) {
	response.Success(c, http.StatusOK, gin.H{
		"items": items,
		"meta":  utils.CalculateMeta(total, p.Page, p.Limit),
	})
}

func queryUUID(c *gin.Context, name string) (*uuid.UUID, bool) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid "+name))
		return nil, false
	}
	return &id, true
}

// queryTime accepts RFC 3339 or a plain date
func queryTime(c *gin.Context, name string) (*time.Time, bool) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, true
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t, true
		}
	}
	response.Error(c, domainerrors.BadRequest(name+" must be a date (YYYY-MM-DD) or RFC 3339 timestamp"))
	return nil, false
}

func queryBool(c *gin.Context, name string) (*bool, bool) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, true
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		response.Error(c, domainerrors.BadRequest(name+" must be true or false"))
		return nil, false
	}
	return &v, true
}

func queryInt(c *gin.Context, name string, def int) (int, bool) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		response.Error(c, domainerrors.BadRequest(name+" must be an integer"))
		return 0, false
	}
	return v, true
}
