package repositories

import (
	"context"

	"github.com/google/uuid"
	"shop-admin.backend/internal/domain/entities"
	"shop-admin.backend/pkg/utils"
)

// AuditLogRepository is append-only: there is no update or delete
type AuditLogRepository interface {
	Create(ctx context.Context, entry *entities.AuditLog) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.AuditLog, error)
	List(ctx context.Context, filter entities.AuditLogFilter, pagination utils.PaginationParams) ([]*entities.AuditLog, int64, error)
}
