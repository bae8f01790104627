package repositories

import (
	"context"

	"github.com/google/uuid"
	"shop-admin.backend/internal/domain/entities"
	"shop-admin.backend/pkg/utils"
)

// NotificationTemplateRepository defines template data operations
type NotificationTemplateRepository interface {
	Create(ctx context.Context, template *entities.NotificationTemplate) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.NotificationTemplate, error)
	Find(ctx context.Context, event string, channel entities.NotificationChannel, locale string) (*entities.NotificationTemplate, error)
	Update(ctx context.Context, template *entities.NotificationTemplate) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, event string, pagination utils.PaginationParams) ([]*entities.NotificationTemplate, int64, error)
}

// NotificationLogRepository is list-only for admins; rows are written by senders
type NotificationLogRepository interface {
	Create(ctx context.Context, log *entities.NotificationLog) error
	List(ctx context.Context, filter entities.NotificationLogFilter, pagination utils.PaginationParams) ([]*entities.NotificationLog, int64, error)
}

// ProviderRepository defines provider and credential operations
type ProviderRepository interface {
	Create(ctx context.Context, provider *entities.Provider) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Provider, error)
	GetByTypeAndCode(ctx context.Context, providerType entities.ProviderType, code string) (*entities.Provider, error)
	Update(ctx context.Context, provider *entities.Provider) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, providerType entities.ProviderType, pagination utils.PaginationParams) ([]*entities.Provider, int64, error)
	ListSecrets(ctx context.Context, providerID uuid.UUID) ([]*entities.ProviderSecret, error)
	UpsertSecret(ctx context.Context, secret *entities.ProviderSecret) error
	DeleteSecret(ctx context.Context, providerID uuid.UUID, key string) error
}
