package usecases

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"shop-admin.backend/internal/domain/entities"
	domainerrors "shop-admin.backend/internal/domain/errors"
	"shop-admin.backend/internal/domain/repositories"
	"shop-admin.backend/pkg/metrics"
	"shop-admin.backend/pkg/utils"
)

// AuditService writes the before/after trail of admin mutations
type AuditService struct {
	repo repositories.AuditLogRepository
}

// NewAuditService creates a new audit service
func NewAuditService(repo repositories.AuditLogRepository) *AuditService {
	return &AuditService{repo: repo}
}

// Record appends an audit entry for the actor in ctx. Call it inside the
// mutation's UnitOfWork so the entry commits or rolls back with the change.
// An update whose snapshots are identical is not recorded.
func (s *AuditService) Record(ctx context.Context, module, action, subjectType, subjectID string, before, after interface{}) error {
	b, err := snapshot(before)
	if err != nil {
		return err
	}
	a, err := snapshot(after)
	if err != nil {
		return err
	}
	if !b.Valid && !a.Valid {
		return domainerrors.ErrInvalidInput
	}
	if action == entities.AuditActionUpdated && b.Valid && a.Valid && sameSnapshot(b.JSON, a.JSON) {
		return nil
	}

	entry := &entities.AuditLog{
		Module:      module,
		Action:      action,
		SubjectType: subjectType,
		SubjectID:   subjectID,
		Before:      b,
		After:       a,
	}
	if actor, ok := entities.ActorFromContext(ctx); ok {
		if actor.UserID != uuid.Nil {
			id := actor.UserID
			entry.UserID = &id
		}
		entry.IPAddress = actor.IP
		entry.UserAgent = actor.UserAgent
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		return err
	}
	metrics.AuditEntriesTotal.WithLabelValues(module, action).Inc()
	return nil
}

// List lists audit entries newest first
func (s *AuditService) List(ctx context.Context, filter entities.AuditLogFilter, pagination utils.PaginationParams) ([]*entities.AuditLog, int64, error) {
	return s.repo.List(ctx, filter, pagination)
}

// GetByID gets an audit entry
func (s *AuditService) GetByID(ctx context.Context, id uuid.UUID) (*entities.AuditLog, error) {
	return s.repo.GetByID(ctx, id)
}

func snapshot(v interface{}) (null.JSON, error) {
	if v == nil {
		return null.JSON{}, nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return null.JSON{}, fmt.Errorf("audit snapshot: %w", err)
	}
	if bytes.Equal(data, []byte("null")) {
		return null.JSON{}, nil
	}
	return null.JSONFrom(data), nil
}

// bookkeepingFields change on every save and never count as a change
var bookkeepingFields = []string{"createdAt", "updatedAt"}

func sameSnapshot(before, after []byte) bool {
	if bytes.Equal(before, after) {
		return true
	}
	var b, a interface{}
	if json.Unmarshal(before, &b) != nil || json.Unmarshal(after, &a) != nil {
		return false
	}
	return reflect.DeepEqual(withoutBookkeeping(b), withoutBookkeeping(a))
}

func withoutBookkeeping(v interface{}) interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		for _, field := range bookkeepingFields {
			delete(t, field)
		}
		for k, child := range t {
			t[k] = withoutBookkeeping(child)
		}
	case []interface{}:
		for i, child := range t {
			t[i] = withoutBookkeeping(child)
		}
	}
	return v
}
