package usecases_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"shop-admin.backend/internal/domain/entities"
	"shop-admin.backend/internal/usecases"
)

// auditRecorder captures the entries written through an AuditService
type auditRecorder struct {
	repo    *MockAuditLogRepository
	entries []*entities.AuditLog
}

func newAudit(t *testing.T) (*usecases.AuditService, *auditRecorder) {
	t.Helper()
	rec := &auditRecorder{repo: new(MockAuditLogRepository)}
	rec.repo.On("Create", mock.Anything, mock.AnythingOfType("*entities.AuditLog")).
		Run(func(args mock.Arguments) {
			rec.entries = append(rec.entries, args.Get(1).(*entities.AuditLog))
		}).
		Return(nil)
	return usecases.NewAuditService(rec.repo), rec
}

func (r *auditRecorder) actions() []string {
	out := make([]string, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e.Module+"."+e.Action)
	}
	return out
}

func newUow() *MockUnitOfWork {
	uow := new(MockUnitOfWork)
	uow.On("Do", mock.Anything, mock.Anything).Return(nil)
	return uow
}

func actorCtx(userID uuid.UUID) context.Context {
	return entities.WithActor(context.Background(), entities.Actor{UserID: userID, Role: "manager", IP: "10.0.0.1", UserAgent: "test"})
}

// decEq matches a decimal argument by value rather than representation
func decEq(s string) interface{} {
	want := decimal.RequireFromString(s)
	return mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(want) })
}
