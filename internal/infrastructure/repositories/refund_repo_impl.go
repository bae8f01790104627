package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"shop-admin.backend/internal/domain/entities"
	"shop-admin.backend/internal/infrastructure/models"
	"shop-admin.backend/pkg/utils"
)

// RefundRepository implements refund data operations
type RefundRepository struct {
	db *gorm.DB
}

// NewRefundRepository creates a new refund repository
func NewRefundRepository(db *gorm.DB) *RefundRepository {
	return &RefundRepository{db: db}
}

// Create creates a refund
func (r *RefundRepository) Create(ctx context.Context, rf *entities.Refund) error {
	now := time.Now()
	rf.ID = ensureID(rf.ID)
	rf.CreatedAt, rf.UpdatedAt = now, now
	return GetDB(ctx, r.db).Create(&models.Refund{
		ID:        rf.ID,
		OrderID:   rf.OrderID,
		UserID:    rf.UserID,
		Amount:    rf.Amount,
		Reason:    rf.Reason,
		Method:    string(rf.Method),
		Status:    string(rf.Status),
		AdminNote: rf.AdminNote,
		CreatedAt: now,
		UpdatedAt: now,
	}).Error
}

// GetByID gets a refund by ID, locked when called inside a transaction
func (r *RefundRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Refund, error) {
	var m models.Refund
	if err := lockForUpdate(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return refundToEntity(&m), nil
}

// Update persists the review outcome of a refund that is still pending.
// A refund reviewed in the meantime yields ErrInvalidTransition.
func (r *RefundRepository) Update(ctx context.Context, rf *entities.Refund) error {
	rf.UpdatedAt = time.Now()
	result := GetDB(ctx, r.db).Model(&models.Refund{}).
		Where("id = ? AND status = ?", rf.ID, string(entities.RefundStatusPending)).
		Updates(map[string]interface{}{
			"status":                string(rf.Status),
			"admin_note":            rf.AdminNote,
			"processed_by":          rf.ProcessedBy,
			"processed_at":          rf.ProcessedAt.Ptr(),
			"wallet_transaction_id": rf.WalletTransactionID,
			"updated_at":            rf.UpdatedAt,
		})
	return checkTransition(ctx, r.db, &models.Refund{}, rf.ID, result)
}

// List lists refunds newest first
func (r *RefundRepository) List(ctx context.Context, filter entities.RefundFilter, pagination utils.PaginationParams) ([]*entities.Refund, int64, error) {
	query := GetDB(ctx, r.db).Model(&models.Refund{})
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	if filter.OrderID != nil {
		query = query.Where("order_id = ?", *filter.OrderID)
	}
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var ms []models.Refund
	if err := paginate(query.Order("created_at DESC"), pagination).Find(&ms).Error; err != nil {
		return nil, 0, err
	}
	items := make([]*entities.Refund, 0, len(ms))
	for i := range ms {
		items = append(items, refundToEntity(&ms[i]))
	}
	return items, total, nil
}

// ListByOrder returns all refunds of an order
func (r *RefundRepository) ListByOrder(ctx context.Context, orderID uuid.UUID) ([]*entities.Refund, error) {
	var ms []models.Refund
	if err := GetDB(ctx, r.db).Where("order_id = ?", orderID).Order("created_at").Find(&ms).Error; err != nil {
		return nil, err
	}
	items := make([]*entities.Refund, 0, len(ms))
	for i := range ms {
		items = append(items, refundToEntity(&ms[i]))
	}
	return items, nil
}

// SumByOrder totals refund amounts of an order in the given statuses
func (r *RefundRepository) SumByOrder(ctx context.Context, orderID uuid.UUID, statuses ...entities.RefundStatus) (decimal.Decimal, error) {
	query := GetDB(ctx, r.db).Model(&models.Refund{}).Where("order_id = ?", orderID)
	if len(statuses) > 0 {
		names := make([]string, 0, len(statuses))
		for _, s := range statuses {
			names = append(names, string(s))
		}
		query = query.Where("status IN ?", names)
	}
	// summed in Go so the arithmetic stays exact on every driver
	var amounts []decimal.Decimal
	if err := query.Pluck("amount", &amounts).Error; err != nil {
		return decimal.Zero, err
	}
	sum := decimal.Zero
	for _, a := range amounts {
		sum = sum.Add(a)
	}
	return sum, nil
}

func refundToEntity(m *models.Refund) *entities.Refund {
	return &entities.Refund{
		ID:                  m.ID,
		OrderID:             m.OrderID,
		UserID:              m.UserID,
		Amount:              m.Amount,
		Reason:              m.Reason,
		Method:              entities.RefundMethod(m.Method),
		Status:              entities.RefundStatus(m.Status),
		AdminNote:           m.AdminNote,
		ProcessedBy:         m.ProcessedBy,
		ProcessedAt:         null.TimeFromPtr(m.ProcessedAt),
		WalletTransactionID: m.WalletTransactionID,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}
