package repositories

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"shop-admin.backend/internal/domain/entities"
	"shop-admin.backend/internal/infrastructure/models"
	"shop-admin.backend/pkg/utils"
)

// WalletRepository implements wallet and ledger operations
type WalletRepository struct {
	db *gorm.DB
}

// NewWalletRepository creates a new wallet repository
func NewWalletRepository(db *gorm.DB) *WalletRepository {
	return &WalletRepository{db: db}
}

// Create creates a wallet
func (r *WalletRepository) Create(ctx context.Context, w *entities.Wallet) error {
	now := time.Now()
	w.ID = ensureID(w.ID)
	w.Currency = strings.ToUpper(w.Currency)
	w.CreatedAt, w.UpdatedAt = now, now
	return GetDB(ctx, r.db).Create(&models.Wallet{
		ID:        w.ID,
		UserID:    w.UserID,
		Currency:  w.Currency,
		Balance:   w.Balance,
		CreatedAt: now,
		UpdatedAt: now,
	}).Error
}

// GetByID gets a wallet by ID. Inside a transaction the row is locked
// until commit so concurrent balance changes serialize.
func (r *WalletRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Wallet, error) {
	var m models.Wallet
	if err := lockForUpdate(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return walletToEntity(&m), nil
}

// GetByUserAndCurrency gets the wallet of a user in a currency, locked like GetByID
func (r *WalletRepository) GetByUserAndCurrency(ctx context.Context, userID uuid.UUID, currency string) (*entities.Wallet, error) {
	var m models.Wallet
	if err := lockForUpdate(ctx, r.db).Where("user_id = ? AND currency = ?", userID, strings.ToUpper(currency)).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return walletToEntity(&m), nil
}

// UpdateBalance sets a wallet balance
func (r *WalletRepository) UpdateBalance(ctx context.Context, id uuid.UUID, balance decimal.Decimal) error {
	return checkAffected(GetDB(ctx, r.db).Model(&models.Wallet{}).Where("id = ?", id).Updates(map[string]interface{}{
		"balance":    balance,
		"updated_at": time.Now(),
	}))
}

// List lists wallets, optionally of one user
func (r *WalletRepository) List(ctx context.Context, userID *uuid.UUID, pagination utils.PaginationParams) ([]*entities.Wallet, int64, error) {
	query := GetDB(ctx, r.db).Model(&models.Wallet{})
	if userID != nil {
		query = query.Where("user_id = ?", *userID)
	}
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var ms []models.Wallet
	if err := paginate(query.Order("updated_at DESC"), pagination).Find(&ms).Error; err != nil {
		return nil, 0, err
	}
	items := make([]*entities.Wallet, 0, len(ms))
	for i := range ms {
		items = append(items, walletToEntity(&ms[i]))
	}
	return items, total, nil
}

// CreateTransaction appends a ledger entry
func (r *WalletRepository) CreateTransaction(ctx context.Context, t *entities.WalletTransaction) error {
	t.ID = ensureID(t.ID)
	t.CreatedAt = time.Now()
	return GetDB(ctx, r.db).Create(&models.WalletTransaction{
		ID:            t.ID,
		WalletID:      t.WalletID,
		Type:          string(t.Type),
		Amount:        t.Amount,
		BalanceBefore: t.BalanceBefore,
		BalanceAfter:  t.BalanceAfter,
		ReferenceType: t.ReferenceType,
		ReferenceID:   t.ReferenceID,
		Description:   t.Description,
		CreatedBy:     t.CreatedBy,
		CreatedAt:     t.CreatedAt,
	}).Error
}

// ListTransactions lists ledger entries newest first
func (r *WalletRepository) ListTransactions(ctx context.Context, walletID uuid.UUID, pagination utils.PaginationParams) ([]*entities.WalletTransaction, int64, error) {
	query := GetDB(ctx, r.db).Model(&models.WalletTransaction{}).Where("wallet_id = ?", walletID)
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var ms []models.WalletTransaction
	if err := paginate(query.Order("created_at DESC, id DESC"), pagination).Find(&ms).Error; err != nil {
		return nil, 0, err
	}
	items := make([]*entities.WalletTransaction, 0, len(ms))
	for _, m := range ms {
		items = append(items, &entities.WalletTransaction{
			ID:            m.ID,
			WalletID:      m.WalletID,
			Type:          entities.WalletTransactionType(m.Type),
			Amount:        m.Amount,
			BalanceBefore: m.BalanceBefore,
			BalanceAfter:  m.BalanceAfter,
			ReferenceType: m.ReferenceType,
			ReferenceID:   m.ReferenceID,
			Description:   m.Description,
			CreatedBy:     m.CreatedBy,
			CreatedAt:     m.CreatedAt,
		})
	}
	return items, total, nil
}

func walletToEntity(m *models.Wallet) *entities.Wallet {
	return &entities.Wallet{
		ID:        m.ID,
		UserID:    m.UserID,
		Currency:  m.Currency,
		Balance:   m.Balance,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
