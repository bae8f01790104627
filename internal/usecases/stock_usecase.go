package usecases

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"shop-admin.backend/internal/domain/entities"
	domainerrors "shop-admin.backend/internal/domain/errors"
	"shop-admin.backend/internal/domain/repositories"
	"shop-admin.backend/pkg/logger"
	"shop-admin.backend/pkg/utils"
)

// StockUsecase records manual stock changes through the ledger
type StockUsecase struct {
	productRepo repositories.ProductRepository
	stockRepo   repositories.StockRepository
	uow         repositories.UnitOfWork
	audit       *AuditService
}

// NewStockUsecase creates a new stock usecase
func NewStockUsecase(productRepo repositories.ProductRepository, stockRepo repositories.StockRepository, uow repositories.UnitOfWork, audit *AuditService) *StockUsecase {
	return &StockUsecase{productRepo: productRepo, stockRepo: stockRepo, uow: uow, audit: audit}
}

// Adjust applies a signed change to a product's stock. The adjustment,
// the ledger entry and the new quantity commit together.
func (u *StockUsecase) Adjust(ctx context.Context, productID uuid.UUID, input *entities.StockAdjustmentInput) (*entities.StockLedger, error) {
	if input.Change == 0 {
		return nil, domainerrors.BadRequest("change must not be zero")
	}
	if !input.Reason.IsValid() {
		return nil, domainerrors.BadRequest("unknown adjustment reason")
	}

	var entry *entities.StockLedger
	err := u.uow.Do(ctx, func(ctx context.Context) error {
		balance, err := u.productRepo.AdjustStock(ctx, productID, input.Change)
		if err != nil {
			return err
		}
		adj := &entities.StockAdjustment{
			ProductID: productID,
			Change:    input.Change,
			Reason:    input.Reason,
			Note:      input.Note,
			CreatedBy: actorID(ctx),
		}
		if err := u.stockRepo.CreateAdjustment(ctx, adj); err != nil {
			return err
		}
		entry = &entities.StockLedger{
			ProductID:     productID,
			Change:        input.Change,
			BalanceAfter:  balance,
			ReferenceType: entities.StockReferenceAdjustment,
			ReferenceID:   adj.ID.String(),
		}
		if err := u.stockRepo.CreateLedger(ctx, entry); err != nil {
			return err
		}
		return u.audit.Record(ctx, "stock", "adjusted", "product", productID.String(), nil, adj)
	})
	if err != nil {
		return nil, err
	}
	logger.Info(ctx, "Stock adjusted",
		zap.String("product_id", productID.String()),
		zap.Int("change", input.Change),
		zap.Int("balance", entry.BalanceAfter),
	)
	return entry, nil
}

// ListLedger lists a product's stock movements, newest first
func (u *StockUsecase) ListLedger(ctx context.Context, productID uuid.UUID, pagination utils.PaginationParams) ([]*entities.StockLedger, int64, error) {
	if _, err := u.productRepo.GetByID(ctx, productID); err != nil {
		return nil, 0, err
	}
	return u.stockRepo.ListLedger(ctx, productID, pagination)
}
