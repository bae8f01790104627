package usecases

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"shop-admin.backend/internal/domain/entities"
	domainerrors "shop-admin.backend/internal/domain/errors"
	"shop-admin.backend/internal/domain/repositories"
	"shop-admin.backend/pkg/logger"
	"shop-admin.backend/pkg/utils"
)

const walletDetailTransactions = 50

// WalletUsecase handles customer wallet balances
type WalletUsecase struct {
	walletRepo repositories.WalletRepository
	uow        repositories.UnitOfWork
	audit      *AuditService
}

// NewWalletUsecase creates a new wallet usecase
func NewWalletUsecase(walletRepo repositories.WalletRepository, uow repositories.UnitOfWork, audit *AuditService) *WalletUsecase {
	return &WalletUsecase{walletRepo: walletRepo, uow: uow, audit: audit}
}

// ListWallets lists wallets, optionally for one customer
func (u *WalletUsecase) ListWallets(ctx context.Context, userID *uuid.UUID, pagination utils.PaginationParams) ([]*entities.Wallet, int64, error) {
	return u.walletRepo.List(ctx, userID, pagination)
}

// GetWalletDetail returns a wallet with its latest transactions
func (u *WalletUsecase) GetWalletDetail(ctx context.Context, id uuid.UUID) (*entities.WalletDetail, error) {
	wallet, err := u.walletRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	txs, _, err := u.walletRepo.ListTransactions(ctx, id, utils.PaginationParams{Page: 1, Limit: walletDetailTransactions})
	if err != nil {
		return nil, err
	}
	return &entities.WalletDetail{Wallet: wallet, Transactions: txs}, nil
}

// Credit adds amount to the user's wallet in currency, creating the wallet on first use
func (u *WalletUsecase) Credit(ctx context.Context, userID uuid.UUID, currency string, amount decimal.Decimal, refType, refID, description string) (*entities.WalletTransaction, error) {
	var txn *entities.WalletTransaction
	err := u.uow.Do(ctx, func(ctx context.Context) error {
		wallet, err := u.getOrCreate(ctx, userID, currency)
		if err != nil {
			return err
		}
		txn, err = u.post(ctx, wallet, entities.WalletTransactionCredit, amount, refType, refID, description)
		return err
	})
	return txn, err
}

// Debit removes amount from the user's wallet; the balance never goes negative
func (u *WalletUsecase) Debit(ctx context.Context, userID uuid.UUID, currency string, amount decimal.Decimal, refType, refID, description string) (*entities.WalletTransaction, error) {
	var txn *entities.WalletTransaction
	err := u.uow.Do(ctx, func(ctx context.Context) error {
		wallet, err := u.getOrCreate(ctx, userID, currency)
		if err != nil {
			return err
		}
		txn, err = u.post(ctx, wallet, entities.WalletTransactionDebit, amount, refType, refID, description)
		return err
	})
	return txn, err
}

// Adjust is a manual admin correction of an existing wallet
func (u *WalletUsecase) Adjust(ctx context.Context, walletID uuid.UUID, input *entities.WalletAdjustmentInput) (*entities.WalletTransaction, error) {
	if input.Type != entities.WalletTransactionCredit && input.Type != entities.WalletTransactionDebit {
		return nil, domainerrors.BadRequest("type must be credit or debit")
	}

	var txn *entities.WalletTransaction
	err := u.uow.Do(ctx, func(ctx context.Context) error {
		wallet, err := u.walletRepo.GetByID(ctx, walletID)
		if err != nil {
			return err
		}
		before := cloneOf(wallet)
		txn, err = u.post(ctx, wallet, input.Type, input.Amount, entities.WalletReferenceAdjustment, "", input.Description)
		if err != nil {
			return err
		}
		return u.audit.Record(ctx, "wallets", "adjusted", "wallet", walletID.String(), before, wallet)
	})
	if err != nil {
		return nil, err
	}
	logger.Info(ctx, "Wallet adjusted",
		zap.String("wallet_id", walletID.String()),
		zap.String("type", string(input.Type)),
		zap.String("amount", txn.Amount.String()),
	)
	return txn, nil
}

func (u *WalletUsecase) getOrCreate(ctx context.Context, userID uuid.UUID, currency string) (*entities.Wallet, error) {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	wallet, err := u.walletRepo.GetByUserAndCurrency(ctx, userID, currency)
	if err == nil {
		return wallet, nil
	}
	if !isNotFound(err) {
		return nil, err
	}
	wallet = &entities.Wallet{UserID: userID, Currency: currency, Balance: decimal.Zero}
	if err := u.walletRepo.Create(ctx, wallet); err != nil {
		return nil, err
	}
	return wallet, nil
}

// post moves the balance and appends the ledger row. Must run inside a transaction.
func (u *WalletUsecase) post(
	ctx context.Context,
	wallet *entities.Wallet,
	kind entities.WalletTransactionType,
	amount decimal.Decimal,
	refType, refID, description string,
) (*entities.WalletTransaction, error) {
	amount = amount.Round(2)
	if !amount.IsPositive() {
		return nil, domainerrors.BadRequest("amount must be greater than zero")
	}

	balanceBefore := wallet.Balance
	balanceAfter := balanceBefore.Add(amount)
	if kind == entities.WalletTransactionDebit {
		balanceAfter = balanceBefore.Sub(amount)
		if balanceAfter.IsNegative() {
			return nil, domainerrors.Unprocessable("debit exceeds wallet balance", domainerrors.ErrInsufficientBalance)
		}
	}

	if err := u.walletRepo.UpdateBalance(ctx, wallet.ID, balanceAfter); err != nil {
		return nil, err
	}
	wallet.Balance = balanceAfter

	txn := &entities.WalletTransaction{
		WalletID:      wallet.ID,
		Type:          kind,
		Amount:        amount,
		BalanceBefore: balanceBefore,
		BalanceAfter:  balanceAfter,
		ReferenceType: refType,
		ReferenceID:   refID,
		Description:   description,
		CreatedBy:     actorID(ctx),
	}
	if err := u.walletRepo.CreateTransaction(ctx, txn); err != nil {
		return nil, err
	}
	return txn, nil
}
