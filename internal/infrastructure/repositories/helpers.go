package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	domainerrors "shop-admin.backend/internal/domain/errors"
	"shop-admin.backend/pkg/utils"
)

func paginate(query *gorm.DB, pagination utils.PaginationParams) *gorm.DB {
	if pagination.Limit > 0 {
		return query.Limit(pagination.Limit).Offset(pagination.CalculateOffset())
	}
	return query
}

func translateError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domainerrors.ErrNotFound
	}
	return err
}

// lockForUpdate reads rows FOR UPDATE when ctx carries a postgres transaction
func lockForUpdate(ctx context.Context, fallback *gorm.DB) *gorm.DB {
	db := GetDB(ctx, fallback)
	if _, inTx := ctx.Value(txKey).(*gorm.DB); inTx && db.Dialector.Name() == "postgres" {
		return db.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return db
}

// checkTransition reports a zero-row status-guarded write as ErrNotFound
// when the row is gone and as ErrInvalidTransition when its status moved.
func checkTransition(ctx context.Context, db *gorm.DB, model interface{}, id uuid.UUID, result *gorm.DB) error {
	if result.Error != nil || result.RowsAffected > 0 {
		return result.Error
	}
	var count int64
	if err := GetDB(ctx, db).Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return domainerrors.ErrNotFound
	}
	return domainerrors.ErrInvalidTransition
}

// checkAffected turns a zero-row write into ErrNotFound
func checkAffected(result *gorm.DB) error {
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// likeTerm builds a case-insensitive LIKE operand; use with LOWER(column) LIKE ?
func likeTerm(search string) string {
	return "%" + strings.ToLower(strings.TrimSpace(search)) + "%"
}

func columnValueExists(db *gorm.DB, model interface{}, column, value string, excludeID *uuid.UUID) (bool, error) {
	var count int64
	query := db.Model(model).Where(column+" = ?", value)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func ensureID(id uuid.UUID) uuid.UUID {
	if id == uuid.Nil {
		return utils.GenerateUUIDv7()
	}
	return id
}
