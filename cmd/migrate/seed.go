package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"shop-admin.backend/internal/domain/entities"
	domainerrors "shop-admin.backend/internal/domain/errors"
	domainrepo "shop-admin.backend/internal/domain/repositories"
)

// seedRepos are the stores the bootstrap data is written to
type seedRepos struct {
	permissions domainrepo.PermissionRepository
	roles       domainrepo.RoleRepository
	currencies  domainrepo.CurrencyRepository
	languages   domainrepo.LanguageRepository
}

type seedReport struct {
	Permissions     int
	RoleCreated     bool
	CurrencyCreated bool
	LanguageCreated bool
}

// seed is idempotent: the catalogue is upserted, everything else is only
// created when missing.
func seed(ctx context.Context, repos seedRepos, catalogue []entities.Permission) (seedReport, error) {
	var report seedReport

	ids := make([]uuid.UUID, 0, len(catalogue))
	for i := range catalogue {
		p := catalogue[i]
		if err := repos.permissions.Upsert(ctx, &p); err != nil {
			return report, fmt.Errorf("upsert permission %s: %w", p.Name, err)
		}
		ids = append(ids, p.ID)
	}
	report.Permissions = len(ids)

	role, err := repos.roles.GetByName(ctx, entities.RoleSuperAdmin)
	switch {
	case errors.Is(err, domainerrors.ErrNotFound):
		role = &entities.Role{Name: entities.RoleSuperAdmin, Description: "Full access"}
		if err := repos.roles.Create(ctx, role); err != nil {
			return report, fmt.Errorf("create %s role: %w", entities.RoleSuperAdmin, err)
		}
		report.RoleCreated = true
	case err != nil:
		return report, fmt.Errorf("load %s role: %w", entities.RoleSuperAdmin, err)
	}
	if err := repos.roles.SetPermissions(ctx, role.ID, ids); err != nil {
		return report, fmt.Errorf("grant %s permissions: %w", entities.RoleSuperAdmin, err)
	}

	n, err := repos.currencies.Count(ctx)
	if err != nil {
		return report, fmt.Errorf("count currencies: %w", err)
	}
	if n == 0 {
		if err := repos.currencies.Create(ctx, &entities.Currency{
			Code:          "USD",
			Name:          "US Dollar",
			Symbol:        "$",
			ExchangeRate:  decimal.NewFromInt(1),
			DecimalPlaces: 2,
			IsDefault:     true,
			IsActive:      true,
		}); err != nil {
			return report, fmt.Errorf("create default currency: %w", err)
		}
		report.CurrencyCreated = true
	}

	n, err = repos.languages.Count(ctx)
	if err != nil {
		return report, fmt.Errorf("count languages: %w", err)
	}
	if n == 0 {
		if err := repos.languages.Create(ctx, &entities.Language{
			Code:       "en",
			Name:       "English",
			NativeName: "English",
			Direction:  entities.DirectionLTR,
			IsDefault:  true,
			IsActive:   true,
		}); err != nil {
			return report, fmt.Errorf("create default language: %w", err)
		}
		report.LanguageCreated = true
	}
	return report, nil
}
