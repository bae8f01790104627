package usecases

import (
	"context"
	"regexp"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"shop-admin.backend/internal/domain/entities"
	domainerrors "shop-admin.backend/internal/domain/errors"
	"shop-admin.backend/internal/domain/repositories"
	"shop-admin.backend/pkg/utils"
)

var countryCodePattern = regexp.MustCompile(`^[A-Z]{2}$`)

// TaxUsecase manages tax rates and rules and resolves the rate of a destination
type TaxUsecase struct {
	rateRepo     repositories.TaxRateRepository
	ruleRepo     repositories.TaxRuleRepository
	categoryRepo repositories.CategoryRepository
	uow          repositories.UnitOfWork
	audit        *AuditService
}

// NewTaxUsecase creates a new tax usecase
func NewTaxUsecase(
	rateRepo repositories.TaxRateRepository,
	ruleRepo repositories.TaxRuleRepository,
	categoryRepo repositories.CategoryRepository,
	uow repositories.UnitOfWork,
	audit *AuditService,
) *TaxUsecase {
	return &TaxUsecase{rateRepo: rateRepo, ruleRepo: ruleRepo, categoryRepo: categoryRepo, uow: uow, audit: audit}
}

// ---- rates ----

func (u *TaxUsecase) ListRates(ctx context.Context, pagination utils.PaginationParams) ([]*entities.TaxRate, int64, error) {
	return u.rateRepo.List(ctx, pagination)
}

func (u *TaxUsecase) GetRate(ctx context.Context, id uuid.UUID) (*entities.TaxRate, error) {
	return u.rateRepo.GetByID(ctx, id)
}

func (u *TaxUsecase) CreateRate(ctx context.Context, input *entities.TaxRateInput) (*entities.TaxRate, error) {
	if err := validateRate(input.Rate); err != nil {
		return nil, err
	}
	rate := &entities.TaxRate{
		Name:     strings.TrimSpace(input.Name),
		Rate:     input.Rate.Round(4),
		IsActive: boolOr(input.IsActive, true),
	}
	err := u.uow.Do(ctx, func(ctx context.Context) error {
		if err := u.rateRepo.Create(ctx, rate); err != nil {
			return err
		}
		return u.audit.Record(ctx, "tax_rates", entities.AuditActionCreated, "tax_rate", rate.ID.String(), nil, rate)
	})
	if err != nil {
		return nil, err
	}
	return rate, nil
}

func (u *TaxUsecase) UpdateRate(ctx context.Context, id uuid.UUID, input *entities.TaxRateInput) (*entities.TaxRate, error) {
	if err := validateRate(input.Rate); err != nil {
		return nil, err
	}
	rate, err := u.rateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	before := cloneOf(rate)
	rate.Name = strings.TrimSpace(input.Name)
	rate.Rate = input.Rate.Round(4)
	rate.IsActive = boolOr(input.IsActive, rate.IsActive)
	err = u.uow.Do(ctx, func(ctx context.Context) error {
		if err := u.rateRepo.Update(ctx, rate); err != nil {
			return err
		}
		return u.audit.Record(ctx, "tax_rates", entities.AuditActionUpdated, "tax_rate", id.String(), before, rate)
	})
	if err != nil {
		return nil, err
	}
	return rate, nil
}

// DeleteRate deletes a rate no rule points at
func (u *TaxUsecase) DeleteRate(ctx context.Context, id uuid.UUID) error {
	rate, err := u.rateRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	rules, err := u.rateRepo.CountRules(ctx, id)
	if err != nil {
		return err
	}
	if rules > 0 {
		return domainerrors.Unprocessable("tax rate is used by tax rules", domainerrors.ErrInUse)
	}
	return u.uow.Do(ctx, func(ctx context.Context) error {
		if err := u.rateRepo.Delete(ctx, id); err != nil {
			return err
		}
		return u.audit.Record(ctx, "tax_rates", entities.AuditActionDeleted, "tax_rate", id.String(), rate, nil)
	})
}

func validateRate(rate decimal.Decimal) error {
	if rate.IsNegative() || rate.GreaterThan(hundred) {
		return domainerrors.ValidationFailed(map[string]string{"rate": "must be between 0 and 100"})
	}
	return nil
}

// ---- rules ----

func (u *TaxUsecase) ListRules(ctx context.Context, pagination utils.PaginationParams) ([]*entities.TaxRule, int64, error) {
	return u.ruleRepo.List(ctx, pagination)
}

func (u *TaxUsecase) GetRule(ctx context.Context, id uuid.UUID) (*entities.TaxRule, error) {
	return u.ruleRepo.GetByID(ctx, id)
}

func (u *TaxUsecase) CreateRule(ctx context.Context, input *entities.TaxRuleInput) (*entities.TaxRule, error) {
	rule := &entities.TaxRule{IsActive: boolOr(input.IsActive, true)}
	if err := u.applyRuleInput(ctx, rule, input); err != nil {
		return nil, err
	}
	err := u.uow.Do(ctx, func(ctx context.Context) error {
		if err := u.ruleRepo.Create(ctx, rule); err != nil {
			return err
		}
		return u.audit.Record(ctx, "tax_rules", entities.AuditActionCreated, "tax_rule", rule.ID.String(), nil, rule)
	})
	if err != nil {
		return nil, err
	}
	return rule, nil
}

func (u *TaxUsecase) UpdateRule(ctx context.Context, id uuid.UUID, input *entities.TaxRuleInput) (*entities.TaxRule, error) {
	rule, err := u.ruleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	before := cloneOf(rule)
	if err := u.applyRuleInput(ctx, rule, input); err != nil {
		return nil, err
	}
	rule.IsActive = boolOr(input.IsActive, rule.IsActive)
	err = u.uow.Do(ctx, func(ctx context.Context) error {
		if err := u.ruleRepo.Update(ctx, rule); err != nil {
			return err
		}
		return u.audit.Record(ctx, "tax_rules", entities.AuditActionUpdated, "tax_rule", id.String(), before, rule)
	})
	if err != nil {
		return nil, err
	}
	return rule, nil
}

func (u *TaxUsecase) DeleteRule(ctx context.Context, id uuid.UUID) error {
	rule, err := u.ruleRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return u.uow.Do(ctx, func(ctx context.Context) error {
		if err := u.ruleRepo.Delete(ctx, id); err != nil {
			return err
		}
		return u.audit.Record(ctx, "tax_rules", entities.AuditActionDeleted, "tax_rule", id.String(), rule, nil)
	})
}

func (u *TaxUsecase) applyRuleInput(ctx context.Context, r *entities.TaxRule, input *entities.TaxRuleInput) error {
	country := strings.ToUpper(strings.TrimSpace(input.Country))
	postcode := strings.ToUpper(strings.TrimSpace(input.Postcode))
	fields := map[string]string{}
	if country != entities.TaxCountryWildcard && !countryCodePattern.MatchString(country) {
		fields["country"] = "must be an ISO 3166-1 alpha-2 code or *"
	}
	if i := strings.Index(postcode, "*"); i >= 0 && i != len(postcode)-1 {
		fields["postcode"] = "wildcard * is only allowed at the end"
	}
	if len(fields) > 0 {
		return domainerrors.ValidationFailed(fields)
	}
	if _, err := u.rateRepo.GetByID(ctx, input.TaxRateID); err != nil {
		return missingRef(err, "tax rate")
	}
	if input.CategoryID != nil {
		if _, err := u.categoryRepo.GetByID(ctx, *input.CategoryID); err != nil {
			return missingRef(err, "category")
		}
	}

	r.Name = strings.TrimSpace(input.Name)
	r.TaxRateID = input.TaxRateID
	r.Country = country
	r.State = strings.TrimSpace(input.State)
	r.Postcode = postcode
	r.CategoryID = input.CategoryID
	r.Priority = input.Priority
	return nil
}

// ---- resolution ----

// Resolve picks the tax rate for a destination and category and computes the
// tax on input.Amount. When no rule matches, the fallback rate applies if it
// is active, else the rate is zero.
func (u *TaxUsecase) Resolve(ctx context.Context, input *entities.TaxResolveInput) (*entities.TaxResolution, error) {
	rules, err := u.ruleRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	if rule := MatchTaxRule(rules, input.Address, input.CategoryID); rule != nil {
		ruleID, rateID := rule.ID, rule.TaxRateID
		return &entities.TaxResolution{
			RuleID:    &ruleID,
			TaxRateID: &rateID,
			Rate:      rule.Rate.Rate,
			TaxAmount: taxOn(input.Amount, rule.Rate.Rate),
		}, nil
	}

	res := &entities.TaxResolution{Rate: decimal.Zero, TaxAmount: decimal.Zero}
	if input.FallbackRateID != nil {
		rate, err := u.rateRepo.GetByID(ctx, *input.FallbackRateID)
		if err != nil && !isNotFound(err) {
			return nil, err
		}
		if rate != nil && rate.IsActive {
			rateID := rate.ID
			res.TaxRateID = &rateID
			res.Rate = rate.Rate
			res.TaxAmount = taxOn(input.Amount, rate.Rate)
		}
	}
	return res, nil
}

// MatchTaxRule returns the winning rule: highest priority, then the most
// specific, then the oldest. Rules without an active rate never match.
func MatchTaxRule(rules []*entities.TaxRule, addr entities.TaxAddress, categoryID *uuid.UUID) *entities.TaxRule {
	type candidate struct {
		rule        *entities.TaxRule
		specificity int
	}
	var candidates []candidate
	for _, rule := range rules {
		if !rule.IsActive || rule.Rate == nil || !rule.Rate.IsActive {
			continue
		}
		if s, ok := ruleMatches(rule, addr, categoryID); ok {
			candidates = append(candidates, candidate{rule: rule, specificity: s})
		}
	}
	if len(candidates) == 0 {
		return nil
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.rule.Priority != b.rule.Priority {
			return a.rule.Priority > b.rule.Priority
		}
		if a.specificity != b.specificity {
			return a.specificity > b.specificity
		}
		return a.rule.CreatedAt.Before(b.rule.CreatedAt)
	})
	return candidates[0].rule
}

// ruleMatches reports whether every set field of rule matches, and how many
// non-wildcard fields took part
func ruleMatches(rule *entities.TaxRule, addr entities.TaxAddress, categoryID *uuid.UUID) (int, bool) {
	specificity := 0
	if rule.Country != entities.TaxCountryWildcard {
		if !strings.EqualFold(rule.Country, strings.TrimSpace(addr.Country)) {
			return 0, false
		}
		specificity++
	}
	if rule.State != "" {
		if !strings.EqualFold(rule.State, strings.TrimSpace(addr.State)) {
			return 0, false
		}
		specificity++
	}
	if rule.Postcode != "" && rule.Postcode != "*" {
		postcode := strings.ToUpper(strings.TrimSpace(addr.Postcode))
		if prefix, wildcard := strings.CutSuffix(rule.Postcode, "*"); wildcard {
			if !strings.HasPrefix(postcode, prefix) {
				return 0, false
			}
		} else if postcode != rule.Postcode {
			return 0, false
		}
		specificity++
	}
	if rule.CategoryID != nil {
		if categoryID == nil || *categoryID != *rule.CategoryID {
			return 0, false
		}
		specificity++
	}
	return specificity, true
}

func taxOn(amount, rate decimal.Decimal) decimal.Decimal {
	return amount.Mul(rate).Div(hundred).Round(2)
}
