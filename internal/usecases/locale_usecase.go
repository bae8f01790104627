package usecases

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"shop-admin.backend/internal/domain/entities"
	domainerrors "shop-admin.backend/internal/domain/errors"
	"shop-admin.backend/internal/domain/repositories"
	"shop-admin.backend/pkg/logger"
)

const (
	DefaultCurrencyCacheKey = "currencies:default"
	DefaultLanguageCacheKey = "languages:default"
)

var currencyCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)

// LocaleUsecase manages currencies and languages. Each keeps exactly one
// active default as soon as a row exists.
type LocaleUsecase struct {
	currencyRepo repositories.CurrencyRepository
	languageRepo repositories.LanguageRepository
	uow          repositories.UnitOfWork
	audit        *AuditService
	cache        repositories.CacheStore
	cacheTTL     time.Duration
}

// NewLocaleUsecase creates a new locale usecase
func NewLocaleUsecase(
	currencyRepo repositories.CurrencyRepository,
	languageRepo repositories.LanguageRepository,
	uow repositories.UnitOfWork,
	audit *AuditService,
	cache repositories.CacheStore,
	cacheTTL time.Duration,
) *LocaleUsecase {
	return &LocaleUsecase{
		currencyRepo: currencyRepo,
		languageRepo: languageRepo,
		uow:          uow,
		audit:        audit,
		cache:        cache,
		cacheTTL:     cacheTTL,
	}
}

// CanonicalLocale parses a BCP 47 tag and returns its canonical form
func CanonicalLocale(code string) (string, error) {
	tag, err := language.Parse(strings.TrimSpace(code))
	if err != nil {
		return "", domainerrors.BadRequest("invalid language code")
	}
	return tag.String(), nil
}

// ---- currencies ----

func (u *LocaleUsecase) ListCurrencies(ctx context.Context) ([]*entities.Currency, error) {
	return u.currencyRepo.List(ctx)
}

func (u *LocaleUsecase) GetCurrency(ctx context.Context, id uuid.UUID) (*entities.Currency, error) {
	return u.currencyRepo.GetByID(ctx, id)
}

// DefaultCurrency returns the store default, read through the cache
func (u *LocaleUsecase) DefaultCurrency(ctx context.Context) (*entities.Currency, error) {
	var c entities.Currency
	if readCache(ctx, u.cache, DefaultCurrencyCacheKey, &c) {
		return &c, nil
	}
	def, err := u.currencyRepo.GetDefault(ctx)
	if err != nil {
		return nil, err
	}
	writeCache(ctx, u.cache, DefaultCurrencyCacheKey, def, u.cacheTTL)
	return def, nil
}

// CreateCurrency creates a currency. The first currency becomes the default.
func (u *LocaleUsecase) CreateCurrency(ctx context.Context, input *entities.CurrencyInput) (*entities.Currency, error) {
	code := strings.ToUpper(strings.TrimSpace(input.Code))
	if err := validateCurrency(code, input.ExchangeRate); err != nil {
		return nil, err
	}
	if err := u.ensureCurrencyCodeFree(ctx, code, nil); err != nil {
		return nil, err
	}

	currency := &entities.Currency{
		Code:          code,
		Name:          strings.TrimSpace(input.Name),
		Symbol:        strings.TrimSpace(input.Symbol),
		ExchangeRate:  input.ExchangeRate,
		DecimalPlaces: input.DecimalPlaces,
		IsActive:      boolOr(input.IsActive, true),
	}
	err := u.uow.Do(ctx, func(ctx context.Context) error {
		count, err := u.currencyRepo.Count(ctx)
		if err != nil {
			return err
		}
		if count == 0 {
			currency.IsDefault = true
			currency.IsActive = true
			currency.ExchangeRate = decimal.NewFromInt(1)
		}
		if err := u.currencyRepo.Create(ctx, currency); err != nil {
			return err
		}
		return u.audit.Record(ctx, "currencies", entities.AuditActionCreated, "currency", currency.ID.String(), nil, currency)
	})
	if err != nil {
		return nil, err
	}
	if currency.IsDefault {
		invalidate(ctx, u.cache, DefaultCurrencyCacheKey)
	}
	return currency, nil
}

// UpdateCurrency updates a currency. The default cannot be deactivated and keeps a rate of 1.
func (u *LocaleUsecase) UpdateCurrency(ctx context.Context, id uuid.UUID, input *entities.CurrencyInput) (*entities.Currency, error) {
	code := strings.ToUpper(strings.TrimSpace(input.Code))
	if err := validateCurrency(code, input.ExchangeRate); err != nil {
		return nil, err
	}
	currency, err := u.currencyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := u.ensureCurrencyCodeFree(ctx, code, &id); err != nil {
		return nil, err
	}
	active := boolOr(input.IsActive, currency.IsActive)
	if currency.IsDefault && !active {
		return nil, domainerrors.Unprocessable("the default currency cannot be deactivated", domainerrors.ErrDefaultRequired)
	}

	before := cloneOf(currency)
	currency.Code = code
	currency.Name = strings.TrimSpace(input.Name)
	currency.Symbol = strings.TrimSpace(input.Symbol)
	currency.ExchangeRate = input.ExchangeRate
	currency.DecimalPlaces = input.DecimalPlaces
	currency.IsActive = active
	if currency.IsDefault {
		currency.ExchangeRate = decimal.NewFromInt(1)
	}
	err = u.uow.Do(ctx, func(ctx context.Context) error {
		if err := u.currencyRepo.Update(ctx, currency); err != nil {
			return err
		}
		return u.audit.Record(ctx, "currencies", entities.AuditActionUpdated, "currency", id.String(), before, currency)
	})
	if err != nil {
		return nil, err
	}
	if currency.IsDefault {
		invalidate(ctx, u.cache, DefaultCurrencyCacheKey)
	}
	return currency, nil
}

// SetDefaultCurrency makes an active currency the only default
func (u *LocaleUsecase) SetDefaultCurrency(ctx context.Context, id uuid.UUID) (*entities.Currency, error) {
	currency, err := u.currencyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !currency.IsActive {
		return nil, domainerrors.Unprocessable("only an active currency can be the default", domainerrors.ErrDefaultRequired)
	}
	if currency.IsDefault {
		return currency, nil
	}

	before := cloneOf(currency)
	err = u.uow.Do(ctx, func(ctx context.Context) error {
		if err := u.currencyRepo.ClearDefault(ctx); err != nil {
			return err
		}
		currency.IsDefault = true
		currency.ExchangeRate = decimal.NewFromInt(1)
		if err := u.currencyRepo.Update(ctx, currency); err != nil {
			return err
		}
		return u.audit.Record(ctx, "currencies", "default_changed", "currency", id.String(), before, currency)
	})
	if err != nil {
		return nil, err
	}
	invalidate(ctx, u.cache, DefaultCurrencyCacheKey)
	logger.Info(ctx, "Default currency changed", zap.String("code", currency.Code))
	return currency, nil
}

func (u *LocaleUsecase) DeleteCurrency(ctx context.Context, id uuid.UUID) error {
	currency, err := u.currencyRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if currency.IsDefault {
		return domainerrors.Unprocessable("the default currency cannot be deleted", domainerrors.ErrDefaultRequired)
	}
	return u.uow.Do(ctx, func(ctx context.Context) error {
		if err := u.currencyRepo.Delete(ctx, id); err != nil {
			return err
		}
		return u.audit.Record(ctx, "currencies", entities.AuditActionDeleted, "currency", id.String(), currency, nil)
	})
}

func (u *LocaleUsecase) ensureCurrencyCodeFree(ctx context.Context, code string, excludeID *uuid.UUID) error {
	existing, err := u.currencyRepo.GetByCode(ctx, code)
	if err != nil && !isNotFound(err) {
		return err
	}
	if existing != nil && (excludeID == nil || existing.ID != *excludeID) {
		return domainerrors.Conflict("currency code already exists")
	}
	return nil
}

func validateCurrency(code string, rate decimal.Decimal) error {
	fields := map[string]string{}
	if !currencyCodePattern.MatchString(code) {
		fields["code"] = "must be a three letter ISO 4217 code"
	}
	if !rate.IsPositive() {
		fields["exchangeRate"] = "must be greater than 0"
	}
	if len(fields) > 0 {
		return domainerrors.ValidationFailed(fields)
	}
	return nil
}

// ---- languages ----

func (u *LocaleUsecase) ListLanguages(ctx context.Context) ([]*entities.Language, error) {
	return u.languageRepo.List(ctx)
}

func (u *LocaleUsecase) GetLanguage(ctx context.Context, id uuid.UUID) (*entities.Language, error) {
	return u.languageRepo.GetByID(ctx, id)
}

// DefaultLanguage returns the store default, read through the cache
func (u *LocaleUsecase) DefaultLanguage(ctx context.Context) (*entities.Language, error) {
	var l entities.Language
	if readCache(ctx, u.cache, DefaultLanguageCacheKey, &l) {
		return &l, nil
	}
	def, err := u.languageRepo.GetDefault(ctx)
	if err != nil {
		return nil, err
	}
	writeCache(ctx, u.cache, DefaultLanguageCacheKey, def, u.cacheTTL)
	return def, nil
}

// CreateLanguage creates a language. The first language becomes the default.
func (u *LocaleUsecase) CreateLanguage(ctx context.Context, input *entities.LanguageInput) (*entities.Language, error) {
	code, direction, err := normalizeLanguage(input)
	if err != nil {
		return nil, err
	}
	if err := u.ensureLanguageCodeFree(ctx, code, nil); err != nil {
		return nil, err
	}

	lang := &entities.Language{
		Code:       code,
		Name:       strings.TrimSpace(input.Name),
		NativeName: strings.TrimSpace(input.NativeName),
		Direction:  direction,
		IsActive:   boolOr(input.IsActive, true),
	}
	err = u.uow.Do(ctx, func(ctx context.Context) error {
		count, err := u.languageRepo.Count(ctx)
		if err != nil {
			return err
		}
		if count == 0 {
			lang.IsDefault = true
			lang.IsActive = true
		}
		if err := u.languageRepo.Create(ctx, lang); err != nil {
			return err
		}
		return u.audit.Record(ctx, "languages", entities.AuditActionCreated, "language", lang.ID.String(), nil, lang)
	})
	if err != nil {
		return nil, err
	}
	if lang.IsDefault {
		invalidate(ctx, u.cache, DefaultLanguageCacheKey)
	}
	return lang, nil
}

func (u *LocaleUsecase) UpdateLanguage(ctx context.Context, id uuid.UUID, input *entities.LanguageInput) (*entities.Language, error) {
	code, direction, err := normalizeLanguage(input)
	if err != nil {
		return nil, err
	}
	lang, err := u.languageRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := u.ensureLanguageCodeFree(ctx, code, &id); err != nil {
		return nil, err
	}
	active := boolOr(input.IsActive, lang.IsActive)
	if lang.IsDefault && !active {
		return nil, domainerrors.Unprocessable("the default language cannot be deactivated", domainerrors.ErrDefaultRequired)
	}

	before := cloneOf(lang)
	lang.Code = code
	lang.Name = strings.TrimSpace(input.Name)
	lang.NativeName = strings.TrimSpace(input.NativeName)
	lang.Direction = direction
	lang.IsActive = active
	err = u.uow.Do(ctx, func(ctx context.Context) error {
		if err := u.languageRepo.Update(ctx, lang); err != nil {
			return err
		}
		return u.audit.Record(ctx, "languages", entities.AuditActionUpdated, "language", id.String(), before, lang)
	})
	if err != nil {
		return nil, err
	}
	keys := []string{TranslationsCacheKey(before.Code), TranslationsCacheKey(lang.Code)}
	if lang.IsDefault {
		keys = append(keys, DefaultLanguageCacheKey)
	}
	invalidate(ctx, u.cache, keys...)
	return lang, nil
}

// SetDefaultLanguage makes an active language the only default
func (u *LocaleUsecase) SetDefaultLanguage(ctx context.Context, id uuid.UUID) (*entities.Language, error) {
	lang, err := u.languageRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !lang.IsActive {
		return nil, domainerrors.Unprocessable("only an active language can be the default", domainerrors.ErrDefaultRequired)
	}
	if lang.IsDefault {
		return lang, nil
	}

	before := cloneOf(lang)
	err = u.uow.Do(ctx, func(ctx context.Context) error {
		if err := u.languageRepo.ClearDefault(ctx); err != nil {
			return err
		}
		lang.IsDefault = true
		if err := u.languageRepo.Update(ctx, lang); err != nil {
			return err
		}
		return u.audit.Record(ctx, "languages", "default_changed", "language", id.String(), before, lang)
	})
	if err != nil {
		return nil, err
	}

	// exports fall back to the default language, so all of them are stale
	keys := []string{DefaultLanguageCacheKey}
	if all, err := u.languageRepo.List(ctx); err == nil {
		for _, l := range all {
			keys = append(keys, TranslationsCacheKey(l.Code))
		}
	}
	invalidate(ctx, u.cache, keys...)
	logger.Info(ctx, "Default language changed", zap.String("code", lang.Code))
	return lang, nil
}

func (u *LocaleUsecase) DeleteLanguage(ctx context.Context, id uuid.UUID) error {
	lang, err := u.languageRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if lang.IsDefault {
		return domainerrors.Unprocessable("the default language cannot be deleted", domainerrors.ErrDefaultRequired)
	}
	err = u.uow.Do(ctx, func(ctx context.Context) error {
		if err := u.languageRepo.Delete(ctx, id); err != nil {
			return err
		}
		return u.audit.Record(ctx, "languages", entities.AuditActionDeleted, "language", id.String(), lang, nil)
	})
	if err != nil {
		return err
	}
	invalidate(ctx, u.cache, TranslationsCacheKey(lang.Code))
	return nil
}

func (u *LocaleUsecase) ensureLanguageCodeFree(ctx context.Context, code string, excludeID *uuid.UUID) error {
	existing, err := u.languageRepo.GetByCode(ctx, code)
	if err != nil && !isNotFound(err) {
		return err
	}
	if existing != nil && (excludeID == nil || existing.ID != *excludeID) {
		return domainerrors.Conflict("language code already exists")
	}
	return nil
}

func normalizeLanguage(input *entities.LanguageInput) (string, entities.TextDirection, error) {
	code, err := CanonicalLocale(input.Code)
	if err != nil {
		return "", "", err
	}
	direction := input.Direction
	if direction == "" {
		direction = entities.DirectionLTR
	}
	if direction != entities.DirectionLTR && direction != entities.DirectionRTL {
		return "", "", domainerrors.ValidationFailed(map[string]string{"direction": "must be ltr or rtl"})
	}
	return code, direction, nil
}
