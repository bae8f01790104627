package usecases

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"shop-admin.backend/internal/domain/entities"
	domainerrors "shop-admin.backend/internal/domain/errors"
	"shop-admin.backend/internal/domain/repositories"
	"shop-admin.backend/pkg/logger"
	"shop-admin.backend/pkg/utils"
)

// TranslationsCacheKey is the cache key of a locale's exported bundle
func TranslationsCacheKey(locale string) string {
	return "translations:" + locale
}

// ImportResult counts the rows an import touched
type ImportResult struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
}

// TranslationUsecase manages localized strings
type TranslationUsecase struct {
	translationRepo repositories.TranslationRepository
	languageRepo    repositories.LanguageRepository
	uow             repositories.UnitOfWork
	audit           *AuditService
	cache           repositories.CacheStore
	cacheTTL        time.Duration
}

// NewTranslationUsecase creates a new translation usecase
func NewTranslationUsecase(
	translationRepo repositories.TranslationRepository,
	languageRepo repositories.LanguageRepository,
	uow repositories.UnitOfWork,
	audit *AuditService,
	cache repositories.CacheStore,
	cacheTTL time.Duration,
) *TranslationUsecase {
	return &TranslationUsecase{
		translationRepo: translationRepo,
		languageRepo:    languageRepo,
		uow:             uow,
		audit:           audit,
		cache:           cache,
		cacheTTL:        cacheTTL,
	}
}

func (u *TranslationUsecase) ListTranslations(ctx context.Context, filter entities.TranslationFilter, pagination utils.PaginationParams) ([]*entities.Translation, int64, error) {
	if filter.Locale != "" {
		locale, err := CanonicalLocale(filter.Locale)
		if err != nil {
			return nil, 0, err
		}
		filter.Locale = locale
	}
	return u.translationRepo.List(ctx, filter, pagination)
}

func (u *TranslationUsecase) GetTranslation(ctx context.Context, id uuid.UUID) (*entities.Translation, error) {
	return u.translationRepo.GetByID(ctx, id)
}

func (u *TranslationUsecase) CreateTranslation(ctx context.Context, input *entities.TranslationInput) (*entities.Translation, error) {
	t := &entities.Translation{}
	if err := u.applyInput(ctx, t, input, nil); err != nil {
		return nil, err
	}
	err := u.uow.Do(ctx, func(ctx context.Context) error {
		if err := u.translationRepo.Create(ctx, t); err != nil {
			return err
		}
		return u.audit.Record(ctx, "translations", entities.AuditActionCreated, "translation", t.ID.String(), nil, t)
	})
	if err != nil {
		return nil, err
	}
	u.invalidateLocales(ctx, t.Locale)
	return t, nil
}

func (u *TranslationUsecase) UpdateTranslation(ctx context.Context, id uuid.UUID, input *entities.TranslationInput) (*entities.Translation, error) {
	t, err := u.translationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	before := cloneOf(t)
	if err := u.applyInput(ctx, t, input, &id); err != nil {
		return nil, err
	}
	err = u.uow.Do(ctx, func(ctx context.Context) error {
		if err := u.translationRepo.Update(ctx, t); err != nil {
			return err
		}
		return u.audit.Record(ctx, "translations", entities.AuditActionUpdated, "translation", id.String(), before, t)
	})
	if err != nil {
		return nil, err
	}
	u.invalidateLocales(ctx, before.Locale, t.Locale)
	return t, nil
}

func (u *TranslationUsecase) DeleteTranslation(ctx context.Context, id uuid.UUID) error {
	t, err := u.translationRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	err = u.uow.Do(ctx, func(ctx context.Context) error {
		if err := u.translationRepo.Delete(ctx, id); err != nil {
			return err
		}
		return u.audit.Record(ctx, "translations", entities.AuditActionDeleted, "translation", id.String(), t, nil)
	})
	if err != nil {
		return err
	}
	u.invalidateLocales(ctx, t.Locale)
	return nil
}

// Export returns the locale's strings as group -> key -> value. Keys missing
// in the locale are filled from the default language.
func (u *TranslationUsecase) Export(ctx context.Context, locale string) (entities.TranslationBundle, error) {
	locale, err := u.knownLocale(ctx, locale)
	if err != nil {
		return nil, err
	}
	key := TranslationsCacheKey(locale)
	var bundle entities.TranslationBundle
	if readCache(ctx, u.cache, key, &bundle) {
		return bundle, nil
	}

	bundle = entities.TranslationBundle{}
	def, err := u.languageRepo.GetDefault(ctx)
	if err != nil && !isNotFound(err) {
		return nil, err
	}
	if def != nil && def.Code != locale {
		rows, err := u.translationRepo.ListByLocale(ctx, def.Code)
		if err != nil {
			return nil, err
		}
		addToBundle(bundle, rows)
	}
	rows, err := u.translationRepo.ListByLocale(ctx, locale)
	if err != nil {
		return nil, err
	}
	addToBundle(bundle, rows)

	writeCache(ctx, u.cache, key, bundle, u.cacheTTL)
	return bundle, nil
}

// Import upserts a whole bundle for one locale in a single transaction
func (u *TranslationUsecase) Import(ctx context.Context, locale string, bundle entities.TranslationBundle) (*ImportResult, error) {
	locale, err := u.knownLocale(ctx, locale)
	if err != nil {
		return nil, err
	}
	for group, entries := range bundle {
		if strings.TrimSpace(group) == "" {
			return nil, domainerrors.BadRequest("translation group must not be empty")
		}
		for k := range entries {
			if strings.TrimSpace(k) == "" {
				return nil, domainerrors.BadRequest("translation key must not be empty")
			}
		}
	}

	result := &ImportResult{}
	err = u.uow.Do(ctx, func(ctx context.Context) error {
		for group, entries := range bundle {
			group = strings.TrimSpace(group)
			for k, value := range entries {
				k = strings.TrimSpace(k)
				existing, err := u.translationRepo.GetByKey(ctx, group, k, locale)
				switch {
				case err == nil:
					if existing.Value == value {
						continue
					}
					existing.Value = value
					if err := u.translationRepo.Update(ctx, existing); err != nil {
						return err
					}
					result.Updated++
				case isNotFound(err):
					if err := u.translationRepo.Create(ctx, &entities.Translation{Group: group, Key: k, Locale: locale, Value: value}); err != nil {
						return err
					}
					result.Created++
				default:
					return err
				}
			}
		}
		if result.Created+result.Updated == 0 {
			return nil
		}
		return u.audit.Record(ctx, "translations", "imported", "translation_locale", locale, nil, result)
	})
	if err != nil {
		return nil, err
	}

	u.invalidateLocales(ctx, locale)
	logger.Info(ctx, "Translations imported",
		zap.String("locale", locale),
		zap.Int("created", result.Created),
		zap.Int("updated", result.Updated),
	)
	return result, nil
}

func (u *TranslationUsecase) applyInput(ctx context.Context, t *entities.Translation, input *entities.TranslationInput, excludeID *uuid.UUID) error {
	group := strings.TrimSpace(input.Group)
	key := strings.TrimSpace(input.Key)
	if group == "" || key == "" {
		return domainerrors.ValidationFailed(map[string]string{"group": "is required", "key": "is required"})
	}
	locale, err := u.knownLocale(ctx, input.Locale)
	if err != nil {
		return err
	}
	existing, err := u.translationRepo.GetByKey(ctx, group, key, locale)
	if err != nil && !isNotFound(err) {
		return err
	}
	if existing != nil && (excludeID == nil || existing.ID != *excludeID) {
		return domainerrors.Conflict("translation already exists for this group, key and locale")
	}
	t.Group = group
	t.Key = key
	t.Locale = locale
	t.Value = input.Value
	return nil
}

// knownLocale canonicalises a locale and checks a language exists for it
func (u *TranslationUsecase) knownLocale(ctx context.Context, locale string) (string, error) {
	locale, err := CanonicalLocale(locale)
	if err != nil {
		return "", err
	}
	if _, err := u.languageRepo.GetByCode(ctx, locale); err != nil {
		if isNotFound(err) {
			return "", domainerrors.BadRequest("unknown locale " + locale)
		}
		return "", err
	}
	return locale, nil
}

// invalidateLocales drops exported bundles. A change to the default language
// reaches every bundle through the fallback.
func (u *TranslationUsecase) invalidateLocales(ctx context.Context, locales ...string) {
	keys := make([]string, 0, len(locales))
	for _, l := range locales {
		keys = append(keys, TranslationsCacheKey(l))
	}
	if def, err := u.languageRepo.GetDefault(ctx); err == nil {
		for _, l := range locales {
			if l != def.Code {
				continue
			}
			if all, err := u.languageRepo.List(ctx); err == nil {
				for _, lang := range all {
					keys = append(keys, TranslationsCacheKey(lang.Code))
				}
			}
			break
		}
	}
	invalidate(ctx, u.cache, keys...)
}

func addToBundle(bundle entities.TranslationBundle, rows []*entities.Translation) {
	for _, row := range rows {
		if bundle[row.Group] == nil {
			bundle[row.Group] = map[string]string{}
		}
		bundle[row.Group][row.Key] = row.Value
	}
}
