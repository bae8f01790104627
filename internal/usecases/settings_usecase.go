package usecases

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"shop-admin.backend/internal/domain/entities"
	domainerrors "shop-admin.backend/internal/domain/errors"
	"shop-admin.backend/internal/domain/repositories"
	"shop-admin.backend/pkg/crypto"
	"shop-admin.backend/pkg/logger"
)

const settingsCachePrefix = "settings:"

// SettingsCacheKey is the cache key of a settings group
func SettingsCacheKey(group string) string {
	return settingsCachePrefix + group
}

// SettingsUsecase is the generic key/value service behind every settings page.
// Stored values overlay the catalogue defaults; secret values are stored
// encrypted and leave the service masked.
type SettingsUsecase struct {
	groups   []entities.SettingGroup
	byName   map[string]*entities.SettingGroup
	repo     repositories.SettingRepository
	uow      repositories.UnitOfWork
	audit    *AuditService
	cache    repositories.CacheStore
	cipher   *crypto.Cipher
	cacheTTL time.Duration
	validate *validator.Validate
}

// NewSettingsUsecase creates a new settings usecase
func NewSettingsUsecase(
	groups []entities.SettingGroup,
	repo repositories.SettingRepository,
	uow repositories.UnitOfWork,
	audit *AuditService,
	cache repositories.CacheStore,
	cipher *crypto.Cipher,
	cacheTTL time.Duration,
) *SettingsUsecase {
	byName := make(map[string]*entities.SettingGroup, len(groups))
	for i := range groups {
		byName[groups[i].Name] = &groups[i]
	}
	return &SettingsUsecase{
		groups:   groups,
		byName:   byName,
		repo:     repo,
		uow:      uow,
		audit:    audit,
		cache:    cache,
		cipher:   cipher,
		cacheTTL: cacheTTL,
		validate: validator.New(),
	}
}

// ListGroups returns the settings page definitions
func (u *SettingsUsecase) ListGroups() []entities.SettingGroup {
	return u.groups
}

// GetGroup returns the effective values of a group with secrets masked
func (u *SettingsUsecase) GetGroup(ctx context.Context, group string) (map[string]string, error) {
	def, ok := u.byName[group]
	if !ok {
		return nil, domainerrors.NotFound("settings group not found")
	}
	raw, err := u.rawValues(ctx, def)
	if err != nil {
		return nil, err
	}
	return u.present(def, raw), nil
}

// GetString returns a single effective value; secrets are decrypted
func (u *SettingsUsecase) GetString(ctx context.Context, group, key string) (string, error) {
	def, ok := u.byName[group]
	if !ok {
		return "", domainerrors.NotFound("settings group not found")
	}
	field, ok := def.Field(key)
	if !ok {
		return "", domainerrors.NotFound("setting not found")
	}
	raw, err := u.rawValues(ctx, def)
	if err != nil {
		return "", err
	}
	v := raw[key]
	if field.Type == entities.SettingTypeSecret && v != "" {
		return u.cipher.DecryptString(v)
	}
	return v, nil
}

// GetBool returns a bool setting; an unset value is false
func (u *SettingsUsecase) GetBool(ctx context.Context, group, key string) (bool, error) {
	v, err := u.GetString(ctx, group, key)
	if err != nil || v == "" {
		return false, err
	}
	return strconv.ParseBool(v)
}

// GetInt returns an int setting
func (u *SettingsUsecase) GetInt(ctx context.Context, group, key string) (int, error) {
	v, err := u.GetString(ctx, group, key)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(v)
}

// GetDecimal returns a decimal setting
func (u *SettingsUsecase) GetDecimal(ctx context.Context, group, key string) (decimal.Decimal, error) {
	v, err := u.GetString(ctx, group, key)
	if err != nil {
		return decimal.Zero, err
	}
	return decimal.NewFromString(v)
}

// UpdateGroup validates and saves the submitted values of one page.
// Only keys whose value changed are written and audited.
func (u *SettingsUsecase) UpdateGroup(ctx context.Context, group string, values map[string]string) (map[string]string, error) {
	def, ok := u.byName[group]
	if !ok {
		return nil, domainerrors.NotFound("settings group not found")
	}
	for key := range values {
		if _, known := def.Field(key); !known {
			return nil, domainerrors.BadRequest(fmt.Sprintf("unknown setting %q", key))
		}
	}

	current, err := u.loadStored(ctx, def)
	if err != nil {
		return nil, err
	}

	fieldErrors := map[string]string{}
	changed := map[string]string{}
	before := map[string]string{}
	after := map[string]string{}
	for _, field := range def.Fields {
		submitted, present := values[field.Key]
		if !present {
			continue
		}
		if field.Type == entities.SettingTypeSecret && crypto.IsMasked(submitted) {
			continue
		}
		normalized, msg := u.normalize(field, submitted)
		if msg != "" {
			fieldErrors[field.Key] = msg
			continue
		}

		old := current[field.Key]
		if field.Type == entities.SettingTypeSecret {
			plainOld := ""
			if old != "" {
				if plainOld, err = u.cipher.DecryptString(old); err != nil {
					return nil, err
				}
			}
			if plainOld == normalized {
				continue
			}
			stored := ""
			if normalized != "" {
				if stored, err = u.cipher.EncryptString(normalized); err != nil {
					return nil, err
				}
			}
			changed[field.Key] = stored
			before[field.Key] = crypto.Mask(plainOld)
			after[field.Key] = crypto.Mask(normalized)
			continue
		}
		if old == normalized {
			continue
		}
		changed[field.Key] = normalized
		before[field.Key] = old
		after[field.Key] = normalized
	}
	if len(fieldErrors) > 0 {
		return nil, domainerrors.ValidationFailed(fieldErrors)
	}
	if len(changed) == 0 {
		return u.GetGroup(ctx, group)
	}

	err = u.uow.Do(ctx, func(ctx context.Context) error {
		for _, field := range def.Fields {
			v, ok := changed[field.Key]
			if !ok {
				continue
			}
			if err := u.repo.Upsert(ctx, &entities.Setting{Group: group, Key: field.Key, Value: v}); err != nil {
				return err
			}
		}
		return u.audit.Record(ctx, "settings", entities.AuditActionUpdated, "setting_group", group, before, after)
	})
	if err != nil {
		return nil, err
	}
	invalidate(ctx, u.cache, SettingsCacheKey(group))
	logger.Info(ctx, "Settings updated", zap.String("group", group), zap.Int("changed", len(changed)))

	return u.GetGroup(ctx, group)
}

// normalize validates one submitted value, returning the canonical form or a message
func (u *SettingsUsecase) normalize(field entities.SettingDefinition, value string) (string, string) {
	if field.Type != entities.SettingTypeText && field.Type != entities.SettingTypeSecret {
		value = strings.TrimSpace(value)
	}
	if value == "" {
		if field.Required {
			return "", "is required"
		}
		return "", ""
	}

	switch field.Type {
	case entities.SettingTypeBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return "", "must be true or false"
		}
		return strconv.FormatBool(b), ""
	case entities.SettingTypeInt:
		n, err := strconv.Atoi(value)
		if err != nil {
			return "", "must be a whole number"
		}
		if msg := checkRange(field, float64(n)); msg != "" {
			return "", msg
		}
		return strconv.Itoa(n), ""
	case entities.SettingTypeDecimal:
		d, err := decimal.NewFromString(value)
		if err != nil {
			return "", "must be a number"
		}
		f, _ := d.Float64()
		if msg := checkRange(field, f); msg != "" {
			return "", msg
		}
		return d.String(), ""
	case entities.SettingTypeEmail:
		if u.validate.Var(value, "email") != nil {
			return "", "must be a valid email address"
		}
	case entities.SettingTypeURL:
		if u.validate.Var(value, "url") != nil {
			return "", "must be a valid URL"
		}
	case entities.SettingTypeSelect:
		for _, opt := range field.Options {
			if opt == value {
				return value, ""
			}
		}
		return "", "must be one of " + strings.Join(field.Options, ", ")
	case entities.SettingTypeString:
		if len(value) > 255 {
			return "", "must be at most 255 characters"
		}
	}
	return value, ""
}

func checkRange(field entities.SettingDefinition, v float64) string {
	if field.Min != nil && v < *field.Min {
		return "must be at least " + strconv.FormatFloat(*field.Min, 'f', -1, 64)
	}
	if field.Max != nil && v > *field.Max {
		return "must be at most " + strconv.FormatFloat(*field.Max, 'f', -1, 64)
	}
	return ""
}

// rawValues returns defaults overlaid with stored values, secrets still encrypted.
// The merged map is cached per group.
func (u *SettingsUsecase) rawValues(ctx context.Context, def *entities.SettingGroup) (map[string]string, error) {
	key := SettingsCacheKey(def.Name)
	var out map[string]string
	if readCache(ctx, u.cache, key, &out) {
		return out, nil
	}

	stored, err := u.loadStored(ctx, def)
	if err != nil {
		return nil, err
	}
	out = make(map[string]string, len(def.Fields))
	for _, f := range def.Fields {
		out[f.Key] = f.Default
		if f.Type == entities.SettingTypeSecret {
			out[f.Key] = ""
		}
		if v, ok := stored[f.Key]; ok {
			out[f.Key] = v
		}
	}

	writeCache(ctx, u.cache, key, out, u.cacheTTL)
	return out, nil
}

func (u *SettingsUsecase) loadStored(ctx context.Context, def *entities.SettingGroup) (map[string]string, error) {
	rows, err := u.repo.ListByGroup(ctx, def.Name)
	if err != nil {
		return nil, err
	}
	stored := make(map[string]string, len(rows))
	for _, r := range rows {
		stored[r.Key] = r.Value
	}
	// absent keys fall back to the default for comparisons
	for _, f := range def.Fields {
		if _, ok := stored[f.Key]; !ok && f.Type != entities.SettingTypeSecret {
			stored[f.Key] = f.Default
		}
	}
	return stored, nil
}

func (u *SettingsUsecase) present(def *entities.SettingGroup, raw map[string]string) map[string]string {
	out := make(map[string]string, len(raw))
	for _, f := range def.Fields {
		v := raw[f.Key]
		if f.Type == entities.SettingTypeSecret && v != "" {
			plain, err := u.cipher.DecryptString(v)
			if err != nil {
				v = crypto.MaskedPrefix
			} else {
				v = crypto.Mask(plain)
			}
		}
		out[f.Key] = v
	}
	return out
}
