package usecases

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"
	"shop-admin.backend/internal/domain/entities"
	domainerrors "shop-admin.backend/internal/domain/errors"
	"shop-admin.backend/internal/domain/repositories"
	"shop-admin.backend/pkg/crypto"
	"shop-admin.backend/pkg/logger"
	"shop-admin.backend/pkg/utils"
)

// requiredCredentials lists the secrets a provider needs before it can be enabled
var requiredCredentials = map[string][]string{
	"stripe": {"publishable_key", "secret_key"},
	"paypal": {"client_id", "client_secret"},
	"dhl":    {"api_key", "account_number"},
	"fedex":  {"api_key", "account_number"},
	"twilio": {"account_sid", "auth_token"},
	"smtp":   {"host", "username", "password"},
	"fcm":    {"server_key"},
}

// RequiredCredentials returns the secret keys a provider code needs
func RequiredCredentials(code string) []string {
	return requiredCredentials[strings.ToLower(code)]
}

// ProviderUsecase manages third-party integrations and their encrypted credentials
type ProviderUsecase struct {
	providerRepo repositories.ProviderRepository
	logRepo      repositories.NotificationLogRepository
	uow          repositories.UnitOfWork
	audit        *AuditService
	cipher       *crypto.Cipher
	now          func() time.Time
}

// NewProviderUsecase creates a new provider usecase
func NewProviderUsecase(
	providerRepo repositories.ProviderRepository,
	logRepo repositories.NotificationLogRepository,
	uow repositories.UnitOfWork,
	audit *AuditService,
	cipher *crypto.Cipher,
) *ProviderUsecase {
	return &ProviderUsecase{
		providerRepo: providerRepo,
		logRepo:      logRepo,
		uow:          uow,
		audit:        audit,
		cipher:       cipher,
		now:          time.Now,
	}
}

func (u *ProviderUsecase) ListProviders(ctx context.Context, providerType entities.ProviderType, pagination utils.PaginationParams) ([]*entities.Provider, int64, error) {
	return u.providerRepo.List(ctx, providerType, pagination)
}

// GetProvider returns a provider with its secrets masked
func (u *ProviderUsecase) GetProvider(ctx context.Context, id uuid.UUID) (*entities.Provider, error) {
	p, err := u.providerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := u.attachMasked(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// CreateProvider registers a disabled provider
func (u *ProviderUsecase) CreateProvider(ctx context.Context, input *entities.ProviderInput) (*entities.Provider, error) {
	p := &entities.Provider{}
	if err := u.applyInput(ctx, p, input, nil); err != nil {
		return nil, err
	}
	err := u.uow.Do(ctx, func(ctx context.Context) error {
		if err := u.providerRepo.Create(ctx, p); err != nil {
			return err
		}
		return u.audit.Record(ctx, "providers", entities.AuditActionCreated, "provider", p.ID.String(), nil, p)
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (u *ProviderUsecase) UpdateProvider(ctx context.Context, id uuid.UUID, input *entities.ProviderInput) (*entities.Provider, error) {
	p, err := u.providerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	before := cloneOf(p)
	if err := u.applyInput(ctx, p, input, &id); err != nil {
		return nil, err
	}
	if err := u.save(ctx, entities.AuditActionUpdated, before, p); err != nil {
		return nil, err
	}
	return p, nil
}

// DeleteProvider removes a provider and its credentials
func (u *ProviderUsecase) DeleteProvider(ctx context.Context, id uuid.UUID) error {
	p, err := u.providerRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return u.uow.Do(ctx, func(ctx context.Context) error {
		if err := u.providerRepo.Delete(ctx, id); err != nil {
			return err
		}
		return u.audit.Record(ctx, "providers", entities.AuditActionDeleted, "provider", id.String(), p, nil)
	})
}

// PutSecrets stores credentials encrypted. An empty value deletes the key and
// a value still in masked form leaves it unchanged. An enabled provider must
// keep every required credential, otherwise nothing is saved.
func (u *ProviderUsecase) PutSecrets(ctx context.Context, id uuid.UUID, values map[string]string) (*entities.Provider, error) {
	p, err := u.providerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	before, err := u.maskedSecrets(ctx, p.ID)
	if err != nil {
		return nil, err
	}

	err = u.uow.Do(ctx, func(ctx context.Context) error {
		for key, value := range values {
			key = strings.TrimSpace(key)
			if key == "" {
				return domainerrors.BadRequest("secret key must not be empty")
			}
			switch {
			case value == "":
				if err := u.providerRepo.DeleteSecret(ctx, p.ID, key); err != nil && !isNotFound(err) {
					return err
				}
			case crypto.IsMasked(value):
				continue
			default:
				enc, err := u.cipher.EncryptString(value)
				if err != nil {
					return err
				}
				if err := u.providerRepo.UpsertSecret(ctx, &entities.ProviderSecret{ProviderID: p.ID, Key: key, ValueEncrypted: enc}); err != nil {
					return err
				}
			}
		}
		if p.IsEnabled {
			problem, err := u.checkCredentials(ctx, p)
			if err != nil {
				return err
			}
			if problem != "" {
				return domainerrors.Unprocessable("provider is enabled, "+problem, domainerrors.ErrMissingCredentials)
			}
		}
		after, err := u.maskedSecrets(ctx, p.ID)
		if err != nil {
			return err
		}
		p.Secrets = after
		return u.audit.Record(ctx, "providers", "secrets_updated", "provider", p.ID.String(), before, after)
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Enable turns a provider on once every required credential is stored
func (u *ProviderUsecase) Enable(ctx context.Context, id uuid.UUID) (*entities.Provider, error) {
	p, err := u.providerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.IsEnabled {
		return p, nil
	}
	if problem, err := u.checkCredentials(ctx, p); err != nil {
		return nil, err
	} else if problem != "" {
		return nil, domainerrors.Unprocessable(problem, domainerrors.ErrMissingCredentials)
	}
	before := cloneOf(p)
	p.IsEnabled = true
	if err := u.save(ctx, "enabled", before, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (u *ProviderUsecase) Disable(ctx context.Context, id uuid.UUID) (*entities.Provider, error) {
	p, err := u.providerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !p.IsEnabled {
		return p, nil
	}
	before := cloneOf(p)
	p.IsEnabled = false
	if err := u.save(ctx, "disabled", before, p); err != nil {
		return nil, err
	}
	return p, nil
}

// TestConnection checks that the provider's credentials are present and
// readable. A failed check is reported in the result, not as an error.
func (u *ProviderUsecase) TestConnection(ctx context.Context, id uuid.UUID) (*entities.ProviderTestResult, error) {
	p, err := u.providerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	result := &entities.ProviderTestResult{Success: true, Message: "Connection settings look valid", TestedAt: u.now()}
	problem, err := u.checkCredentials(ctx, p)
	if err != nil {
		logger.Error(ctx, "Provider credential check failed", zap.String("provider_id", id.String()), zap.Error(err))
		problem = "credentials could not be read"
	}
	if problem != "" {
		result.Success = false
		result.Message = problem
	}

	status := entities.ProviderTestSuccess
	notificationStatus := entities.NotificationSent
	if !result.Success {
		status = entities.ProviderTestFailed
		notificationStatus = entities.NotificationFailed
	}

	before := cloneOf(p)
	p.LastTestedAt = null.TimeFrom(result.TestedAt)
	p.LastTestStatus = null.StringFrom(status)
	err = u.uow.Do(ctx, func(ctx context.Context) error {
		if err := u.providerRepo.Update(ctx, p); err != nil {
			return err
		}
		if channel, ok := p.Type.Channel(); ok {
			entry := &entities.NotificationLog{
				Channel:   channel,
				Recipient: p.Code,
				Subject:   "Connection test",
				Status:    notificationStatus,
				SentAt:    result.TestedAt,
			}
			if !result.Success {
				entry.Error = result.Message
			}
			if err := u.logRepo.Create(ctx, entry); err != nil {
				return err
			}
		}
		return u.audit.Record(ctx, "providers", "tested", "provider", p.ID.String(), before, p)
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "Provider connection tested",
		zap.String("provider", p.Code),
		zap.Bool("success", result.Success),
	)
	return result, nil
}

// checkCredentials returns a human readable problem, or "" when every
// required secret is stored and decrypts to a non-empty value
func (u *ProviderUsecase) checkCredentials(ctx context.Context, p *entities.Provider) (string, error) {
	secrets, err := u.providerRepo.ListSecrets(ctx, p.ID)
	if err != nil {
		return "", err
	}
	stored := make(map[string]string, len(secrets))
	for _, s := range secrets {
		stored[s.Key] = s.ValueEncrypted
	}

	var missing, unreadable []string
	for _, key := range RequiredCredentials(p.Code) {
		enc, ok := stored[key]
		if !ok {
			missing = append(missing, key)
			continue
		}
		if plain, err := u.cipher.DecryptString(enc); err != nil || plain == "" {
			unreadable = append(unreadable, key)
		}
	}
	switch {
	case len(missing) > 0:
		return "missing credentials: " + strings.Join(missing, ", "), nil
	case len(unreadable) > 0:
		return "unreadable credentials: " + strings.Join(unreadable, ", "), nil
	}
	return "", nil
}

func (u *ProviderUsecase) maskedSecrets(ctx context.Context, providerID uuid.UUID) (map[string]string, error) {
	secrets, err := u.providerRepo.ListSecrets(ctx, providerID)
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, len(secrets))
	for _, s := range secrets {
		plain, err := u.cipher.DecryptString(s.ValueEncrypted)
		if err != nil {
			out[s.Key] = crypto.MaskedPrefix
			continue
		}
		out[s.Key] = crypto.Mask(plain)
	}
	return out, nil
}

func (u *ProviderUsecase) attachMasked(ctx context.Context, p *entities.Provider) error {
	masked, err := u.maskedSecrets(ctx, p.ID)
	if err != nil {
		return err
	}
	p.Secrets = masked
	return nil
}

func (u *ProviderUsecase) save(ctx context.Context, action string, before, p *entities.Provider) error {
	return u.uow.Do(ctx, func(ctx context.Context) error {
		if err := u.providerRepo.Update(ctx, p); err != nil {
			return err
		}
		return u.audit.Record(ctx, "providers", action, "provider", p.ID.String(), before, p)
	})
}

func (u *ProviderUsecase) applyInput(ctx context.Context, p *entities.Provider, input *entities.ProviderInput, excludeID *uuid.UUID) error {
	code := strings.ToLower(strings.TrimSpace(input.Code))
	env := input.Environment
	if env == "" {
		env = entities.EnvironmentSandbox
	}
	fields := map[string]string{}
	if !input.Type.IsValid() {
		fields["type"] = "must be payment, shipping, sms, email or push"
	}
	if !utils.IsSlug(code) {
		fields["code"] = "must contain only lowercase letters, digits and dashes"
	}
	if env != entities.EnvironmentSandbox && env != entities.EnvironmentProduction {
		fields["environment"] = "must be sandbox or production"
	}
	if len(fields) > 0 {
		return domainerrors.ValidationFailed(fields)
	}

	existing, err := u.providerRepo.GetByTypeAndCode(ctx, input.Type, code)
	if err != nil && !isNotFound(err) {
		return err
	}
	if existing != nil && (excludeID == nil || existing.ID != *excludeID) {
		return domainerrors.Conflict(fmt.Sprintf("%s provider %q already exists", input.Type, code))
	}

	p.Type = input.Type
	p.Code = code
	p.Name = strings.TrimSpace(input.Name)
	p.Environment = env
	p.Config = input.Config
	return nil
}
