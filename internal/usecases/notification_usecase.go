package usecases

import (
	"bytes"
	"context"
	"strings"
	"text/template"

	"github.com/google/uuid"
	"shop-admin.backend/internal/domain/entities"
	domainerrors "shop-admin.backend/internal/domain/errors"
	"shop-admin.backend/internal/domain/repositories"
	"shop-admin.backend/pkg/utils"
)

// NotificationUsecase manages message templates and exposes the delivery log
type NotificationUsecase struct {
	templateRepo repositories.NotificationTemplateRepository
	logRepo      repositories.NotificationLogRepository
	uow          repositories.UnitOfWork
	audit        *AuditService
}

// NewNotificationUsecase creates a new notification usecase
func NewNotificationUsecase(
	templateRepo repositories.NotificationTemplateRepository,
	logRepo repositories.NotificationLogRepository,
	uow repositories.UnitOfWork,
	audit *AuditService,
) *NotificationUsecase {
	return &NotificationUsecase{templateRepo: templateRepo, logRepo: logRepo, uow: uow, audit: audit}
}

func (u *NotificationUsecase) ListTemplates(ctx context.Context, event string, pagination utils.PaginationParams) ([]*entities.NotificationTemplate, int64, error) {
	return u.templateRepo.List(ctx, event, pagination)
}

func (u *NotificationUsecase) GetTemplate(ctx context.Context, id uuid.UUID) (*entities.NotificationTemplate, error) {
	return u.templateRepo.GetByID(ctx, id)
}

func (u *NotificationUsecase) CreateTemplate(ctx context.Context, input *entities.NotificationTemplateInput) (*entities.NotificationTemplate, error) {
	tpl := &entities.NotificationTemplate{IsActive: boolOr(input.IsActive, true)}
	if err := u.applyInput(ctx, tpl, input, nil); err != nil {
		return nil, err
	}
	err := u.uow.Do(ctx, func(ctx context.Context) error {
		if err := u.templateRepo.Create(ctx, tpl); err != nil {
			return err
		}
		return u.audit.Record(ctx, "notification_templates", entities.AuditActionCreated, "notification_template", tpl.ID.String(), nil, tpl)
	})
	if err != nil {
		return nil, err
	}
	return tpl, nil
}

func (u *NotificationUsecase) UpdateTemplate(ctx context.Context, id uuid.UUID, input *entities.NotificationTemplateInput) (*entities.NotificationTemplate, error) {
	tpl, err := u.templateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	before := cloneOf(tpl)
	if err := u.applyInput(ctx, tpl, input, &id); err != nil {
		return nil, err
	}
	tpl.IsActive = boolOr(input.IsActive, tpl.IsActive)
	err = u.uow.Do(ctx, func(ctx context.Context) error {
		if err := u.templateRepo.Update(ctx, tpl); err != nil {
			return err
		}
		return u.audit.Record(ctx, "notification_templates", entities.AuditActionUpdated, "notification_template", id.String(), before, tpl)
	})
	if err != nil {
		return nil, err
	}
	return tpl, nil
}

func (u *NotificationUsecase) DeleteTemplate(ctx context.Context, id uuid.UUID) error {
	tpl, err := u.templateRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return u.uow.Do(ctx, func(ctx context.Context) error {
		if err := u.templateRepo.Delete(ctx, id); err != nil {
			return err
		}
		return u.audit.Record(ctx, "notification_templates", entities.AuditActionDeleted, "notification_template", id.String(), tpl, nil)
	})
}

// Preview renders a template with sample data. Nothing is sent or logged.
func (u *NotificationUsecase) Preview(ctx context.Context, id uuid.UUID, data map[string]interface{}) (*entities.RenderedNotification, error) {
	tpl, err := u.templateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return RenderNotification(tpl, data)
}

// ListLogs lists delivery attempts
func (u *NotificationUsecase) ListLogs(ctx context.Context, filter entities.NotificationLogFilter, pagination utils.PaginationParams) ([]*entities.NotificationLog, int64, error) {
	return u.logRepo.List(ctx, filter, pagination)
}

// RenderNotification executes subject and body against data. A placeholder
// with no value is an error rather than an empty string.
func RenderNotification(tpl *entities.NotificationTemplate, data map[string]interface{}) (*entities.RenderedNotification, error) {
	if data == nil {
		data = map[string]interface{}{}
	}
	subject, err := render("subject", tpl.Subject, data)
	if err != nil {
		return nil, err
	}
	body, err := render("body", tpl.Body, data)
	if err != nil {
		return nil, err
	}
	return &entities.RenderedNotification{Subject: subject, Body: body}, nil
}

func render(name, text string, data map[string]interface{}) (string, error) {
	t, err := parseTemplate(name, text)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", domainerrors.Unprocessable(name+": "+err.Error(), domainerrors.ErrUnprocessable)
	}
	return buf.String(), nil
}

func parseTemplate(name, text string) (*template.Template, error) {
	t, err := template.New(name).Option("missingkey=error").Parse(text)
	if err != nil {
		return nil, domainerrors.ValidationFailed(map[string]string{name: err.Error()})
	}
	return t, nil
}

func (u *NotificationUsecase) applyInput(ctx context.Context, tpl *entities.NotificationTemplate, input *entities.NotificationTemplateInput, excludeID *uuid.UUID) error {
	if !input.Channel.IsValid() {
		return domainerrors.ValidationFailed(map[string]string{"channel": "must be email, sms or push"})
	}
	if input.Channel == entities.ChannelEmail && strings.TrimSpace(input.Subject) == "" {
		return domainerrors.ValidationFailed(map[string]string{"subject": "is required for email templates"})
	}
	if _, err := parseTemplate("subject", input.Subject); err != nil {
		return err
	}
	if _, err := parseTemplate("body", input.Body); err != nil {
		return err
	}
	locale, err := CanonicalLocale(input.Locale)
	if err != nil {
		return err
	}
	event := strings.TrimSpace(input.Event)

	existing, err := u.templateRepo.Find(ctx, event, input.Channel, locale)
	if err != nil && !isNotFound(err) {
		return err
	}
	if existing != nil && (excludeID == nil || existing.ID != *excludeID) {
		return domainerrors.Conflict("a template already exists for this event, channel and locale")
	}

	tpl.Event = event
	tpl.Channel = input.Channel
	tpl.Locale = locale
	tpl.Subject = input.Subject
	tpl.Body = input.Body
	return nil
}
