package usecases

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"shop-admin.backend/internal/domain/entities"
	domainerrors "shop-admin.backend/internal/domain/errors"
	"shop-admin.backend/internal/domain/repositories"
	"shop-admin.backend/pkg/utils"
)

// CmsUsecase manages static storefront pages
type CmsUsecase struct {
	pageRepo repositories.CmsPageRepository
	uow      repositories.UnitOfWork
	audit    *AuditService
	now      func() time.Time
}

// NewCmsUsecase creates a new CMS usecase
func NewCmsUsecase(pageRepo repositories.CmsPageRepository, uow repositories.UnitOfWork, audit *AuditService) *CmsUsecase {
	return &CmsUsecase{pageRepo: pageRepo, uow: uow, audit: audit, now: time.Now}
}

func (u *CmsUsecase) ListPages(ctx context.Context, search string, pagination utils.PaginationParams) ([]*entities.CmsPage, int64, error) {
	return u.pageRepo.List(ctx, search, pagination)
}

func (u *CmsUsecase) GetPage(ctx context.Context, id uuid.UUID) (*entities.CmsPage, error) {
	return u.pageRepo.GetByID(ctx, id)
}

// CreatePage creates a draft page
func (u *CmsUsecase) CreatePage(ctx context.Context, input *entities.CmsPageInput) (*entities.CmsPage, error) {
	page := &entities.CmsPage{Status: entities.PageStatusDraft}
	if err := u.applyInput(ctx, page, input, nil); err != nil {
		return nil, err
	}
	err := u.uow.Do(ctx, func(ctx context.Context) error {
		if err := u.pageRepo.Create(ctx, page); err != nil {
			return err
		}
		return u.audit.Record(ctx, "cms_pages", entities.AuditActionCreated, "cms_page", page.ID.String(), nil, page)
	})
	if err != nil {
		return nil, err
	}
	return page, nil
}

func (u *CmsUsecase) UpdatePage(ctx context.Context, id uuid.UUID, input *entities.CmsPageInput) (*entities.CmsPage, error) {
	page, err := u.pageRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	before := cloneOf(page)
	if err := u.applyInput(ctx, page, input, &id); err != nil {
		return nil, err
	}
	if err := u.save(ctx, entities.AuditActionUpdated, before, page); err != nil {
		return nil, err
	}
	return page, nil
}

func (u *CmsUsecase) DeletePage(ctx context.Context, id uuid.UUID) error {
	page, err := u.pageRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return u.uow.Do(ctx, func(ctx context.Context) error {
		if err := u.pageRepo.Delete(ctx, id); err != nil {
			return err
		}
		return u.audit.Record(ctx, "cms_pages", entities.AuditActionDeleted, "cms_page", id.String(), page, nil)
	})
}

// Publish makes a page visible. Publishing a published page keeps its original date.
func (u *CmsUsecase) Publish(ctx context.Context, id uuid.UUID) (*entities.CmsPage, error) {
	page, err := u.pageRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if page.Status == entities.PageStatusPublished {
		return page, nil
	}
	before := cloneOf(page)
	page.Status = entities.PageStatusPublished
	page.PublishedAt = null.TimeFrom(u.now())
	if err := u.save(ctx, "published", before, page); err != nil {
		return nil, err
	}
	return page, nil
}

// Unpublish returns a page to draft
func (u *CmsUsecase) Unpublish(ctx context.Context, id uuid.UUID) (*entities.CmsPage, error) {
	page, err := u.pageRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if page.Status == entities.PageStatusDraft {
		return page, nil
	}
	before := cloneOf(page)
	page.Status = entities.PageStatusDraft
	page.PublishedAt = null.Time{}
	if err := u.save(ctx, "unpublished", before, page); err != nil {
		return nil, err
	}
	return page, nil
}

func (u *CmsUsecase) save(ctx context.Context, action string, before, page *entities.CmsPage) error {
	return u.uow.Do(ctx, func(ctx context.Context) error {
		if err := u.pageRepo.Update(ctx, page); err != nil {
			return err
		}
		return u.audit.Record(ctx, "cms_pages", action, "cms_page", page.ID.String(), before, page)
	})
}

func (u *CmsUsecase) applyInput(ctx context.Context, p *entities.CmsPage, input *entities.CmsPageInput, excludeID *uuid.UUID) error {
	slug, err := resolveSlug(input.Slug, input.Title)
	if err != nil {
		return err
	}
	taken, err := u.pageRepo.SlugExists(ctx, slug, excludeID)
	if err != nil {
		return err
	}
	if taken {
		return domainerrors.Conflict("slug already in use")
	}
	p.Title = strings.TrimSpace(input.Title)
	p.Slug = slug
	p.Content = input.Content
	p.MetaTitle = input.MetaTitle
	p.MetaDescription = input.MetaDescription
	return nil
}
