package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// PageStatus is the publication state of a CMS page
type PageStatus string

const (
	PageStatusDraft     PageStatus = "draft"
	PageStatusPublished PageStatus = "published"
)

// CmsPage is a static storefront page
type CmsPage struct {
	ID              uuid.UUID  `json:"id"`
	Title           string     `json:"title"`
	Slug            string     `json:"slug"`
	Content         string     `json:"content"`
	MetaTitle       string     `json:"metaTitle"`
	MetaDescription string     `json:"metaDescription"`
	Status          PageStatus `json:"status"`
	PublishedAt     null.Time  `json:"publishedAt"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// CmsPageInput represents input for creating or updating a page
type CmsPageInput struct {
	Title           string `json:"title" binding:"required,max=255"`
	Slug            string `json:"slug"`
	Content         string `json:"content"`
	MetaTitle       string `json:"metaTitle" binding:"max=255"`
	MetaDescription string `json:"metaDescription" binding:"max=500"`
}
