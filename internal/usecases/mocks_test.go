package usecases_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"shop-admin.backend/internal/domain/entities"
	"shop-admin.backend/pkg/utils"
)

// MockUnitOfWork runs fn inline so repository mocks see the same context
type MockUnitOfWork struct {
	mock.Mock
}

func (m *MockUnitOfWork) Do(ctx context.Context, f func(context.Context) error) error {
	m.Called(ctx, f)
	return f(ctx)
}

type MockAuditLogRepository struct {
	mock.Mock
}

func (m *MockAuditLogRepository) Create(ctx context.Context, entry *entities.AuditLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockAuditLogRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.AuditLog, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.AuditLog), args.Error(1)
}

func (m *MockAuditLogRepository) List(ctx context.Context, filter entities.AuditLogFilter, pagination utils.PaginationParams) ([]*entities.AuditLog, int64, error) {
	args := m.Called(ctx, filter, pagination)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.AuditLog), args.Get(1).(int64), args.Error(2)
}

type MockCacheStore struct {
	mock.Mock
}

func (m *MockCacheStore) Get(ctx context.Context, key string) (value string, found bool, err error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *MockCacheStore) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheStore) Delete(ctx context.Context, keys ...string) error {
	args := m.Called(ctx, keys)
	return args.Error(0)
}

type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *entities.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Category), args.Error(1)
}

func (m *MockCategoryRepository) Update(ctx context.Context, category *entities.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCategoryRepository) List(ctx context.Context, search string, pagination utils.PaginationParams) ([]*entities.Category, int64, error) {
	args := m.Called(ctx, search, pagination)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Category), args.Get(1).(int64), args.Error(2)
}

func (m *MockCategoryRepository) SlugExists(ctx context.Context, slug string, excludeID *uuid.UUID) (bool, error) {
	args := m.Called(ctx, slug, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCategoryRepository) CountChildren(ctx context.Context, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

type MockBrandRepository struct {
	mock.Mock
}

func (m *MockBrandRepository) Create(ctx context.Context, brand *entities.Brand) error {
	args := m.Called(ctx, brand)
	return args.Error(0)
}

func (m *MockBrandRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Brand, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Brand), args.Error(1)
}

func (m *MockBrandRepository) Update(ctx context.Context, brand *entities.Brand) error {
	args := m.Called(ctx, brand)
	return args.Error(0)
}

func (m *MockBrandRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBrandRepository) List(ctx context.Context, search string, pagination utils.PaginationParams) ([]*entities.Brand, int64, error) {
	args := m.Called(ctx, search, pagination)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Brand), args.Get(1).(int64), args.Error(2)
}

func (m *MockBrandRepository) SlugExists(ctx context.Context, slug string, excludeID *uuid.UUID) (bool, error) {
	args := m.Called(ctx, slug, excludeID)
	return args.Bool(0), args.Error(1)
}

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(ctx context.Context, product *entities.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Product), args.Error(1)
}

func (m *MockProductRepository) Update(ctx context.Context, product *entities.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductRepository) List(ctx context.Context, filter entities.ProductFilter, pagination utils.PaginationParams) ([]*entities.Product, int64, error) {
	args := m.Called(ctx, filter, pagination)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Product), args.Get(1).(int64), args.Error(2)
}

func (m *MockProductRepository) SlugExists(ctx context.Context, slug string, excludeID *uuid.UUID) (bool, error) {
	args := m.Called(ctx, slug, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockProductRepository) SKUExists(ctx context.Context, sku string, excludeID *uuid.UUID) (bool, error) {
	args := m.Called(ctx, sku, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockProductRepository) CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) CountByBrand(ctx context.Context, brandID uuid.UUID) (int64, error) {
	args := m.Called(ctx, brandID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) AdjustStock(ctx context.Context, id uuid.UUID, delta int) (int, error) {
	args := m.Called(ctx, id, delta)
	return args.Int(0), args.Error(1)
}

type MockStockRepository struct {
	mock.Mock
}

func (m *MockStockRepository) CreateAdjustment(ctx context.Context, adjustment *entities.StockAdjustment) error {
	args := m.Called(ctx, adjustment)
	return args.Error(0)
}

func (m *MockStockRepository) CreateLedger(ctx context.Context, entry *entities.StockLedger) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockStockRepository) ListLedger(ctx context.Context, productID uuid.UUID, pagination utils.PaginationParams) ([]*entities.StockLedger, int64, error) {
	args := m.Called(ctx, productID, pagination)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.StockLedger), args.Get(1).(int64), args.Error(2)
}

type MockDashboardRepository struct {
	mock.Mock
}

func (m *MockDashboardRepository) Summary(ctx context.Context, r entities.DateRange) (*entities.DashboardSummary, error) {
	args := m.Called(ctx, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.DashboardSummary), args.Error(1)
}

func (m *MockDashboardRepository) OrdersByStatus(ctx context.Context) ([]entities.StatusCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.StatusCount), args.Error(1)
}

func (m *MockDashboardRepository) TopProducts(ctx context.Context, r entities.DateRange, limit int) ([]entities.TopProduct, error) {
	args := m.Called(ctx, r, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.TopProduct), args.Error(1)
}

func (m *MockDashboardRepository) LowStock(ctx context.Context, threshold, limit int) ([]entities.LowStockItem, error) {
	args := m.Called(ctx, threshold, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.LowStockItem), args.Error(1)
}

func (m *MockDashboardRepository) SalesByDay(ctx context.Context, r entities.DateRange) ([]entities.DailySales, error) {
	args := m.Called(ctx, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.DailySales), args.Error(1)
}

type MockCurrencyRepository struct {
	mock.Mock
}

func (m *MockCurrencyRepository) Create(ctx context.Context, currency *entities.Currency) error {
	args := m.Called(ctx, currency)
	return args.Error(0)
}

func (m *MockCurrencyRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Currency, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) GetByCode(ctx context.Context, code string) (*entities.Currency, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) GetDefault(ctx context.Context) (*entities.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) Update(ctx context.Context, currency *entities.Currency) error {
	args := m.Called(ctx, currency)
	return args.Error(0)
}

func (m *MockCurrencyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCurrencyRepository) List(ctx context.Context) ([]*entities.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCurrencyRepository) ClearDefault(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockLanguageRepository struct {
	mock.Mock
}

func (m *MockLanguageRepository) Create(ctx context.Context, language *entities.Language) error {
	args := m.Called(ctx, language)
	return args.Error(0)
}

func (m *MockLanguageRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Language, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Language), args.Error(1)
}

func (m *MockLanguageRepository) GetByCode(ctx context.Context, code string) (*entities.Language, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Language), args.Error(1)
}

func (m *MockLanguageRepository) GetDefault(ctx context.Context) (*entities.Language, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Language), args.Error(1)
}

func (m *MockLanguageRepository) Update(ctx context.Context, language *entities.Language) error {
	args := m.Called(ctx, language)
	return args.Error(0)
}

func (m *MockLanguageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLanguageRepository) List(ctx context.Context) ([]*entities.Language, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Language), args.Error(1)
}

func (m *MockLanguageRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLanguageRepository) ClearDefault(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockTranslationRepository struct {
	mock.Mock
}

func (m *MockTranslationRepository) Create(ctx context.Context, translation *entities.Translation) error {
	args := m.Called(ctx, translation)
	return args.Error(0)
}

func (m *MockTranslationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Translation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Translation), args.Error(1)
}

func (m *MockTranslationRepository) GetByKey(ctx context.Context, group, key, locale string) (*entities.Translation, error) {
	args := m.Called(ctx, group, key, locale)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Translation), args.Error(1)
}

func (m *MockTranslationRepository) Update(ctx context.Context, translation *entities.Translation) error {
	args := m.Called(ctx, translation)
	return args.Error(0)
}

func (m *MockTranslationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTranslationRepository) List(ctx context.Context, filter entities.TranslationFilter, pagination utils.PaginationParams) ([]*entities.Translation, int64, error) {
	args := m.Called(ctx, filter, pagination)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Translation), args.Get(1).(int64), args.Error(2)
}

func (m *MockTranslationRepository) ListByLocale(ctx context.Context, locale string) ([]*entities.Translation, error) {
	args := m.Called(ctx, locale)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Translation), args.Error(1)
}

type MockCmsPageRepository struct {
	mock.Mock
}

func (m *MockCmsPageRepository) Create(ctx context.Context, page *entities.CmsPage) error {
	args := m.Called(ctx, page)
	return args.Error(0)
}

func (m *MockCmsPageRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.CmsPage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.CmsPage), args.Error(1)
}

func (m *MockCmsPageRepository) Update(ctx context.Context, page *entities.CmsPage) error {
	args := m.Called(ctx, page)
	return args.Error(0)
}

func (m *MockCmsPageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCmsPageRepository) List(ctx context.Context, search string, pagination utils.PaginationParams) ([]*entities.CmsPage, int64, error) {
	args := m.Called(ctx, search, pagination)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.CmsPage), args.Get(1).(int64), args.Error(2)
}

func (m *MockCmsPageRepository) SlugExists(ctx context.Context, slug string, excludeID *uuid.UUID) (bool, error) {
	args := m.Called(ctx, slug, excludeID)
	return args.Bool(0), args.Error(1)
}

type MockNotificationTemplateRepository struct {
	mock.Mock
}

func (m *MockNotificationTemplateRepository) Create(ctx context.Context, template *entities.NotificationTemplate) error {
	args := m.Called(ctx, template)
	return args.Error(0)
}

func (m *MockNotificationTemplateRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.NotificationTemplate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.NotificationTemplate), args.Error(1)
}

func (m *MockNotificationTemplateRepository) Find(ctx context.Context, event string, channel entities.NotificationChannel, locale string) (*entities.NotificationTemplate, error) {
	args := m.Called(ctx, event, channel, locale)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.NotificationTemplate), args.Error(1)
}

func (m *MockNotificationTemplateRepository) Update(ctx context.Context, template *entities.NotificationTemplate) error {
	args := m.Called(ctx, template)
	return args.Error(0)
}

func (m *MockNotificationTemplateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockNotificationTemplateRepository) List(ctx context.Context, event string, pagination utils.PaginationParams) ([]*entities.NotificationTemplate, int64, error) {
	args := m.Called(ctx, event, pagination)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.NotificationTemplate), args.Get(1).(int64), args.Error(2)
}

type MockNotificationLogRepository struct {
	mock.Mock
}

func (m *MockNotificationLogRepository) Create(ctx context.Context, log *entities.NotificationLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *MockNotificationLogRepository) List(ctx context.Context, filter entities.NotificationLogFilter, pagination utils.PaginationParams) ([]*entities.NotificationLog, int64, error) {
	args := m.Called(ctx, filter, pagination)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.NotificationLog), args.Get(1).(int64), args.Error(2)
}

type MockProviderRepository struct {
	mock.Mock
}

func (m *MockProviderRepository) Create(ctx context.Context, provider *entities.Provider) error {
	args := m.Called(ctx, provider)
	return args.Error(0)
}

func (m *MockProviderRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Provider, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Provider), args.Error(1)
}

func (m *MockProviderRepository) GetByTypeAndCode(ctx context.Context, providerType entities.ProviderType, code string) (*entities.Provider, error) {
	args := m.Called(ctx, providerType, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Provider), args.Error(1)
}

func (m *MockProviderRepository) Update(ctx context.Context, provider *entities.Provider) error {
	args := m.Called(ctx, provider)
	return args.Error(0)
}

func (m *MockProviderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProviderRepository) List(ctx context.Context, providerType entities.ProviderType, pagination utils.PaginationParams) ([]*entities.Provider, int64, error) {
	args := m.Called(ctx, providerType, pagination)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Provider), args.Get(1).(int64), args.Error(2)
}

func (m *MockProviderRepository) ListSecrets(ctx context.Context, providerID uuid.UUID) ([]*entities.ProviderSecret, error) {
	args := m.Called(ctx, providerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.ProviderSecret), args.Error(1)
}

func (m *MockProviderRepository) UpsertSecret(ctx context.Context, secret *entities.ProviderSecret) error {
	args := m.Called(ctx, secret)
	return args.Error(0)
}

func (m *MockProviderRepository) DeleteSecret(ctx context.Context, providerID uuid.UUID, key string) error {
	args := m.Called(ctx, providerID, key)
	return args.Error(0)
}

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Order), args.Error(1)
}

func (m *MockOrderRepository) List(ctx context.Context, filter entities.OrderFilter, pagination utils.PaginationParams) ([]*entities.Order, int64, error) {
	args := m.Called(ctx, filter, pagination)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Order), args.Get(1).(int64), args.Error(2)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, order *entities.Order, from entities.OrderStatus) error {
	args := m.Called(ctx, order, from)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status entities.PaymentStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockOrderRepository) ListItems(ctx context.Context, orderID uuid.UUID) ([]*entities.OrderItem, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.OrderItem), args.Error(1)
}

func (m *MockOrderRepository) ListPayments(ctx context.Context, orderID uuid.UUID) ([]*entities.Payment, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Payment), args.Error(1)
}

func (m *MockOrderRepository) AddHistory(ctx context.Context, entry *entities.OrderStatusHistory) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockOrderRepository) ListHistory(ctx context.Context, orderID uuid.UUID) ([]*entities.OrderStatusHistory, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.OrderStatusHistory), args.Error(1)
}

type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) Create(ctx context.Context, invoice *entities.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) GetIssuedByOrder(ctx context.Context, orderID uuid.UUID) (*entities.Invoice, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) Update(ctx context.Context, invoice *entities.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) List(ctx context.Context, orderID *uuid.UUID, pagination utils.PaginationParams) ([]*entities.Invoice, int64, error) {
	args := m.Called(ctx, orderID, pagination)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Invoice), args.Get(1).(int64), args.Error(2)
}

func (m *MockInvoiceRepository) LastNumberWithPrefix(ctx context.Context, prefix string) (string, error) {
	args := m.Called(ctx, prefix)
	return args.String(0), args.Error(1)
}

type MockRefundRepository struct {
	mock.Mock
}

func (m *MockRefundRepository) Create(ctx context.Context, refund *entities.Refund) error {
	args := m.Called(ctx, refund)
	return args.Error(0)
}

func (m *MockRefundRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Refund, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Refund), args.Error(1)
}

func (m *MockRefundRepository) Update(ctx context.Context, refund *entities.Refund) error {
	args := m.Called(ctx, refund)
	return args.Error(0)
}

func (m *MockRefundRepository) List(ctx context.Context, filter entities.RefundFilter, pagination utils.PaginationParams) ([]*entities.Refund, int64, error) {
	args := m.Called(ctx, filter, pagination)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Refund), args.Get(1).(int64), args.Error(2)
}

func (m *MockRefundRepository) ListByOrder(ctx context.Context, orderID uuid.UUID) ([]*entities.Refund, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Refund), args.Error(1)
}

func (m *MockRefundRepository) SumByOrder(ctx context.Context, orderID uuid.UUID, statuses ...entities.RefundStatus) (decimal.Decimal, error) {
	args := m.Called(ctx, orderID, statuses)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

type MockWalletRepository struct {
	mock.Mock
}

func (m *MockWalletRepository) Create(ctx context.Context, wallet *entities.Wallet) error {
	args := m.Called(ctx, wallet)
	return args.Error(0)
}

func (m *MockWalletRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Wallet, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Wallet), args.Error(1)
}

func (m *MockWalletRepository) GetByUserAndCurrency(ctx context.Context, userID uuid.UUID, currency string) (*entities.Wallet, error) {
	args := m.Called(ctx, userID, currency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Wallet), args.Error(1)
}

func (m *MockWalletRepository) UpdateBalance(ctx context.Context, id uuid.UUID, balance decimal.Decimal) error {
	args := m.Called(ctx, id, balance)
	return args.Error(0)
}

func (m *MockWalletRepository) List(ctx context.Context, userID *uuid.UUID, pagination utils.PaginationParams) ([]*entities.Wallet, int64, error) {
	args := m.Called(ctx, userID, pagination)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Wallet), args.Get(1).(int64), args.Error(2)
}

func (m *MockWalletRepository) CreateTransaction(ctx context.Context, tx *entities.WalletTransaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockWalletRepository) ListTransactions(ctx context.Context, walletID uuid.UUID, pagination utils.PaginationParams) ([]*entities.WalletTransaction, int64, error) {
	args := m.Called(ctx, walletID, pagination)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.WalletTransaction), args.Get(1).(int64), args.Error(2)
}

type MockCouponRepository struct {
	mock.Mock
}

func (m *MockCouponRepository) Create(ctx context.Context, coupon *entities.Coupon) error {
	args := m.Called(ctx, coupon)
	return args.Error(0)
}

func (m *MockCouponRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Coupon, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Coupon), args.Error(1)
}

func (m *MockCouponRepository) GetByCode(ctx context.Context, code string) (*entities.Coupon, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Coupon), args.Error(1)
}

func (m *MockCouponRepository) Update(ctx context.Context, coupon *entities.Coupon) error {
	args := m.Called(ctx, coupon)
	return args.Error(0)
}

func (m *MockCouponRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCouponRepository) List(ctx context.Context, search string, pagination utils.PaginationParams) ([]*entities.Coupon, int64, error) {
	args := m.Called(ctx, search, pagination)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Coupon), args.Get(1).(int64), args.Error(2)
}

func (m *MockCouponRepository) ListUsages(ctx context.Context, couponID uuid.UUID, pagination utils.PaginationParams) ([]*entities.CouponUsage, int64, error) {
	args := m.Called(ctx, couponID, pagination)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.CouponUsage), args.Get(1).(int64), args.Error(2)
}

func (m *MockCouponRepository) CountUsagesByUser(ctx context.Context, couponID, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, couponID, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCouponRepository) DeactivateExpired(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

type MockDealRepository struct {
	mock.Mock
}

func (m *MockDealRepository) Create(ctx context.Context, deal *entities.Deal) error {
	args := m.Called(ctx, deal)
	return args.Error(0)
}

func (m *MockDealRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Deal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Deal), args.Error(1)
}

func (m *MockDealRepository) Update(ctx context.Context, deal *entities.Deal) error {
	args := m.Called(ctx, deal)
	return args.Error(0)
}

func (m *MockDealRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDealRepository) List(ctx context.Context, filter entities.DealFilter, pagination utils.PaginationParams) ([]*entities.Deal, int64, error) {
	args := m.Called(ctx, filter, pagination)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Deal), args.Get(1).(int64), args.Error(2)
}

func (m *MockDealRepository) ListLiveForProduct(ctx context.Context, productID uuid.UUID, now time.Time) ([]*entities.Deal, error) {
	args := m.Called(ctx, productID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Deal), args.Error(1)
}

func (m *MockDealRepository) DeactivateEnded(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

type MockSettingRepository struct {
	mock.Mock
}

func (m *MockSettingRepository) ListByGroup(ctx context.Context, group string) ([]*entities.Setting, error) {
	args := m.Called(ctx, group)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Setting), args.Error(1)
}

func (m *MockSettingRepository) Upsert(ctx context.Context, setting *entities.Setting) error {
	args := m.Called(ctx, setting)
	return args.Error(0)
}

type MockTaxRateRepository struct {
	mock.Mock
}

func (m *MockTaxRateRepository) Create(ctx context.Context, rate *entities.TaxRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

func (m *MockTaxRateRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.TaxRate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.TaxRate), args.Error(1)
}

func (m *MockTaxRateRepository) Update(ctx context.Context, rate *entities.TaxRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

func (m *MockTaxRateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTaxRateRepository) List(ctx context.Context, pagination utils.PaginationParams) ([]*entities.TaxRate, int64, error) {
	args := m.Called(ctx, pagination)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.TaxRate), args.Get(1).(int64), args.Error(2)
}

func (m *MockTaxRateRepository) CountRules(ctx context.Context, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

type MockTaxRuleRepository struct {
	mock.Mock
}

func (m *MockTaxRuleRepository) Create(ctx context.Context, rule *entities.TaxRule) error {
	args := m.Called(ctx, rule)
	return args.Error(0)
}

func (m *MockTaxRuleRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.TaxRule, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.TaxRule), args.Error(1)
}

func (m *MockTaxRuleRepository) Update(ctx context.Context, rule *entities.TaxRule) error {
	args := m.Called(ctx, rule)
	return args.Error(0)
}

func (m *MockTaxRuleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTaxRuleRepository) List(ctx context.Context, pagination utils.PaginationParams) ([]*entities.TaxRule, int64, error) {
	args := m.Called(ctx, pagination)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.TaxRule), args.Get(1).(int64), args.Error(2)
}

func (m *MockTaxRuleRepository) ListActive(ctx context.Context) ([]*entities.TaxRule, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.TaxRule), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) List(ctx context.Context, search string, pagination utils.PaginationParams) ([]*entities.User, int64, error) {
	args := m.Called(ctx, search, pagination)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.User), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserRepository) CountActiveByRole(ctx context.Context, roleID uuid.UUID) (int64, error) {
	args := m.Called(ctx, roleID)
	return args.Get(0).(int64), args.Error(1)
}

type MockRoleRepository struct {
	mock.Mock
}

func (m *MockRoleRepository) Create(ctx context.Context, role *entities.Role) error {
	args := m.Called(ctx, role)
	return args.Error(0)
}

func (m *MockRoleRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Role, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Role), args.Error(1)
}

func (m *MockRoleRepository) GetByName(ctx context.Context, name string) (*entities.Role, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Role), args.Error(1)
}

func (m *MockRoleRepository) Update(ctx context.Context, role *entities.Role) error {
	args := m.Called(ctx, role)
	return args.Error(0)
}

func (m *MockRoleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRoleRepository) List(ctx context.Context) ([]*entities.Role, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Role), args.Error(1)
}

func (m *MockRoleRepository) SetPermissions(ctx context.Context, roleID uuid.UUID, permissionIDs []uuid.UUID) error {
	args := m.Called(ctx, roleID, permissionIDs)
	return args.Error(0)
}

func (m *MockRoleRepository) CountUsers(ctx context.Context, roleID uuid.UUID) (int64, error) {
	args := m.Called(ctx, roleID)
	return args.Get(0).(int64), args.Error(1)
}

type MockPermissionRepository struct {
	mock.Mock
}

func (m *MockPermissionRepository) List(ctx context.Context) ([]*entities.Permission, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Permission), args.Error(1)
}

func (m *MockPermissionRepository) GetByNames(ctx context.Context, names []string) ([]*entities.Permission, error) {
	args := m.Called(ctx, names)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Permission), args.Error(1)
}

func (m *MockPermissionRepository) ListNamesByRole(ctx context.Context, roleName string) ([]string, error) {
	args := m.Called(ctx, roleName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockPermissionRepository) Upsert(ctx context.Context, permission *entities.Permission) error {
	args := m.Called(ctx, permission)
	return args.Error(0)
}
