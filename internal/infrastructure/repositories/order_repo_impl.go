package repositories

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"shop-admin.backend/internal/domain/entities"
	"shop-admin.backend/internal/infrastructure/models"
	"shop-admin.backend/pkg/utils"
)

// OrderRepository implements order data operations. Orders are created by
// checkout; the back-office only changes status and payment status.
type OrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// GetByID gets an order by ID, locked when called inside a transaction
func (r *OrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Order, error) {
	var m models.Order
	if err := lockForUpdate(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return orderToEntity(&m), nil
}

// List lists orders newest first
func (r *OrderRepository) List(ctx context.Context, filter entities.OrderFilter, pagination utils.PaginationParams) ([]*entities.Order, int64, error) {
	query := GetDB(ctx, r.db).Model(&models.Order{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.PaymentStatus != "" {
		query = query.Where("payment_status = ?", filter.PaymentStatus)
	}
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if strings.TrimSpace(filter.Search) != "" {
		term := likeTerm(filter.Search)
		query = query.Where("LOWER(number) LIKE ? OR LOWER(shipping_name) LIKE ?", term, term)
	}
	if filter.From != nil {
		query = query.Where("created_at >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("created_at < ?", *filter.To)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var ms []models.Order
	if err := paginate(query.Order("created_at DESC"), pagination).Find(&ms).Error; err != nil {
		return nil, 0, err
	}
	items := make([]*entities.Order, 0, len(ms))
	for i := range ms {
		items = append(items, orderToEntity(&ms[i]))
	}
	return items, total, nil
}

// UpdateStatus persists status, tracking and the lifecycle timestamps of an
// order still in status from. A missing order is ErrNotFound; an order moved
// by someone else in the meantime is ErrInvalidTransition.
func (r *OrderRepository) UpdateStatus(ctx context.Context, o *entities.Order, from entities.OrderStatus) error {
	o.UpdatedAt = time.Now()
	result := GetDB(ctx, r.db).Model(&models.Order{}).Where("id = ? AND status = ?", o.ID, string(from)).Updates(map[string]interface{}{
		"status":          string(o.Status),
		"tracking_number": o.TrackingNumber.Ptr(),
		"shipped_at":      o.ShippedAt.Ptr(),
		"delivered_at":    o.DeliveredAt.Ptr(),
		"cancelled_at":    o.CancelledAt.Ptr(),
		"updated_at":      o.UpdatedAt,
	})
	return checkTransition(ctx, r.db, &models.Order{}, o.ID, result)
}

// UpdatePaymentStatus sets the payment status
func (r *OrderRepository) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status entities.PaymentStatus) error {
	return checkAffected(GetDB(ctx, r.db).Model(&models.Order{}).Where("id = ?", id).Updates(map[string]interface{}{
		"payment_status": string(status),
		"updated_at":     time.Now(),
	}))
}

// ListItems returns the lines of an order
func (r *OrderRepository) ListItems(ctx context.Context, orderID uuid.UUID) ([]*entities.OrderItem, error) {
	var ms []models.OrderItem
	if err := GetDB(ctx, r.db).Where("order_id = ?", orderID).Order("product_name").Find(&ms).Error; err != nil {
		return nil, err
	}
	items := make([]*entities.OrderItem, 0, len(ms))
	for _, m := range ms {
		items = append(items, &entities.OrderItem{
			ID:          m.ID,
			OrderID:     m.OrderID,
			ProductID:   m.ProductID,
			ProductName: m.ProductName,
			SKU:         m.SKU,
			UnitPrice:   m.UnitPrice,
			Quantity:    m.Quantity,
			Total:       m.Total,
		})
	}
	return items, nil
}

// ListPayments returns payments of an order
func (r *OrderRepository) ListPayments(ctx context.Context, orderID uuid.UUID) ([]*entities.Payment, error) {
	var ms []models.Payment
	if err := GetDB(ctx, r.db).Where("order_id = ?", orderID).Order("created_at").Find(&ms).Error; err != nil {
		return nil, err
	}
	items := make([]*entities.Payment, 0, len(ms))
	for _, m := range ms {
		items = append(items, &entities.Payment{
			ID:            m.ID,
			OrderID:       m.OrderID,
			Method:        m.Method,
			Provider:      m.Provider,
			TransactionID: m.TransactionID,
			Amount:        m.Amount,
			Currency:      m.Currency,
			Status:        m.Status,
			PaidAt:        null.TimeFromPtr(m.PaidAt),
			CreatedAt:     m.CreatedAt,
		})
	}
	return items, nil
}

// AddHistory appends a status change
func (r *OrderRepository) AddHistory(ctx context.Context, h *entities.OrderStatusHistory) error {
	h.ID = ensureID(h.ID)
	h.CreatedAt = time.Now()
	return GetDB(ctx, r.db).Create(&models.OrderStatusHistory{
		ID:         h.ID,
		OrderID:    h.OrderID,
		FromStatus: string(h.FromStatus),
		ToStatus:   string(h.ToStatus),
		Note:       h.Note,
		ChangedBy:  h.ChangedBy,
		CreatedAt:  h.CreatedAt,
	}).Error
}

// ListHistory returns status changes oldest first
func (r *OrderRepository) ListHistory(ctx context.Context, orderID uuid.UUID) ([]*entities.OrderStatusHistory, error) {
	var ms []models.OrderStatusHistory
	if err := GetDB(ctx, r.db).Where("order_id = ?", orderID).Order("created_at, id").Find(&ms).Error; err != nil {
		return nil, err
	}
	items := make([]*entities.OrderStatusHistory, 0, len(ms))
	for _, m := range ms {
		items = append(items, &entities.OrderStatusHistory{
			ID:         m.ID,
			OrderID:    m.OrderID,
			FromStatus: entities.OrderStatus(m.FromStatus),
			ToStatus:   entities.OrderStatus(m.ToStatus),
			Note:       m.Note,
			ChangedBy:  m.ChangedBy,
			CreatedAt:  m.CreatedAt,
		})
	}
	return items, nil
}

func orderToEntity(m *models.Order) *entities.Order {
	return &entities.Order{
		ID:               m.ID,
		Number:           m.Number,
		UserID:           m.UserID,
		Status:           entities.OrderStatus(m.Status),
		PaymentStatus:    entities.PaymentStatus(m.PaymentStatus),
		Subtotal:         m.Subtotal,
		DiscountTotal:    m.DiscountTotal,
		ShippingTotal:    m.ShippingTotal,
		TaxTotal:         m.TaxTotal,
		Total:            m.Total,
		Currency:         m.Currency,
		CouponCode:       null.StringFromPtr(m.CouponCode),
		ShippingName:     m.ShippingName,
		ShippingAddress:  m.ShippingAddress,
		ShippingCity:     m.ShippingCity,
		ShippingState:    m.ShippingState,
		ShippingPostcode: m.ShippingPostcode,
		ShippingCountry:  m.ShippingCountry,
		TrackingNumber:   null.StringFromPtr(m.TrackingNumber),
		Notes:            m.Notes,
		ShippedAt:        null.TimeFromPtr(m.ShippedAt),
		DeliveredAt:      null.TimeFromPtr(m.DeliveredAt),
		CancelledAt:      null.TimeFromPtr(m.CancelledAt),
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

// InvoiceRepository implements invoice data operations
type InvoiceRepository struct {
	db *gorm.DB
}

// NewInvoiceRepository creates a new invoice repository
func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

// Create creates an invoice
func (r *InvoiceRepository) Create(ctx context.Context, inv *entities.Invoice) error {
	now := time.Now()
	inv.ID = ensureID(inv.ID)
	inv.CreatedAt, inv.UpdatedAt = now, now
	return GetDB(ctx, r.db).Create(&models.Invoice{
		ID:            inv.ID,
		Number:        inv.Number,
		OrderID:       inv.OrderID,
		Status:        string(inv.Status),
		Subtotal:      inv.Subtotal,
		DiscountTotal: inv.DiscountTotal,
		ShippingTotal: inv.ShippingTotal,
		TaxTotal:      inv.TaxTotal,
		Total:         inv.Total,
		Currency:      inv.Currency,
		IssuedAt:      inv.IssuedAt,
		CreatedAt:     now,
		UpdatedAt:     now,
	}).Error
}

// GetByID gets an invoice by ID
func (r *InvoiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Invoice, error) {
	var m models.Invoice
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return invoiceToEntity(&m), nil
}

// GetIssuedByOrder returns the non-void invoice of an order
func (r *InvoiceRepository) GetIssuedByOrder(ctx context.Context, orderID uuid.UUID) (*entities.Invoice, error) {
	var m models.Invoice
	if err := GetDB(ctx, r.db).Where("order_id = ? AND status = ?", orderID, string(entities.InvoiceStatusIssued)).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return invoiceToEntity(&m), nil
}

// Update persists status and void details
func (r *InvoiceRepository) Update(ctx context.Context, inv *entities.Invoice) error {
	inv.UpdatedAt = time.Now()
	return checkAffected(GetDB(ctx, r.db).Model(&models.Invoice{}).Where("id = ?", inv.ID).Updates(map[string]interface{}{
		"status":      string(inv.Status),
		"voided_at":   inv.VoidedAt.Ptr(),
		"void_reason": inv.VoidReason.Ptr(),
		"updated_at":  inv.UpdatedAt,
	}))
}

// List lists invoices newest first
func (r *InvoiceRepository) List(ctx context.Context, orderID *uuid.UUID, pagination utils.PaginationParams) ([]*entities.Invoice, int64, error) {
	query := GetDB(ctx, r.db).Model(&models.Invoice{})
	if orderID != nil {
		query = query.Where("order_id = ?", *orderID)
	}
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var ms []models.Invoice
	if err := paginate(query.Order("issued_at DESC"), pagination).Find(&ms).Error; err != nil {
		return nil, 0, err
	}
	items := make([]*entities.Invoice, 0, len(ms))
	for i := range ms {
		items = append(items, invoiceToEntity(&ms[i]))
	}
	return items, total, nil
}

// LastNumberWithPrefix returns the highest invoice number starting with prefix
func (r *InvoiceRepository) LastNumberWithPrefix(ctx context.Context, prefix string) (string, error) {
	var numbers []string
	err := GetDB(ctx, r.db).Model(&models.Invoice{}).
		Where("number LIKE ?", prefix+"%").
		Order("number DESC").
		Limit(1).
		Pluck("number", &numbers).Error
	if err != nil || len(numbers) == 0 {
		return "", err
	}
	return numbers[0], nil
}

func invoiceToEntity(m *models.Invoice) *entities.Invoice {
	return &entities.Invoice{
		ID:            m.ID,
		Number:        m.Number,
		OrderID:       m.OrderID,
		Status:        entities.InvoiceStatus(m.Status),
		Subtotal:      m.Subtotal,
		DiscountTotal: m.DiscountTotal,
		ShippingTotal: m.ShippingTotal,
		TaxTotal:      m.TaxTotal,
		Total:         m.Total,
		Currency:      m.Currency,
		IssuedAt:      m.IssuedAt,
		VoidedAt:      null.TimeFromPtr(m.VoidedAt),
		VoidReason:    null.StringFromPtr(m.VoidReason),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}
