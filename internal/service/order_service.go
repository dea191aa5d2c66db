package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fcbt5uhrtd65/ProjectStore/internal/models"
	"github.com/fcbt5uhrtd65/ProjectStore/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultDeliveryMethod = "Domicilio"

type orderService struct {
	repo   *repository.Repository
	locks  *KeyedLocks
	events EventBus
	log    *zap.Logger
	now    func() time.Time
}

func NewOrderService(repo *repository.Repository, locks *KeyedLocks, events EventBus, log *zap.Logger) OrderService {
	return &orderService{
		repo:   repo,
		locks:  locks,
		events: events,
		log:    log,
		now:    time.Now,
	}
}

// CreateOrder validates stock against live product records, snapshots
// prices into the order, persists it and then decrements stock line by
// line. The per-product locks close the check-then-decrement race for
// concurrent orders in this process. The order write and the stock writes
// are still separate keys: a failure after the order is persisted leaves
// stock partially decremented, which is logged and surfaced, not rolled
// back.
func (s *orderService) CreateOrder(ctx context.Context, in CreateOrderInput) (*models.Order, error) {
	if len(in.Items) == 0 {
		return nil, ErrEmptyItems
	}
	if strings.TrimSpace(in.CustomerName) == "" {
		return nil, ErrCustomerNameRequired
	}

	lockKeys := make([]string, 0, len(in.Items))
	for _, it := range in.Items {
		lockKeys = append(lockKeys, productLockKey(it.ProductID))
	}
	unlock := s.locks.LockAll(lockKeys)
	defer unlock()

	now := s.now()

	// An order may list the same product on several lines; the stock check
	// runs against the combined quantity, otherwise two lines of 3 against
	// a stock of 5 would pass line by line and drive the stock negative.
	products := make(map[string]*models.Product, len(in.Items))
	required := make(map[string]int, len(in.Items))

	var (
		items []models.OrderItem
		total float64
	)
	for _, it := range in.Items {
		if it.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}

		p, ok := products[it.ProductID]
		if !ok {
			var err error
			p, err = s.repo.Products.GetByID(ctx, it.ProductID)
			if err != nil {
				return nil, err
			}
			if p == nil {
				return nil, ErrProductNotFound
			}
			products[it.ProductID] = p
		}

		required[it.ProductID] += it.Quantity
		if required[it.ProductID] > p.Stock {
			return nil, &InsufficientStockError{
				ProductID:   p.ID,
				ProductName: p.Name,
				Available:   p.Stock,
				Requested:   required[it.ProductID],
			}
		}

		total += p.EffectivePrice() * float64(it.Quantity)
		items = append(items, models.OrderItem{Product: *p, Quantity: it.Quantity})
	}

	order := &models.Order{
		ID:              uuid.NewString(),
		Items:           items,
		Total:           total,
		CustomerName:    strings.TrimSpace(in.CustomerName),
		CustomerPhone:   strings.TrimSpace(in.CustomerPhone),
		CustomerEmail:   strings.TrimSpace(in.CustomerEmail),
		CustomerAddress: in.CustomerAddress,
		DeliveryMethod:  in.DeliveryMethod,
		Notes:           in.Notes,
		Status:          models.OrderStatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if order.DeliveryMethod == "" {
		order.DeliveryMethod = defaultDeliveryMethod
	}

	if err := s.repo.Orders.Save(ctx, order); err != nil {
		return nil, err
	}

	// Decrement stock for each line. No rollback of the order on failure:
	// the store has no multi-key transactions.
	for _, item := range order.Items {
		if err := s.commitLine(ctx, order, item); err != nil {
			s.log.Error("order persisted but stock decrement failed",
				zap.String("orderId", order.ID),
				zap.String("productId", item.Product.ID),
				zap.Error(err))
			return nil, fmt.Errorf("order %s created but stock update failed for product %s: %w",
				order.ID, item.Product.ID, err)
		}
	}

	if err := s.upsertCustomerFromOrder(ctx, order); err != nil {
		// Customer aggregates are derived data; failure must not undo a
		// placed order.
		s.log.Warn("customer aggregate update failed",
			zap.String("orderId", order.ID), zap.Error(err))
	}

	if s.events != nil {
		evItems := make([]OrderItemEvent, 0, len(order.Items))
		for _, it := range order.Items {
			unit := it.Product.EffectivePrice()
			evItems = append(evItems, OrderItemEvent{
				ProductID: it.Product.ID,
				Name:      it.Product.Name,
				Quantity:  it.Quantity,
				UnitPrice: unit,
				LineTotal: unit * float64(it.Quantity),
			})
		}
		_ = s.events.PublishOrderCreated(ctx, OrderCreatedEvent{
			OrderID:       order.ID,
			CustomerName:  order.CustomerName,
			CustomerPhone: order.CustomerPhone,
			Items:         evItems,
			Total:         order.Total,
			CreatedAt:     order.CreatedAt,
		})
	}

	s.log.Info("order created",
		zap.String("id", order.ID),
		zap.Float64("total", order.Total))
	return order, nil
}

// commitLine decrements one product's stock, records the movement and
// bumps the sales counter. The caller holds the product lock.
func (s *orderService) commitLine(ctx context.Context, order *models.Order, item models.OrderItem) error {
	p, err := s.repo.Products.GetByID(ctx, item.Product.ID)
	if err != nil {
		return err
	}
	if p == nil {
		return ErrProductNotFound
	}

	previous := p.Stock
	newStock := previous - item.Quantity

	m := &models.StockMovement{
		ID:            uuid.NewString(),
		ProductID:     p.ID,
		ProductName:   p.Name,
		Type:          models.MovementOut,
		Quantity:      item.Quantity,
		PreviousStock: previous,
		NewStock:      newStock,
		Reason:        "Order " + order.ID,
		CreatedAt:     s.now(),
	}
	if err := s.repo.Movements.Save(ctx, m); err != nil {
		return err
	}

	p.Stock = newStock
	p.SalesCount += item.Quantity
	p.UpdatedAt = s.now()
	return s.repo.Products.Save(ctx, p)
}

func (s *orderService) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	o, err := s.repo.Orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrOrderNotFound
	}
	return o, nil
}

func (s *orderService) ListOrders(ctx context.Context, f OrderListFilter) ([]models.Order, error) {
	orders, err := s.repo.Orders.List(ctx)
	if err != nil {
		return nil, err
	}
	if f.Status == nil {
		return orders, nil
	}
	out := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		if o.Status == *f.Status {
			out = append(out, o)
		}
	}
	return out, nil
}

// UpdateStatus appends to the status history and stamps the transition
// time. Any valid status may be set from any other; ordering is the UI's
// concern. Cancellation does not restock: the decrement at creation is
// treated as committed, and corrections go through the stock endpoint
// where they leave an audit trail.
func (s *orderService) UpdateStatus(ctx context.Context, id string, status models.OrderStatus, notes string) (*models.Order, error) {
	if !models.ValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	o, err := s.repo.Orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrOrderNotFound
	}

	now := s.now()
	o.StatusHistory = append(o.StatusHistory, models.StatusChange{
		Status: status,
		Date:   now,
		Notes:  notes,
	})
	o.Status = status
	o.UpdatedAt = now
	stampStatus(o, status, now)

	if err := s.repo.Orders.Save(ctx, o); err != nil {
		return nil, err
	}

	if s.events != nil {
		_ = s.events.PublishOrderStatusChanged(ctx, OrderStatusChangedEvent{
			OrderID:   o.ID,
			Status:    status,
			Notes:     notes,
			ChangedAt: now,
		})
	}

	s.log.Info("order status updated",
		zap.String("id", o.ID),
		zap.String("status", string(status)))
	return o, nil
}

func stampStatus(o *models.Order, status models.OrderStatus, t time.Time) {
	switch status {
	case models.OrderStatusConfirmed:
		o.ConfirmedAt = &t
	case models.OrderStatusInTransit:
		o.InTransitAt = &t
	case models.OrderStatusDelivered:
		o.DeliveredAt = &t
	case models.OrderStatusCancelled:
		o.CancelledAt = &t
	}
}

func (s *orderService) UpdateOrder(ctx context.Context, id string, patch OrderPatch) (*models.Order, error) {
	o, err := s.repo.Orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrOrderNotFound
	}

	if patch.CustomerName != nil {
		if strings.TrimSpace(*patch.CustomerName) == "" {
			return nil, ErrCustomerNameRequired
		}
		o.CustomerName = strings.TrimSpace(*patch.CustomerName)
	}
	if patch.CustomerPhone != nil {
		o.CustomerPhone = strings.TrimSpace(*patch.CustomerPhone)
	}
	if patch.CustomerEmail != nil {
		o.CustomerEmail = strings.TrimSpace(*patch.CustomerEmail)
	}
	if patch.CustomerAddress != nil {
		o.CustomerAddress = *patch.CustomerAddress
	}
	if patch.DeliveryMethod != nil {
		o.DeliveryMethod = *patch.DeliveryMethod
	}
	if patch.Notes != nil {
		o.Notes = *patch.Notes
	}
	if patch.AdminNotes != nil {
		o.AdminNotes = *patch.AdminNotes
	}

	o.UpdatedAt = s.now()

	if err := s.repo.Orders.Save(ctx, o); err != nil {
		return nil, err
	}

	s.log.Info("order updated", zap.String("id", o.ID))
	return o, nil
}

// upsertCustomerFromOrder recomputes the denormalized customer aggregate
// after an order. Guests without a phone number are skipped: there is no
// stable key to aggregate on.
func (s *orderService) upsertCustomerFromOrder(ctx context.Context, order *models.Order) error {
	id := NormalizePhone(order.CustomerPhone)
	if id == "" {
		return nil
	}

	c, err := s.repo.Customers.GetByID(ctx, id)
	if err != nil {
		return err
	}

	now := s.now()
	if c == nil {
		c = &models.Customer{
			ID:        id,
			Phone:     order.CustomerPhone,
			CreatedAt: now,
		}
	}

	c.Name = order.CustomerName
	if order.CustomerEmail != "" {
		c.Email = order.CustomerEmail
	}
	if order.CustomerAddress != "" {
		c.Address = order.CustomerAddress
	}
	c.TotalOrders++
	c.TotalSpent += order.Total
	c.LastOrderDate = &now

	return s.repo.Customers.Save(ctx, c)
}

func (s *orderService) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	return s.repo.Customers.List(ctx)
}

func (s *orderService) GetCustomer(ctx context.Context, id string) (*models.Customer, error) {
	c, err := s.repo.Customers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCustomerNotFound
	}
	return c, nil
}

// UpsertCustomer creates the record when the id is unknown, mirroring the
// admin UI's edit-or-create form.
func (s *orderService) UpsertCustomer(ctx context.Context, in models.Customer) (*models.Customer, error) {
	existing, err := s.repo.Customers.GetByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		in.CreatedAt = s.now()
	} else {
		in.CreatedAt = existing.CreatedAt
		if in.TotalOrders == 0 {
			in.TotalOrders = existing.TotalOrders
		}
		if in.TotalSpent == 0 {
			in.TotalSpent = existing.TotalSpent
		}
		if in.LastOrderDate == nil {
			in.LastOrderDate = existing.LastOrderDate
		}
	}

	if err := s.repo.Customers.Save(ctx, &in); err != nil {
		return nil, err
	}
	return &in, nil
}

// NormalizePhone keeps digits only so "+57 300 123-4567" and
// "573001234567" address the same customer record.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
