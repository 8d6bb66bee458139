package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/IGBS-Global/Quisin-V11/internal/domain"
	"github.com/IGBS-Global/Quisin-V11/internal/queue"
	"github.com/IGBS-Global/Quisin-V11/internal/repo"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ErrInvalidOrder is the base error for every rejection produced by order
// validation. Handlers map it to a client error.
var ErrInvalidOrder = errors.New("invalid order")

// moneyScale is the minor-unit precision monetary fields are compared at.
// Orders carry no currency of their own, so cents it is.
const moneyScale = 2

type OrderService struct {
	orderRepo repo.OrderRepository
	eventRepo repo.OrderEventRepository
	broker    queue.Broker
	logger    *zap.SugaredLogger
}

func NewOrderService(
	orderRepo repo.OrderRepository,
	eventRepo repo.OrderEventRepository,
	broker queue.Broker,
	logger *zap.SugaredLogger,
) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		eventRepo: eventRepo,
		broker:    broker,
		logger:    logger,
	}
}

func (s *OrderService) ListOrders(ctx context.Context) ([]domain.Order, error) {
	orders, err := s.orderRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	return orders, nil
}

// CreateOrder validates the order, persists it and returns the generated id.
// Referenced table and waiter ids are accepted as-is; existence is not
// checked against the tables or staff stores.
func (s *OrderService) CreateOrder(ctx context.Context, order *domain.Order) (string, error) {
	if err := validateOrder(order); err != nil {
		return "", err
	}

	id, err := s.orderRepo.Create(ctx, order)
	if err != nil {
		return "", fmt.Errorf("failed to create order: %w", err)
	}

	s.logger.Infow("order created", "order_id", id, "table_id", order.TableID, "waiter_id", order.WaiterID)

	// the event stream is best effort: the row is already committed, so a
	// broker hiccup must not fail the request
	s.publishCreated(ctx, id, order)

	return id, nil
}

func (s *OrderService) publishCreated(ctx context.Context, id string, order *domain.Order) {
	if s.broker == nil {
		return
	}

	event := domain.OrderEvent{
		EventType: domain.EventOrderCreated,
		OrderID:   id,
		TableID:   order.TableID,
		WaiterID:  order.WaiterID,
		Total:     order.Total,
	}

	eventBytes, err := json.Marshal(event)
	if err != nil {
		s.logger.Errorw("failed to marshal order event", "order_id", id, "error", err)
		return
	}

	if err := s.broker.Publish(ctx, queue.QueueOrderEvents, eventBytes); err != nil {
		s.logger.Errorw("failed to publish order event", "order_id", id, "error", err)
		return
	}

	s.logger.Infow("order event queued", "order_id", id, "event_type", event.EventType)
}

// ProcessOrderEvent records a consumed event in the order_events table.
func (s *OrderService) ProcessOrderEvent(ctx context.Context, event domain.OrderEvent) error {
	record := &domain.OrderEventRecord{
		OrderID:   event.OrderID,
		EventType: event.EventType,
		TableID:   event.TableID,
		WaiterID:  event.WaiterID,
		Total:     event.Total,
	}

	if err := s.eventRepo.Create(ctx, record); err != nil {
		s.logger.Errorw("failed to record order event", "order_id", event.OrderID, "error", err)
		return fmt.Errorf("failed to record order event: %w", err)
	}

	s.logger.Infow("order event recorded", "order_id", event.OrderID, "event_type", event.EventType)

	return nil
}

func validateOrder(order *domain.Order) error {
	switch {
	case order.TableID == "":
		return fmt.Errorf("%w: tableId is required", ErrInvalidOrder)
	case order.WaiterID == "":
		return fmt.Errorf("%w: waiterId is required", ErrInvalidOrder)
	case order.WaiterName == "":
		return fmt.Errorf("%w: waiterName is required", ErrInvalidOrder)
	case order.Status == "":
		return fmt.Errorf("%w: status is required", ErrInvalidOrder)
	case len(order.Items) == 0:
		return fmt.Errorf("%w: items must not be empty", ErrInvalidOrder)
	}

	if !domain.ValidOrderStatus(order.Status) {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidOrder, order.Status)
	}

	for i, item := range order.Items {
		if item.MenuItemID == "" {
			return fmt.Errorf("%w: items[%d] is missing a menu item reference", ErrInvalidOrder, i)
		}
		if item.Quantity < 1 {
			return fmt.Errorf("%w: items[%d] quantity must be at least 1", ErrInvalidOrder, i)
		}
		if item.Price < 0 {
			return fmt.Errorf("%w: items[%d] price must not be negative", ErrInvalidOrder, i)
		}
	}

	if order.Subtotal < 0 || order.Tax < 0 || order.Total < 0 {
		return fmt.Errorf("%w: monetary fields must not be negative", ErrInvalidOrder)
	}

	subtotal := decimal.NewFromFloat(order.Subtotal)
	tax := decimal.NewFromFloat(order.Tax)
	total := decimal.NewFromFloat(order.Total)

	if !subtotal.Add(tax).Round(moneyScale).Equal(total.Round(moneyScale)) {
		return fmt.Errorf("%w: total must equal subtotal plus tax", ErrInvalidOrder)
	}

	return nil
}
