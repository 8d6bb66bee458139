package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/IGBS-Global/Quisin-V11/internal/domain"
	"github.com/IGBS-Global/Quisin-V11/internal/queue"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeOrderRepo struct {
	created []*domain.Order
	orders  []domain.Order
	err     error
}

func (f *fakeOrderRepo) List(ctx context.Context) ([]domain.Order, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.orders, nil
}

func (f *fakeOrderRepo) Create(ctx context.Context, order *domain.Order) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	order.ID = "order-1"
	f.created = append(f.created, order)
	return order.ID, nil
}

type fakeEventRepo struct {
	records []*domain.OrderEventRecord
	err     error
}

func (f *fakeEventRepo) Create(ctx context.Context, record *domain.OrderEventRecord) error {
	if f.err != nil {
		return f.err
	}
	f.records = append(f.records, record)
	return nil
}

func (f *fakeEventRepo) ListByOrderID(ctx context.Context, orderID string, limit int) ([]domain.OrderEventRecord, error) {
	return nil, nil
}

type fakeBroker struct {
	queueName string
	published [][]byte
	err       error
}

func (f *fakeBroker) Publish(ctx context.Context, queueName string, message []byte) error {
	if f.err != nil {
		return f.err
	}
	f.queueName = queueName
	f.published = append(f.published, message)
	return nil
}

func (f *fakeBroker) Subscribe(ctx context.Context, queueName string, handler queue.MessageHandler) error {
	return nil
}

func (f *fakeBroker) Close() error { return nil }

func validOrder() *domain.Order {
	return &domain.Order{
		TableID:    "table-1",
		Items:      []domain.OrderItem{{MenuItemID: "42", Quantity: 2, Price: 5.00}},
		Status:     domain.OrderStatusPending,
		Subtotal:   10.00,
		Tax:        1.00,
		Total:      11.00,
		WaiterID:   "waiter-1",
		WaiterName: "Dana",
	}
}

func newOrderService(orderRepo *fakeOrderRepo, eventRepo *fakeEventRepo, broker queue.Broker) *OrderService {
	return NewOrderService(orderRepo, eventRepo, broker, zap.NewNop().Sugar())
}

func TestCreateOrderValid(t *testing.T) {
	orderRepo := &fakeOrderRepo{}
	s := newOrderService(orderRepo, &fakeEventRepo{}, nil)

	id, err := s.CreateOrder(context.Background(), validOrder())
	require.NoError(t, err)
	require.Equal(t, "order-1", id)
	require.Len(t, orderRepo.created, 1)
}

func TestCreateOrderRejectsMissingFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.Order)
	}{
		{"missing tableId", func(o *domain.Order) { o.TableID = "" }},
		{"missing waiterId", func(o *domain.Order) { o.WaiterID = "" }},
		{"missing waiterName", func(o *domain.Order) { o.WaiterName = "" }},
		{"missing status", func(o *domain.Order) { o.Status = "" }},
		{"empty items", func(o *domain.Order) { o.Items = nil }},
		{"item without menu reference", func(o *domain.Order) { o.Items[0].MenuItemID = "" }},
		{"item with zero quantity", func(o *domain.Order) { o.Items[0].Quantity = 0 }},
		{"negative subtotal", func(o *domain.Order) { o.Subtotal = -1 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			orderRepo := &fakeOrderRepo{}
			s := newOrderService(orderRepo, &fakeEventRepo{}, nil)

			order := validOrder()
			tc.mutate(order)

			_, err := s.CreateOrder(context.Background(), order)
			require.ErrorIs(t, err, ErrInvalidOrder)
			require.Empty(t, orderRepo.created, "no write may happen on a validation error")
		})
	}
}

func TestCreateOrderRejectsUnknownStatus(t *testing.T) {
	s := newOrderService(&fakeOrderRepo{}, &fakeEventRepo{}, nil)

	order := validOrder()
	order.Status = "teleported"

	_, err := s.CreateOrder(context.Background(), order)
	require.ErrorIs(t, err, ErrInvalidOrder)
}

func TestCreateOrderRejectsTotalMismatch(t *testing.T) {
	s := newOrderService(&fakeOrderRepo{}, &fakeEventRepo{}, nil)

	order := validOrder()
	order.Total = 12.00

	_, err := s.CreateOrder(context.Background(), order)
	require.ErrorIs(t, err, ErrInvalidOrder)
}

func TestCreateOrderTotalToleratesFloatNoise(t *testing.T) {
	s := newOrderService(&fakeOrderRepo{}, &fakeEventRepo{}, nil)

	// 0.1 + 0.2 != 0.3 in float64, but it is at cent precision
	order := validOrder()
	order.Subtotal = 0.1
	order.Tax = 0.2
	order.Total = 0.3

	_, err := s.CreateOrder(context.Background(), order)
	require.NoError(t, err)
}

func TestCreateOrderPropagatesStoreError(t *testing.T) {
	storeErr := errors.New("connection refused")
	s := newOrderService(&fakeOrderRepo{err: storeErr}, &fakeEventRepo{}, nil)

	id, err := s.CreateOrder(context.Background(), validOrder())
	require.ErrorIs(t, err, storeErr)
	require.NotErrorIs(t, err, ErrInvalidOrder)
	require.Empty(t, id, "a failed create must not fabricate an id")
}

func TestCreateOrderPublishesEvent(t *testing.T) {
	broker := &fakeBroker{}
	s := newOrderService(&fakeOrderRepo{}, &fakeEventRepo{}, broker)

	_, err := s.CreateOrder(context.Background(), validOrder())
	require.NoError(t, err)
	require.Equal(t, queue.QueueOrderEvents, broker.queueName)
	require.Len(t, broker.published, 1)

	var event domain.OrderEvent
	require.NoError(t, json.Unmarshal(broker.published[0], &event))
	require.Equal(t, domain.EventOrderCreated, event.EventType)
	require.Equal(t, "order-1", event.OrderID)
	require.Equal(t, 11.00, event.Total)
}

func TestCreateOrderSucceedsWhenPublishFails(t *testing.T) {
	broker := &fakeBroker{err: errors.New("broker down")}
	s := newOrderService(&fakeOrderRepo{}, &fakeEventRepo{}, broker)

	id, err := s.CreateOrder(context.Background(), validOrder())
	require.NoError(t, err)
	require.Equal(t, "order-1", id)
}

func TestProcessOrderEvent(t *testing.T) {
	eventRepo := &fakeEventRepo{}
	s := newOrderService(&fakeOrderRepo{}, eventRepo, nil)

	err := s.ProcessOrderEvent(context.Background(), domain.OrderEvent{
		EventType: domain.EventOrderCreated,
		OrderID:   "order-1",
		TableID:   "table-1",
		WaiterID:  "waiter-1",
		Total:     11.00,
	})
	require.NoError(t, err)
	require.Len(t, eventRepo.records, 1)
	require.Equal(t, "order-1", eventRepo.records[0].OrderID)
}
