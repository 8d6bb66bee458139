package repo

import (
	"context"

	"github.com/IGBS-Global/Quisin-V11/internal/domain"
)

type OrderRepository interface {
	List(ctx context.Context) ([]domain.Order, error)
	Create(ctx context.Context, order *domain.Order) (string, error)
}

type OrderEventRepository interface {
	Create(ctx context.Context, event *domain.OrderEventRecord) error
	ListByOrderID(ctx context.Context, orderID string, limit int) ([]domain.OrderEventRecord, error)
}
