package repo

import (
	"context"

	"github.com/IGBS-Global/Quisin-V11/internal/domain"
)

type TableRepository interface {
	List(ctx context.Context) ([]domain.Table, error)
	Create(ctx context.Context, table *domain.Table) (string, error)
}
