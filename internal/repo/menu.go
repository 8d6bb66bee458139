package repo

import (
	"context"

	"github.com/IGBS-Global/Quisin-V11/internal/domain"
)

type MenuRepository interface {
	List(ctx context.Context) ([]domain.MenuItem, error)
	Create(ctx context.Context, item *domain.MenuItem) (int, error)
}
