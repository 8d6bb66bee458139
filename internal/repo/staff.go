package repo

import (
	"context"

	"github.com/IGBS-Global/Quisin-V11/internal/domain"
)

type StaffRepository interface {
	List(ctx context.Context) ([]domain.Staff, error)
	Create(ctx context.Context, staff *domain.Staff) (string, error)
	FindByCredentials(ctx context.Context, username, password string) (*domain.Staff, error)
}
