package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/IGBS-Global/Quisin-V11/internal/domain"
	"github.com/IGBS-Global/Quisin-V11/internal/repo"
	"go.uber.org/zap"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// AdminConfig is the seed administrator accepted without a staff row. Kept
// for compatibility with existing clients, but configurable instead of a
// hard-coded literal.
type AdminConfig struct {
	Username string
	Password string
}

type AuthService struct {
	staffRepo repo.StaffRepository
	admin     AdminConfig
	logger    *zap.SugaredLogger
}

func NewAuthService(staffRepo repo.StaffRepository, admin AdminConfig, logger *zap.SugaredLogger) *AuthService {
	return &AuthService{
		staffRepo: staffRepo,
		admin:     admin,
		logger:    logger,
	}
}

// Login checks the seed admin first and only then the staff store. Passwords
// are compared verbatim against the stored value; no hashing, no sessions.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.Identity, error) {
	if s.admin.Username != "" && username == s.admin.Username && password == s.admin.Password {
		return &domain.Identity{
			ID:   "admin",
			Name: "Admin",
			Role: domain.RoleAdmin,
		}, nil
	}

	member, err := s.staffRepo.FindByCredentials(ctx, username, password)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			s.logger.Infow("login rejected", "username", username)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up staff credentials: %w", err)
	}

	return &domain.Identity{
		ID:   member.ID,
		Name: member.Name,
		Role: domain.RoleWaiter,
	}, nil
}
