package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/IGBS-Global/Quisin-V11/internal/domain"
	"github.com/IGBS-Global/Quisin-V11/internal/repo"
	"github.com/google/uuid"
)

type StaffRepository struct {
	db *sql.DB
}

func NewStaffRepository(db *sql.DB) *StaffRepository {
	return &StaffRepository{db: db}
}

const staffColumns = `id, name, email, COALESCE(phone, ''), COALESCE(shift_start, ''),
	COALESCE(shift_end, ''), shift_days, username, password,
	COALESCE(status, 'active'), created_at`

func (r *StaffRepository) List(ctx context.Context) ([]domain.Staff, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `SELECT `+staffColumns+` FROM staff`)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	defer rows.Close()

	members := []domain.Staff{}
	for rows.Next() {
		member, err := scanStaff(rows.Scan)
		if err != nil {
			return nil, err
		}
		members = append(members, *member)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate staff: %w", err)
	}

	return members, nil
}

func (r *StaffRepository) Create(ctx context.Context, staff *domain.Staff) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if staff.ID == "" {
		staff.ID = uuid.NewString()
	}
	if staff.Status == "" {
		staff.Status = domain.StaffStatusActive
	}

	days, err := encodeStringList(staff.Shift.Days)
	if err != nil {
		return "", fmt.Errorf("failed to encode shift days: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO staff (
			id, name, email, phone, shift_start, shift_end,
			shift_days, username, password, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		staff.ID,
		staff.Name,
		staff.Email,
		staff.Phone,
		staff.Shift.Start,
		staff.Shift.End,
		days,
		staff.Username,
		staff.Password,
		staff.Status,
	)
	if err != nil {
		return "", fmt.Errorf("failed to create staff: %w", err)
	}

	return staff.ID, nil
}

// FindByCredentials does a verbatim username/password match restricted to
// active staff. Inactive rows never log in.
func (r *StaffRepository) FindByCredentials(ctx context.Context, username, password string) (*domain.Staff, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	row := r.db.QueryRowContext(ctx, `
		SELECT `+staffColumns+` FROM staff
		WHERE username = $1 AND password = $2 AND status = $3`,
		username, password, domain.StaffStatusActive)

	member, err := scanStaff(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo.ErrNotFound
		}
		return nil, err
	}

	return member, nil
}

func scanStaff(scan func(dest ...any) error) (*domain.Staff, error) {
	var (
		member  domain.Staff
		rawDays []byte
	)

	err := scan(
		&member.ID,
		&member.Name,
		&member.Email,
		&member.Phone,
		&member.Shift.Start,
		&member.Shift.End,
		&rawDays,
		&member.Username,
		&member.Password,
		&member.Status,
		&member.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan staff: %w", err)
	}

	if member.Shift.Days, err = decodeStringList(rawDays); err != nil {
		return nil, fmt.Errorf("failed to decode shift days for staff %s: %w", member.ID, err)
	}

	return &member, nil
}
