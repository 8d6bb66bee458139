package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/IGBS-Global/Quisin-V11/internal/domain"
	"github.com/IGBS-Global/Quisin-V11/internal/repo"
	"github.com/stretchr/testify/require"
)

func staffRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "email", "phone", "shift_start", "shift_end",
		"shift_days", "username", "password", "status", "created_at",
	})
}

func TestStaffRepositoryCreateDefaults(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	staffRepo := NewStaffRepository(db)

	mock.ExpectExec("INSERT INTO staff").WillReturnResult(sqlmock.NewResult(0, 1))

	member := &domain.Staff{
		Name:  "Dana",
		Email: "dana@example.com",
		Shift: domain.Shift{
			Start: "09:00",
			End:   "17:00",
			Days:  []string{"Mon", "Tue"},
		},
		Username: "dana",
		Password: "secret",
	}

	id, err := staffRepo.Create(context.Background(), member)
	require.NoError(t, err)
	require.NotEmpty(t, id)
	require.Equal(t, domain.StaffStatusActive, member.Status)
}

func TestStaffRepositoryListReconstructsShift(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	staffRepo := NewStaffRepository(db)

	rows := staffRows().AddRow(
		"staff-1", "Dana", "dana@example.com", "", "09:00", "17:00",
		[]byte(`["Mon","Tue"]`), "dana", "secret", "active", time.Now(),
	)

	mock.ExpectQuery("SELECT (.+) FROM staff").WillReturnRows(rows)

	members, err := staffRepo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, members, 1)

	member := members[0]
	require.Equal(t, "09:00", member.Shift.Start)
	require.Equal(t, "17:00", member.Shift.End)
	require.Equal(t, []string{"Mon", "Tue"}, member.Shift.Days)
}

func TestStaffRepositoryFindByCredentialsNoMatch(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	staffRepo := NewStaffRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM staff").
		WithArgs("dana", "wrong", domain.StaffStatusActive).
		WillReturnRows(staffRows())

	_, err = staffRepo.FindByCredentials(context.Background(), "dana", "wrong")
	require.ErrorIs(t, err, repo.ErrNotFound)
}

func TestStaffRepositoryFindByCredentialsMatch(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	staffRepo := NewStaffRepository(db)

	rows := staffRows().AddRow(
		"staff-1", "Dana", "dana@example.com", "", "09:00", "17:00",
		[]byte(`["Mon"]`), "dana", "secret", "active", time.Now(),
	)

	mock.ExpectQuery("SELECT (.+) FROM staff").
		WithArgs("dana", "secret", domain.StaffStatusActive).
		WillReturnRows(rows)

	member, err := staffRepo.FindByCredentials(context.Background(), "dana", "secret")
	require.NoError(t, err)
	require.Equal(t, "staff-1", member.ID)
	require.Equal(t, "Dana", member.Name)
}
