package postgres

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/IGBS-Global/Quisin-V11/internal/domain"
	"github.com/stretchr/testify/require"
)

func TestTableRepositoryCreateDefaultsStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	tableRepo := NewTableRepository(db)

	mock.ExpectExec("INSERT INTO tables").
		WithArgs(sqlmock.AnyArg(), "12", 4, "patio", domain.TableStatusAvailable).
		WillReturnResult(sqlmock.NewResult(0, 1))

	table := &domain.Table{
		Number:   "12",
		Seats:    4,
		Location: "patio",
	}

	id, err := tableRepo.Create(context.Background(), table)
	require.NoError(t, err)
	require.NotEmpty(t, id)
	require.NoError(t, mock.ExpectationsWereMet())
}
