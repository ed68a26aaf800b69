package orders

import (
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db, mock
}

func TestDeleteCascadeVolgordeEnFilters(t *testing.T) {
	db, mock := newMockDB(t)

	// de verwachtingen zijn geordend: eerst transacties, dan doorverkopen,
	// dan pas de bestelling zelf
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "buffer_transactions" WHERE order_id = $1`)).
		WithArgs(7).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "resales" WHERE order_id = $1`)).
		WithArgs(7).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "orders" WHERE id = $1`)).
		WithArgs(7).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, deleteCascade(db, 7))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteCascadeStoptBijEersteFout(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "buffer_transactions" WHERE order_id = $1`)).
		WithArgs(7).
		WillReturnError(errors.New("verbinding verbroken"))

	require.Error(t, deleteCascade(db, 7))
	// de doorverkopen en de bestelling zijn niet aangeraakt
	require.NoError(t, mock.ExpectationsWereMet())
}
