package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopledger/backend/internal/models"
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return db, mock
}

func TestCustomerRepositoryCreate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCustomerRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO customer (name, email, phone)`)).
		WithArgs("Jane Doe", "jane@example.com", "555-0100").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	customer := &models.Customer{Name: "Jane Doe", Email: "jane@example.com", Phone: "555-0100"}
	err := repo.Create(context.Background(), customer)

	require.NoError(t, err)
	assert.Equal(t, int64(7), customer.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerRepositoryGetByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCustomerRepository(db)

	rows := sqlmock.NewRows([]string{"id", "name", "email", "phone"}).
		AddRow(3, "Jane Doe", "jane@example.com", "")
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, COALESCE(email, ''), COALESCE(phone, '')`)).
		WithArgs(int64(3)).
		WillReturnRows(rows)

	customer, err := repo.GetByID(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", customer.Name)
	assert.Empty(t, customer.Phone)
}

func TestCustomerRepositoryGetByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCustomerRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name`)).
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 99)

	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestCustomerRepositoryUpdateNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCustomerRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE customer`)).
		WithArgs("Jane Doe", "", "", int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), &models.Customer{ID: 42, Name: "Jane Doe"})

	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestCustomerRepositoryDelete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCustomerRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM customer WHERE id = $1`)).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Delete(context.Background(), 3)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerRepositoryDeleteWithOrdersConflicts(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCustomerRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM customer WHERE id = $1`)).
		WithArgs(int64(3)).
		WillReturnError(&pq.Error{Code: foreignKeyViolation})

	err := repo.Delete(context.Background(), 3)

	assert.ErrorIs(t, err, models.ErrConflict)
}

func TestCustomerRepositoryDeleteNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCustomerRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM customer WHERE id = $1`)).
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), 99)

	assert.ErrorIs(t, err, models.ErrNotFound)
}
