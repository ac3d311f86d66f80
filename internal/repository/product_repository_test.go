package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopledger/backend/internal/models"
)

func TestProductRepositoryCreate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO products (name, price)`)).
		WithArgs("Widget", 9.99).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(4))

	product := &models.Product{Name: "Widget", Price: 9.99}
	err := repo.Create(context.Background(), product)

	require.NoError(t, err)
	assert.Equal(t, int64(4), product.ID)
}

func TestProductRepositoryList(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)

	rows := sqlmock.NewRows([]string{"id", "name", "price"}).
		AddRow(1, "Widget", 9.99).
		AddRow(2, "Gadget", 19.99)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, price`)).
		WillReturnRows(rows)

	products, err := repo.List(context.Background())

	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Widget", products[0].Name)
	assert.Equal(t, 19.99, products[1].Price)
}

func TestProductRepositoryMissingIDs(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)

	ids := []int64{1, 2, 3}
	rows := sqlmock.NewRows([]string{"id"}).AddRow(1).AddRow(3)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id FROM products WHERE id = ANY($1)`)).
		WithArgs(pq.Array(ids)).
		WillReturnRows(rows)

	missing, err := repo.MissingIDs(context.Background(), ids)

	require.NoError(t, err)
	assert.Equal(t, []int64{2}, missing)
}

func TestProductRepositoryMissingIDsEmptyInput(t *testing.T) {
	db, _ := newMockDB(t)
	repo := NewProductRepository(db)

	missing, err := repo.MissingIDs(context.Background(), nil)

	require.NoError(t, err)
	assert.Empty(t, missing)
}
