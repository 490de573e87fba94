package store

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jekabolt/organic-reports/internal/entity"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockStore(t *testing.T) (*MYSQLStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return &MYSQLStore{db: sqlx.NewDb(db, "mysql"), close: func() {}}, mock
}

func TestGetOrders(t *testing.T) {
	ms, mock := newMockStore(t)
	day1 := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 1, 16, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM orders")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "total_amount", "created_at"}).
			AddRow(1, "100.00", day1).
			AddRow(2, "30.00", day2))
	mock.ExpectQuery(regexp.QuoteMeta("FROM order_items oi")).
		WillReturnRows(sqlmock.NewRows([]string{"order_id", "product_id", "product_name", "quantity", "price"}).
			AddRow(1, 7, "Honey", 2, "50.00").
			AddRow(2, nil, "Eggs", 1, "30.00"))

	orders, err := ms.GetOrders(context.Background())
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	require.Len(t, orders, 2)
	assert.Equal(t, "1", orders[0].ID)
	assert.Equal(t, day1, orders[0].CreatedAt)
	assert.True(t, decimal.NewFromInt(100).Equal(orders[0].Amount))
	require.Len(t, orders[0].Items, 1)
	assert.Equal(t, "7", orders[0].Items[0].ProductID)
	assert.Equal(t, 2, orders[0].Items[0].Quantity)
	assert.True(t, decimal.NewFromInt(50).Equal(orders[0].Items[0].UnitPrice))

	require.Len(t, orders[1].Items, 1)
	assert.Equal(t, "", orders[1].Items[0].ProductID)
	assert.Equal(t, "Eggs", orders[1].Items[0].ProductName)
}

func TestGetOrders_QueryError(t *testing.T) {
	ms, mock := newMockStore(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM orders")).WillReturnError(errors.New("connection reset"))

	_, err := ms.GetOrders(context.Background())
	assert.ErrorContains(t, err, "can't get orders")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetProducts(t *testing.T) {
	ms, mock := newMockStore(t)
	mock.ExpectQuery(regexp.QuoteMeta("LIMIT ?")).
		WithArgs(100).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "stock", "category"}).
			AddRow(1, "Honey", 4, "Pantry").
			AddRow(2, "Eggs", -1, ""))

	products, err := ms.GetProducts(context.Background(), 100)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
	assert.Equal(t, []entity.Product{
		{ID: "1", Name: "Honey", Stock: 4, Category: "Pantry"},
		{ID: "2", Name: "Eggs", Stock: 0, Category: entity.UnknownCategory},
	}, products)
}

func TestGetProducts_NoLimit(t *testing.T) {
	ms, mock := newMockStore(t)
	mock.ExpectQuery(`ORDER BY p\.id$`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "stock", "category"}))

	products, err := ms.GetProducts(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, products)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUsers(t *testing.T) {
	ms, mock := newMockStore(t)
	created := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("FROM users")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "status", "created_at"}).
			AddRow(5, "active", created).
			AddRow(6, "blocked", created))

	users, err := ms.GetUsers(context.Background())
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
	assert.Equal(t, []entity.User{
		{ID: "5", CreatedAt: created, Status: entity.UserStatusActive},
		{ID: "6", CreatedAt: created, Status: "blocked"},
	}, users)
}

func TestPingReports(t *testing.T) {
	ms, mock := newMockStore(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1")).
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))

	assert.NoError(t, ms.Ping(context.Background()))
	require.NoError(t, mock.ExpectationsWereMet())
}
