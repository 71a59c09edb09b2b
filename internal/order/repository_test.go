package order

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_Create(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO orders \(external_id, user_id, total, status\)`).
			WithArgs("ext-1", 1, 50.0, string(StatusCreated)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
				AddRow(7, now, now))
		mock.ExpectQuery(`INSERT INTO order_items \(order_id, product_id, quantity, price\)`).
			WithArgs(7, 1, 2, 25.0).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))
		mock.ExpectCommit()

		o := &Order{
			ExternalID: "ext-1",
			UserID:     1,
			Total:      50.0,
			Status:     StatusCreated,
			Items:      []OrderItem{{ProductID: 1, Quantity: 2, Price: 25.0}},
		}

		err = repo.Create(ctx, o)
		require.NoError(t, err)
		assert.Equal(t, uint(7), o.ID)
		assert.Equal(t, uint(11), o.Items[0].ID)
		assert.Equal(t, uint(7), o.Items[0].OrderID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ItemInsertFailureRollsBack", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO orders`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
				AddRow(7, now, now))
		mock.ExpectQuery(`INSERT INTO order_items`).
			WillReturnError(errors.New("constraint violation"))
		mock.ExpectRollback()

		o := &Order{
			ExternalID: "ext-1",
			UserID:     1,
			Status:     StatusCreated,
			Items:      []OrderItem{{ProductID: 1, Quantity: 2, Price: 25.0}},
		}

		err = repo.Create(ctx, o)
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectExec(`UPDATE orders SET status = \$1, updated_at = NOW\(\) WHERE id = \$2`).
			WithArgs(string(StatusPaid), 7).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.UpdateStatus(ctx, 7, StatusPaid))
	})

	t.Run("NotFound", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectExec(`UPDATE orders`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.UpdateStatus(ctx, 404, StatusFailed), ErrOrderNotFound)
	})
}

func TestRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectQuery(`SELECT id, external_id, user_id, total, status, created_at, updated_at\s+FROM orders WHERE id = \$1`).
			WithArgs(7).
			WillReturnRows(sqlmock.NewRows([]string{"id", "external_id", "user_id", "total", "status", "created_at", "updated_at"}).
				AddRow(7, "ext-1", 1, 50.0, "PAID", now, now))
		mock.ExpectQuery(`SELECT id, order_id, product_id, quantity, price\s+FROM order_items WHERE order_id = \$1`).
			WithArgs(uint(7)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "order_id", "product_id", "quantity", "price"}).
				AddRow(11, 7, 1, 2, 25.0))

		o, err := repo.GetByID(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, StatusPaid, o.Status)
		require.Len(t, o.Items, 1)
		assert.Equal(t, 25.0, o.Items[0].Price)
	})

	t.Run("NotFound", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectQuery(`SELECT id, external_id, user_id, total, status, created_at, updated_at\s+FROM orders WHERE id = \$1`).
			WithArgs(404).
			WillReturnRows(sqlmock.NewRows([]string{"id", "external_id", "user_id", "total", "status", "created_at", "updated_at"}))

		o, err := repo.GetByID(ctx, 404)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})
}

func TestRepository_GetAll(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewRepository(db)

	mock.ExpectQuery(`SELECT id, external_id, user_id, total, status, created_at, updated_at\s+FROM orders ORDER BY id`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "external_id", "user_id", "total", "status", "created_at", "updated_at"}).
			AddRow(1, "ext-1", 1, 50.0, "PAID", now, now).
			AddRow(2, "ext-2", 1, 15.0, "FAILED", now, now))
	mock.ExpectQuery(`SELECT id, order_id, product_id, quantity, price`).
		WithArgs(uint(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "order_id", "product_id", "quantity", "price"}).
			AddRow(11, 1, 1, 2, 25.0))
	mock.ExpectQuery(`SELECT id, order_id, product_id, quantity, price`).
		WithArgs(uint(2)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "order_id", "product_id", "quantity", "price"}).
			AddRow(12, 2, 2, 1, 15.0))

	orders, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "ext-1", orders[0].ExternalID)
	assert.Len(t, orders[0].Items, 1)
	assert.Equal(t, StatusFailed, orders[1].Status)
}
