package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"greystone-backend/internal/domain"
	"greystone-backend/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestRentalRepository_CreateCheckout(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewRentalRepository(db)
	ctx := context.Background()

	newCheckout := func() (*domain.RentalRequest, *domain.Order, *domain.Payment) {
		rental := &domain.RentalRequest{
			UserID:    3,
			ToolID:    2,
			StartDate: time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2026, 5, 3, 0, 0, 0, 0, time.UTC),
			Quantity:  2,
			Days:      3,
			TotalCost: 60000,
		}
		order := &domain.Order{
			UserID:      3,
			TotalAmount: 60000,
			Status:      domain.OrderStatusPending,
		}
		payment := &domain.Payment{
			Amount: 60000,
			Status: domain.PaymentStatusUnpaid,
		}
		return rental, order, payment
	}

	t.Run("Success", func(t *testing.T) {
		rental, order, payment := newCheckout()

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO rental_requests").
			WithArgs(rental.UserID, rental.ToolID, rental.StartDate, rental.EndDate, rental.Quantity, rental.Days, rental.TotalCost, sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10))
		mock.ExpectQuery("INSERT INTO orders").
			WithArgs(order.UserID, order.TotalAmount, order.Status, sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(20))
		mock.ExpectQuery("INSERT INTO payments").
			WithArgs(int32(20), payment.Amount, payment.Status, sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(30))
		mock.ExpectExec("UPDATE rental_requests SET order_id").
			WithArgs(int32(20), int32(10)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.CreateCheckout(ctx, rental, order, payment)
		assert.NoError(t, err)
		assert.Equal(t, int32(10), rental.ID)
		assert.Equal(t, int32(20), order.ID)
		assert.Equal(t, int32(30), payment.ID)
		assert.Equal(t, int32(20), payment.OrderID)
		if assert.NotNil(t, rental.OrderID) {
			assert.Equal(t, int32(20), *rental.OrderID)
		}
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Order insert failure rolls back", func(t *testing.T) {
		rental, order, payment := newCheckout()

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO rental_requests").
			WithArgs(rental.UserID, rental.ToolID, rental.StartDate, rental.EndDate, rental.Quantity, rental.Days, rental.TotalCost, sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))
		mock.ExpectQuery("INSERT INTO orders").
			WithArgs(order.UserID, order.TotalAmount, order.Status, sqlmock.AnyArg()).
			WillReturnError(errors.New("connection reset"))
		mock.ExpectRollback()

		err := repo.CreateCheckout(ctx, rental, order, payment)
		assert.Error(t, err)
		assert.Nil(t, rental.OrderID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Link update failure rolls back", func(t *testing.T) {
		rental, order, payment := newCheckout()

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO rental_requests").
			WithArgs(rental.UserID, rental.ToolID, rental.StartDate, rental.EndDate, rental.Quantity, rental.Days, rental.TotalCost, sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(12))
		mock.ExpectQuery("INSERT INTO orders").
			WithArgs(order.UserID, order.TotalAmount, order.Status, sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(22))
		mock.ExpectQuery("INSERT INTO payments").
			WithArgs(int32(22), payment.Amount, payment.Status, sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(32))
		mock.ExpectExec("UPDATE rental_requests SET order_id").
			WithArgs(int32(22), int32(12)).
			WillReturnError(errors.New("deadlock detected"))
		mock.ExpectRollback()

		err := repo.CreateCheckout(ctx, rental, order, payment)
		assert.Error(t, err)
		assert.Nil(t, rental.OrderID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRentalRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewRentalRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "user_id", "tool_id", "start_date", "end_date", "quantity", "days", "total_cost", "order_id", "created_at"}).
			AddRow(1, 3, 2, time.Now(), time.Now(), 2, 3, 60000, 20, time.Now())

		mock.ExpectQuery("SELECT (.+) FROM rental_requests WHERE id = \\$1").
			WithArgs(int32(1)).
			WillReturnRows(rows)

		rental, err := repo.GetByID(ctx, 1)
		assert.NoError(t, err)
		assert.NotNil(t, rental)
		assert.Equal(t, int32(1), rental.ID)
		if assert.NotNil(t, rental.OrderID) {
			assert.Equal(t, int32(20), *rental.OrderID)
		}
	})
}

func TestRentalRepository_ListByUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewRentalRepository(db)
	ctx := context.Background()

	t.Run("Returns user rentals newest first", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "user_id", "tool_id", "start_date", "end_date", "quantity", "days", "total_cost", "order_id", "created_at"}).
			AddRow(2, 3, 2, time.Now(), time.Now(), 1, 1, 10000, nil, time.Now()).
			AddRow(1, 3, 2, time.Now(), time.Now(), 2, 3, 60000, 20, time.Now())

		mock.ExpectQuery("SELECT (.+) FROM rental_requests WHERE user_id = \\$1").
			WithArgs(int32(3)).
			WillReturnRows(rows)

		rentals, err := repo.ListByUser(ctx, 3)
		assert.NoError(t, err)
		assert.Len(t, rentals, 2)
		assert.Equal(t, int32(2), rentals[0].ID)
		assert.Nil(t, rentals[0].OrderID)
	})

	t.Run("No rentals", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "user_id", "tool_id", "start_date", "end_date", "quantity", "days", "total_cost", "order_id", "created_at"})

		mock.ExpectQuery("SELECT (.+) FROM rental_requests WHERE user_id = \\$1").
			WithArgs(int32(9)).
			WillReturnRows(rows)

		rentals, err := repo.ListByUser(ctx, 9)
		assert.NoError(t, err)
		assert.Empty(t, rentals)
	})
}
