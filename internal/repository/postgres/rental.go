package postgres

import (
	"context"
	"database/sql"
	"time"

	"greystone-backend/internal/domain"
	"greystone-backend/internal/repository"
)

type rentalRepository struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

// CreateCheckout writes the rental request, order and payment rows and links
// the rental to the order, all inside one transaction. The rollback is
// deferred so any failed step undoes everything already written.
func (r *rentalRepository) CreateCheckout(ctx context.Context, rental *domain.RentalRequest, order *domain.Order, payment *domain.Payment) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := time.Now()

	rental.CreatedAt = now
	query := `INSERT INTO rental_requests (user_id, tool_id, start_date, end_date, quantity, days, total_cost, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	err = tx.QueryRowContext(ctx, query, rental.UserID, rental.ToolID, rental.StartDate, rental.EndDate, rental.Quantity, rental.Days, rental.TotalCost, now).Scan(&rental.ID)
	if err != nil {
		return err
	}

	order.CreatedAt = now
	query = `INSERT INTO orders (user_id, total_amount, status, created_at)
	         VALUES ($1, $2, $3, $4) RETURNING id`
	err = tx.QueryRowContext(ctx, query, order.UserID, order.TotalAmount, order.Status, now).Scan(&order.ID)
	if err != nil {
		return err
	}

	payment.OrderID = order.ID
	payment.CreatedAt = now
	query = `INSERT INTO payments (order_id, amount, status, created_at)
	         VALUES ($1, $2, $3, $4) RETURNING id`
	err = tx.QueryRowContext(ctx, query, payment.OrderID, payment.Amount, payment.Status, now).Scan(&payment.ID)
	if err != nil {
		return err
	}

	query = `UPDATE rental_requests SET order_id = $1 WHERE id = $2`
	if _, err := tx.ExecContext(ctx, query, order.ID, rental.ID); err != nil {
		return err
	}
	rental.OrderID = &order.ID

	return tx.Commit()
}

const rentalColumns = `id, user_id, tool_id, start_date, end_date, quantity, days, total_cost, order_id, created_at`

func (r *rentalRepository) GetByID(ctx context.Context, id int32) (*domain.RentalRequest, error) {
	rt := &domain.RentalRequest{}
	query := `SELECT ` + rentalColumns + ` FROM rental_requests WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&rt.ID, &rt.UserID, &rt.ToolID, &rt.StartDate, &rt.EndDate, &rt.Quantity, &rt.Days, &rt.TotalCost, &rt.OrderID, &rt.CreatedAt)
	if err != nil {
		return nil, err
	}
	return rt, nil
}

func (r *rentalRepository) ListByUser(ctx context.Context, userID int32) ([]domain.RentalRequest, error) {
	query := `SELECT ` + rentalColumns + ` FROM rental_requests WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rentals []domain.RentalRequest
	for rows.Next() {
		var rt domain.RentalRequest
		if err := rows.Scan(&rt.ID, &rt.UserID, &rt.ToolID, &rt.StartDate, &rt.EndDate, &rt.Quantity, &rt.Days, &rt.TotalCost, &rt.OrderID, &rt.CreatedAt); err != nil {
			return nil, err
		}
		rentals = append(rentals, rt)
	}
	return rentals, rows.Err()
}
