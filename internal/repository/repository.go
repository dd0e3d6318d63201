package repository

import (
	"context"

	"greystone-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// ToolOrder selects the listing order; call sites differ (the rental page
// lists newest first, the catalog page lists alphabetically).
type ToolOrder string

const (
	ToolOrderIDDesc  ToolOrder = "id_desc"
	ToolOrderNameAsc ToolOrder = "name_asc"
)

type ToolRepository interface {
	GetByID(ctx context.Context, id int32) (*domain.Tool, error)
	List(ctx context.Context, order ToolOrder) ([]domain.Tool, error)
}

type ProductRepository interface {
	GetByPartNumber(ctx context.Context, partNumber string) (*domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
}

type RentalRepository interface {
	// CreateCheckout persists a rental request, its order and its payment as
	// one transaction, then links the rental to the order. Either all four
	// writes commit or none do. IDs are filled in on the passed structs.
	CreateCheckout(ctx context.Context, rental *domain.RentalRequest, order *domain.Order, payment *domain.Payment) error
	GetByID(ctx context.Context, id int32) (*domain.RentalRequest, error)
	ListByUser(ctx context.Context, userID int32) ([]domain.RentalRequest, error)
}

type OrderRepository interface {
	GetByID(ctx context.Context, id int32) (*domain.Order, error)
	ListByUser(ctx context.Context, userID int32) ([]domain.Order, error)
}

type PaymentRepository interface {
	// GetLatestByOrder returns the most recently created payment for an
	// order, or sql.ErrNoRows if the order has none.
	GetLatestByOrder(ctx context.Context, orderID int32) (*domain.Payment, error)
	Update(ctx context.Context, payment *domain.Payment) error
}

type ContactRepository interface {
	Create(ctx context.Context, msg *domain.ContactMessage) error
}
