package postgres

import (
	"database/sql"

	"greystone-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.ToolRepository
	repository.ProductRepository
	repository.RentalRepository
	repository.OrderRepository
	repository.PaymentRepository
	repository.ContactRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                db,
		UserRepository:    NewUserRepository(db),
		ToolRepository:    NewToolRepository(db),
		ProductRepository: NewProductRepository(db),
		RentalRepository:  NewRentalRepository(db),
		OrderRepository:   NewOrderRepository(db),
		PaymentRepository: NewPaymentRepository(db),
		ContactRepository: NewContactRepository(db),
	}
}
