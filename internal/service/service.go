package service

import (
	"context"

	"greystone-backend/internal/domain"
	"greystone-backend/internal/repository"
)

type AuthService interface {
	Signup(ctx context.Context, name, email, password string) (*domain.User, string, string, error) // user, access, refresh
	Login(ctx context.Context, email, password string) (string, string, error)
	RefreshToken(ctx context.Context, refreshToken string) (string, string, error)
}

type CatalogService interface {
	GetTool(ctx context.Context, id int32) (*domain.Tool, error)
	ListTools(ctx context.Context, order repository.ToolOrder) ([]domain.Tool, error)
	GetProduct(ctx context.Context, partNumber string) (*domain.Product, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
}

type RentalService interface {
	// SubmitRentalRequest validates the request, prices it and atomically
	// creates the rental request, its order and its unpaid payment. The
	// created order is returned for the checkout redirect.
	SubmitRentalRequest(ctx context.Context, userID, toolID int32, startDate, endDate string, quantity int32) (*domain.Order, error)
	ListMyRentals(ctx context.Context, userID int32) ([]domain.RentalRequest, error)
}

type CheckoutService interface {
	GetCheckoutView(ctx context.Context, userID, orderID int32) (*domain.Order, *domain.Payment, error)
	ChoosePaymentMethod(ctx context.Context, userID, orderID int32, method domain.PaymentMethod) (*domain.Payment, error)
}

type ContactService interface {
	SubmitMessage(ctx context.Context, name, email, subject, message string) (*domain.ContactMessage, error)
}

type EmailService interface {
	SendContactConfirmation(ctx context.Context, email, name, subject string) error
	SendPaymentReminder(ctx context.Context, email, name string, orderID int32, amount int64) error
}
