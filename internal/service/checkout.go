package service

import (
	"context"
	"database/sql"
	"errors"

	"greystone-backend/internal/domain"
	"greystone-backend/internal/repository"

	"github.com/google/uuid"
)

type checkoutService struct {
	orderRepo   repository.OrderRepository
	paymentRepo repository.PaymentRepository
}

func NewCheckoutService(orderRepo repository.OrderRepository, paymentRepo repository.PaymentRepository) CheckoutService {
	return &checkoutService{
		orderRepo:   orderRepo,
		paymentRepo: paymentRepo,
	}
}

// GetCheckoutView loads an order for display together with its newest
// payment. Only the order's owner may see it. A missing payment is not an
// error; the view simply has no payment yet.
func (s *checkoutService) GetCheckoutView(ctx context.Context, userID, orderID int32) (*domain.Order, *domain.Payment, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, persistenceError(err)
	}

	if order.UserID != userID {
		return nil, nil, ErrForbidden
	}

	payment, err := s.paymentRepo.GetLatestByOrder(ctx, order.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return order, nil, nil
		}
		return nil, nil, persistenceError(err)
	}
	return order, payment, nil
}

// ChoosePaymentMethod records the method the customer picked for the
// order's open payment. A bank transfer gets a reference code so the
// incoming wire can be matched; QPay fields stay empty until the gateway
// issues an invoice.
func (s *checkoutService) ChoosePaymentMethod(ctx context.Context, userID, orderID int32, method domain.PaymentMethod) (*domain.Payment, error) {
	if method != domain.PaymentMethodBank && method != domain.PaymentMethodQPay {
		return nil, ErrInvalidInput
	}

	_, payment, err := s.GetCheckoutView(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, ErrNotFound
	}
	if payment.Status != domain.PaymentStatusUnpaid {
		return nil, ErrInvalidInput
	}

	payment.Method = &method
	if method == domain.PaymentMethodBank && payment.BankReference == nil {
		ref := "GS-" + uuid.NewString()
		payment.BankReference = &ref
	}

	if err := s.paymentRepo.Update(ctx, payment); err != nil {
		return nil, persistenceError(err)
	}
	return payment, nil
}
