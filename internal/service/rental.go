package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"greystone-backend/internal/domain"
	"greystone-backend/internal/logger"
	"greystone-backend/internal/pricing"
	"greystone-backend/internal/repository"
)

const dateLayout = "2006-01-02"

type rentalService struct {
	rentalRepo repository.RentalRepository
	toolRepo   repository.ToolRepository
}

func NewRentalService(rentalRepo repository.RentalRepository, toolRepo repository.ToolRepository) RentalService {
	return &rentalService{
		rentalRepo: rentalRepo,
		toolRepo:   toolRepo,
	}
}

// SubmitRentalRequest runs the checkout flow. Validation order matters: tool
// lookup, then date parsing, then date range, then quantity, each failure
// short-circuiting before anything is written. The quantity check reads the tool's static
// stock count; nothing decrements it, so two concurrent submissions for the
// same tool can both pass. Known gap carried over from the current business
// rules rather than fixed here.
func (s *rentalService) SubmitRentalRequest(ctx context.Context, userID, toolID int32, startDateStr, endDateStr string, quantity int32) (*domain.Order, error) {
	tool, err := s.toolRepo.GetByID(ctx, toolID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, persistenceError(err)
	}

	start, err := time.Parse(dateLayout, startDateStr)
	if err != nil {
		return nil, ErrInvalidInput
	}
	end, err := time.Parse(dateLayout, endDateStr)
	if err != nil {
		return nil, ErrInvalidInput
	}

	if end.Before(start) {
		return nil, ErrInvalidDateRange
	}

	if quantity < 1 || quantity > tool.AvailableQty {
		return nil, ErrInvalidQuantity
	}

	days := pricing.RentalDays(start, end)
	// Always the 1-7 day tier price; the 8-30 day tier exists on the tool
	// but the business has never charged it.
	totalCost := pricing.RentalCost(days, tool.DailyPrice, quantity)

	rental := &domain.RentalRequest{
		UserID:    userID,
		ToolID:    tool.ID,
		StartDate: start,
		EndDate:   end,
		Quantity:  quantity,
		Days:      days,
		TotalCost: totalCost,
	}
	order := &domain.Order{
		UserID:      userID,
		TotalAmount: totalCost,
		Status:      domain.OrderStatusPending,
	}
	payment := &domain.Payment{
		Amount: totalCost,
		Status: domain.PaymentStatusUnpaid,
	}

	if err := s.rentalRepo.CreateCheckout(ctx, rental, order, payment); err != nil {
		return nil, persistenceError(err)
	}

	logger.Info("rental checkout created",
		"user_id", userID,
		"tool_id", tool.ID,
		"rental_id", rental.ID,
		"order_id", order.ID,
		"days", days,
		"total_cost", totalCost,
	)
	return order, nil
}

func (s *rentalService) ListMyRentals(ctx context.Context, userID int32) ([]domain.RentalRequest, error) {
	rentals, err := s.rentalRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, persistenceError(err)
	}
	return rentals, nil
}
