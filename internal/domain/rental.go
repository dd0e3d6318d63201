package domain

import "time"

// RentalRequest records one rental submission. It is created together with
// its Order and Payment and is immutable afterwards; OrderID is set in the
// same transaction once the order row exists.
type RentalRequest struct {
	ID        int32     `json:"id"`
	UserID    int32     `json:"user_id"`
	ToolID    int32     `json:"tool_id"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"` // inclusive
	Quantity  int32     `json:"quantity"`
	Days      int32     `json:"days"`
	TotalCost int64     `json:"total_cost"`
	OrderID   *int32    `json:"order_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
