package domain

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusCancelled OrderStatus = "cancelled"
	OrderStatusCompleted OrderStatus = "completed"
)

type PaymentStatus string

const (
	PaymentStatusUnpaid PaymentStatus = "unpaid"
	PaymentStatusPaid   PaymentStatus = "paid"
	PaymentStatusFailed PaymentStatus = "failed"
)

type PaymentMethod string

const (
	PaymentMethodBank PaymentMethod = "bank"
	PaymentMethodQPay PaymentMethod = "qpay"
)

type Order struct {
	ID          int32       `json:"id"`
	UserID      int32       `json:"user_id"`
	TotalAmount int64       `json:"total_amount"`
	Status      OrderStatus `json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
}

// Payment is one settlement attempt against an order. Method and the
// gateway fields stay NULL until a method is chosen; status transitions are
// driven by the external settlement process.
type Payment struct {
	ID      int32          `json:"id"`
	OrderID int32          `json:"order_id"`
	Method  *PaymentMethod `json:"method,omitempty"`
	Amount  int64          `json:"amount"`
	Status  PaymentStatus  `json:"status"`

	QPayInvoiceID  *string `json:"qpay_invoice_id,omitempty"`
	QPayQRText     *string `json:"qpay_qr_text,omitempty"`
	QPayPaymentURL *string `json:"qpay_payment_url,omitempty"`

	BankReference *string `json:"bank_reference,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
