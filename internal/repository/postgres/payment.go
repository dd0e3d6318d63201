package postgres

import (
	"context"
	"database/sql"

	"greystone-backend/internal/domain"
	"greystone-backend/internal/repository"
)

type paymentRepository struct {
	db *sql.DB
}

func NewPaymentRepository(db *sql.DB) repository.PaymentRepository {
	return &paymentRepository{db: db}
}

const paymentColumns = `id, order_id, method, amount, status, qpay_invoice_id, qpay_qr_text, qpay_payment_url, bank_reference, created_at`

func scanPayment(row *sql.Row) (*domain.Payment, error) {
	p := &domain.Payment{}
	err := row.Scan(&p.ID, &p.OrderID, &p.Method, &p.Amount, &p.Status, &p.QPayInvoiceID, &p.QPayQRText, &p.QPayPaymentURL, &p.BankReference, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// GetLatestByOrder picks the newest payment row for the order. The schema
// allows several payments per order (retries), so creation time with id as
// the tie-break makes the selection deterministic.
func (r *paymentRepository) GetLatestByOrder(ctx context.Context, orderID int32) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE order_id = $1 ORDER BY created_at DESC, id DESC LIMIT 1`
	return scanPayment(r.db.QueryRowContext(ctx, query, orderID))
}

func (r *paymentRepository) Update(ctx context.Context, p *domain.Payment) error {
	query := `UPDATE payments SET method=$1, status=$2, qpay_invoice_id=$3, qpay_qr_text=$4, qpay_payment_url=$5, bank_reference=$6 WHERE id=$7`
	_, err := r.db.ExecContext(ctx, query, p.Method, p.Status, p.QPayInvoiceID, p.QPayQRText, p.QPayPaymentURL, p.BankReference, p.ID)
	return err
}

