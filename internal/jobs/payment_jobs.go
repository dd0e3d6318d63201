package jobs

import (
	"context"

	"greystone-backend/internal/logger"
)

// SendPaymentReminders emails users whose orders have been sitting unpaid
// past the configured number of days.
func (jr *JobRunner) SendPaymentReminders() {
	jr.runWithRecovery("SendPaymentReminders", func() {
		ctx := context.Background()

		query := `
			SELECT o.id, o.total_amount, u.email, u.name
			FROM payments p
			JOIN orders o ON p.order_id = o.id
			JOIN users u ON o.user_id = u.id
			WHERE p.status = 'unpaid'
			  AND o.status = 'pending'
			  AND p.created_at < NOW() - ($1 * INTERVAL '1 day')
		`

		rows, err := jr.db.QueryContext(ctx, query, jr.config.Scheduler.PaymentReminderAfterDays)
		if err != nil {
			logger.Error("Failed to query unpaid payments", "error", err)
			return
		}
		defer rows.Close()

		count := 0
		for rows.Next() {
			var (
				orderID     int32
				totalAmount int64
				email       string
				name        string
			)
			if err := rows.Scan(&orderID, &totalAmount, &email, &name); err != nil {
				logger.Error("Failed to scan unpaid payment", "error", err)
				continue
			}

			if err := jr.emailSvc.SendPaymentReminder(ctx, email, name, orderID, totalAmount); err != nil {
				logger.Error("Failed to send payment reminder", "order_id", orderID, "error", err)
				continue
			}
			count++
		}

		logger.Info("Payment reminders sent", "count", count)
	})
}

// CancelStaleOrders cancels pending orders whose payment never arrived.
// Settlement is handled outside this system, so the sweep only touches
// orders old enough that the business considers them abandoned.
func (jr *JobRunner) CancelStaleOrders() {
	jr.runWithRecovery("CancelStaleOrders", func() {
		ctx := context.Background()

		query := `
			UPDATE orders
			SET status = 'cancelled'
			WHERE status = 'pending'
			  AND created_at < NOW() - ($1 * INTERVAL '1 day')
			  AND NOT EXISTS (
				SELECT 1 FROM payments p
				WHERE p.order_id = orders.id AND p.status = 'paid'
			  )
			RETURNING id
		`

		rows, err := jr.db.QueryContext(ctx, query, jr.config.Scheduler.CancelPendingAfterDays)
		if err != nil {
			logger.Error("Failed to cancel stale orders", "error", err)
			return
		}
		defer rows.Close()

		count := 0
		for rows.Next() {
			var id int32
			if err := rows.Scan(&id); err != nil {
				logger.Error("Failed to scan cancelled order", "error", err)
				continue
			}
			logger.Debug("Cancelled stale order", "order_id", id)
			count++
		}

		logger.Info("Stale orders cancelled", "count", count)
	})
}
