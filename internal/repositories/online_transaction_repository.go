package repositories

import (
	"context"

	"lunchbox-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type OnlineTransactionRepository struct {
	DB *pgxpool.Pool
}

func NewOnlineTransactionRepository(db *pgxpool.Pool) *OnlineTransactionRepository {
	return &OnlineTransactionRepository{DB: db}
}

// Create stores a gateway order record in CREATED state
func (r *OnlineTransactionRepository) Create(ctx context.Context, tx *models.OnlineTransaction) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO online_transactions(razorpay_order_id, invoice_id, amount, status)
		 VALUES($1, $2, $3, $4)
		 RETURNING id, created_at`,
		tx.RazorpayOrderID, tx.InvoiceID, tx.Amount, models.OnlineTxStatusCreated,
	).Scan(&tx.ID, &tx.CreatedAt)
}

// GetByOrderID retrieves a transaction by its Razorpay order id
func (r *OnlineTransactionRepository) GetByOrderID(ctx context.Context, orderID string) (*models.OnlineTransaction, error) {
	var tx models.OnlineTransaction
	err := r.DB.QueryRow(ctx,
		`SELECT id, razorpay_order_id, COALESCE(razorpay_payment_id, ''), invoice_id,
		        amount, status, COALESCE(failure_reason, ''), created_at, completed_at
		 FROM online_transactions WHERE razorpay_order_id = $1`, orderID,
	).Scan(&tx.ID, &tx.RazorpayOrderID, &tx.RazorpayPaymentID, &tx.InvoiceID,
		&tx.Amount, &tx.Status, &tx.FailureReason, &tx.CreatedAt, &tx.CompletedAt)
	if err != nil {
		return nil, err
	}
	return &tx, nil
}

// UpdatePaymentSuccess marks a transaction captured
func (r *OnlineTransactionRepository) UpdatePaymentSuccess(ctx context.Context, orderID, paymentID string) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE online_transactions
		 SET status = $1, razorpay_payment_id = $2, completed_at = NOW()
		 WHERE razorpay_order_id = $3`,
		models.OnlineTxStatusSuccess, paymentID, orderID,
	)
	return err
}

// UpdatePaymentFailed marks a transaction failed with a reason
func (r *OnlineTransactionRepository) UpdatePaymentFailed(ctx context.Context, orderID, reason string) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE online_transactions
		 SET status = $1, failure_reason = $2, completed_at = NOW()
		 WHERE razorpay_order_id = $3`,
		models.OnlineTxStatusFailed, reason, orderID,
	)
	return err
}

// IsPaymentProcessed reports whether a webhook for this order was already
// handled (webhooks retry; the capture must stay idempotent)
func (r *OnlineTransactionRepository) IsPaymentProcessed(ctx context.Context, orderID string) (bool, error) {
	var processed bool
	err := r.DB.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM online_transactions WHERE razorpay_order_id = $1 AND status = $2)`,
		orderID, models.OnlineTxStatusSuccess,
	).Scan(&processed)
	return processed, err
}
