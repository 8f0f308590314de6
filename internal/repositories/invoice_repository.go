package repositories

import (
	"context"
	"errors"

	"lunchbox-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrInvoiceNotDue is returned when a payment targets an invoice that is
// not in the DUE state (business rejection, not a transport failure).
var ErrInvoiceNotDue = errors.New("invoice is not due")

type InvoiceRepository struct {
	DB *pgxpool.Pool
}

func NewInvoiceRepository(db *pgxpool.Pool) *InvoiceRepository {
	return &InvoiceRepository{DB: db}
}

const invoiceColumns = `id, subscription_id, to_char(period_start, 'YYYY-MM-DD'),
	to_char(period_end, 'YYYY-MM-DD'), amount, status, COALESCE(method, ''), paid_at`

// Get retrieves an invoice by ID
func (r *InvoiceRepository) Get(ctx context.Context, id int) (*models.Invoice, error) {
	var inv models.Invoice
	err := r.DB.QueryRow(ctx,
		`SELECT `+invoiceColumns+` FROM invoices WHERE id = $1`, id,
	).Scan(&inv.ID, &inv.SubscriptionID, &inv.PeriodStart, &inv.PeriodEnd,
		&inv.Amount, &inv.Status, &inv.Method, &inv.PaidAt)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

// ListBySubscription returns invoices for a subscription, newest first
func (r *InvoiceRepository) ListBySubscription(ctx context.Context, subscriptionID int) ([]*models.Invoice, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+invoiceColumns+` FROM invoices
		 WHERE subscription_id = $1 ORDER BY period_start DESC, id DESC`, subscriptionID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanInvoices(rows)
}

// ListAll returns every invoice (analytics input)
func (r *InvoiceRepository) ListAll(ctx context.Context) ([]*models.Invoice, error) {
	rows, err := r.DB.Query(ctx, `SELECT `+invoiceColumns+` FROM invoices`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanInvoices(rows)
}

// Pay transitions a DUE invoice to PAID, recording method and timestamp.
// The guarded UPDATE only matches DUE rows, so the amount never changes
// and a non-DUE invoice yields ErrInvoiceNotDue.
func (r *InvoiceRepository) Pay(ctx context.Context, id int, method string) (*models.Invoice, error) {
	var inv models.Invoice
	err := r.DB.QueryRow(ctx,
		`UPDATE invoices
		 SET status = $1, method = $2, paid_at = NOW()
		 WHERE id = $3 AND status = $4
		 RETURNING id, subscription_id, to_char(period_start, 'YYYY-MM-DD'),
		           to_char(period_end, 'YYYY-MM-DD'), amount, status, COALESCE(method, ''), paid_at`,
		models.InvoicePaid, method, id, models.InvoiceDue,
	).Scan(&inv.ID, &inv.SubscriptionID, &inv.PeriodStart, &inv.PeriodEnd,
		&inv.Amount, &inv.Status, &inv.Method, &inv.PaidAt)
	if err == nil {
		return &inv, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	// No DUE row matched: distinguish "not due" from "not found"
	if _, getErr := r.Get(ctx, id); getErr != nil {
		return nil, getErr
	}
	return nil, ErrInvoiceNotDue
}

// MarkFailed records a declined payment attempt on a DUE invoice
func (r *InvoiceRepository) MarkFailed(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE invoices SET status = $1 WHERE id = $2 AND status = $3`,
		models.InvoiceFailed, id, models.InvoiceDue,
	)
	return err
}

func scanInvoices(rows pgx.Rows) ([]*models.Invoice, error) {
	var invoices []*models.Invoice
	for rows.Next() {
		var inv models.Invoice
		err := rows.Scan(&inv.ID, &inv.SubscriptionID, &inv.PeriodStart, &inv.PeriodEnd,
			&inv.Amount, &inv.Status, &inv.Method, &inv.PaidAt)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, &inv)
	}
	return invoices, rows.Err()
}
