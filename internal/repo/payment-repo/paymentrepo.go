package paymentrepo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/ormonbek/kassabot/internal/domain"
	"github.com/ormonbek/kassabot/internal/pg"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

const paymentColumns = `id, amount, bank, payment_date, notification_text, is_processed, request_id, created_at`

func scanPayment(row pgx.Row) (*domain.IncomingPayment, error) {
	var p domain.IncomingPayment
	err := row.Scan(
		&p.ID, &p.Amount, &p.Bank, &p.PaymentDate, &p.NotificationText,
		&p.IsProcessed, &p.RequestID, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) Save(ctx context.Context, payment *domain.IncomingPayment) error {
	query := `
        INSERT INTO incoming_payments (id, amount, bank, payment_date, notification_text, is_processed, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `
	_, err := r.db.Exec(ctx, query,
		payment.ID, payment.Amount, payment.Bank, payment.PaymentDate,
		payment.NotificationText, payment.IsProcessed, payment.CreatedAt,
	)
	if err != nil {
		zap.L().Error("can't save incoming payment", zap.Error(err))
		return err
	}
	return nil
}

// FindDuplicate looks for a payment with the same amount value, the same bank
// (both-null counts as same) and a payment date within ±window. Such a row is
// the same bank event arriving twice.
func (r *Repository) FindDuplicate(ctx context.Context, amount decimal.Decimal, bank *string, paymentDate time.Time, window time.Duration) (*domain.IncomingPayment, error) {
	query := `
        SELECT ` + paymentColumns + `
        FROM incoming_payments
        WHERE amount = $1
          AND bank IS NOT DISTINCT FROM $2
          AND payment_date BETWEEN $3 AND $4
        ORDER BY payment_date ASC
        LIMIT 1
    `
	payment, err := scanPayment(r.db.QueryRow(ctx, query, amount, bank, paymentDate.Add(-window), paymentDate.Add(window)))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't check payment duplicate", zap.Error(err))
		return nil, err
	}
	return payment, nil
}

// FindCandidates returns unprocessed payments inside the match window whose
// amount is within the query-layer tolerance, oldest payment first. The
// stricter exact-cent check happens in the service on top of this.
func (r *Repository) FindCandidates(ctx context.Context, amount decimal.Decimal, from, to time.Time, tolerance decimal.Decimal) ([]domain.IncomingPayment, error) {
	query := `
        SELECT ` + paymentColumns + `
        FROM incoming_payments
        WHERE is_processed = FALSE
          AND payment_date BETWEEN $2 AND $3
          AND abs(amount - $1) <= $4
        ORDER BY payment_date ASC
    `
	rows, err := r.db.Query(ctx, query, amount, from, to, tolerance)
	if err != nil {
		zap.L().Error("can't get payment candidates", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var payments []domain.IncomingPayment
	for rows.Next() {
		payment, err := scanPayment(rows)
		if err != nil {
			zap.L().Error("can't scan payment row", zap.Error(err))
			return nil, err
		}
		payments = append(payments, *payment)
	}
	return payments, nil
}

// MarkProcessed consumes a payment for a request. The is_processed = FALSE
// guard means a zero-row update is a lost race, not an error.
func (r *Repository) MarkProcessed(ctx context.Context, id uuid.UUID, requestID int) (bool, error) {
	query := `
        UPDATE incoming_payments
        SET is_processed = TRUE, request_id = $2
        WHERE id = $1 AND is_processed = FALSE
    `
	tag, err := r.db.Exec(ctx, query, id, requestID)
	if err != nil {
		zap.L().Error("failed to mark payment processed", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// UnmarkProcessed returns a payment to the pool after a failed settlement so
// a later retry or manual reconciliation can use it.
func (r *Repository) UnmarkProcessed(ctx context.Context, id uuid.UUID) error {
	query := `
        UPDATE incoming_payments
        SET is_processed = FALSE, request_id = NULL
        WHERE id = $1
    `
	if _, err := r.db.Exec(ctx, query, id); err != nil {
		zap.L().Error("failed to unmark payment", zap.Error(err))
		return err
	}
	return nil
}

// HasProcessedForRequest reports whether some payment was already consumed
// for the request.
func (r *Repository) HasProcessedForRequest(ctx context.Context, requestID int) (bool, error) {
	query := `
        SELECT EXISTS (
            SELECT 1 FROM incoming_payments
            WHERE request_id = $1 AND is_processed = TRUE
        )
    `
	var exists bool
	if err := r.db.QueryRow(ctx, query, requestID).Scan(&exists); err != nil {
		zap.L().Error("can't check processed payment for request", zap.Error(err))
		return false, err
	}
	return exists, nil
}

// LockIngest takes a transaction-scoped advisory lock for a (amount, bank)
// pair so the dedup check and the insert act atomically.
func (r *Repository) LockIngest(ctx context.Context, amount decimal.Decimal, bank *string) error {
	key := "payment:" + amount.String()
	if bank != nil {
		key += ":" + *bank
	}
	if _, err := r.db.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, key); err != nil {
		zap.L().Error("can't take ingest advisory lock", zap.Error(err))
		return err
	}
	return nil
}
