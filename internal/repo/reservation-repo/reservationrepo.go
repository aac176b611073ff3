package reservationrepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
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

func (r *Repository) Save(ctx context.Context, res *domain.Reservation) error {
	query := `
        INSERT INTO reservations (id, user_id, bookmaker, account_id, bank, amount, request_type, status, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    `
	_, err := r.db.Exec(ctx, query,
		res.ID, res.UserID, res.Bookmaker, res.AccountID, res.Bank,
		res.Amount, res.RequestType, res.Status, res.CreatedAt,
	)
	if err != nil {
		zap.L().Error("can't save reservation", zap.Error(err))
		return err
	}
	return nil
}

// CountByAmountSince counts reservations holding the amount inside the
// relevance window. Older rows are simply ignored; there is no expired state.
func (r *Repository) CountByAmountSince(ctx context.Context, amount decimal.Decimal, requestType domain.RequestType, since time.Time) (int, error) {
	query := `
        SELECT count(*)
        FROM reservations
        WHERE request_type = $2 AND amount = $1 AND created_at >= $3
    `
	var count int
	if err := r.db.QueryRow(ctx, query, amount, requestType, since).Scan(&count); err != nil {
		zap.L().Error("can't count reservations by amount", zap.Error(err))
		return 0, err
	}
	return count, nil
}

// Promote links a reservation to the request created from it.
func (r *Repository) Promote(ctx context.Context, id uuid.UUID, requestID int) (bool, error) {
	query := `
        UPDATE reservations
        SET status = 'converted', created_request_id = $2
        WHERE id = $1 AND status <> 'converted'
    `
	tag, err := r.db.Exec(ctx, query, id, requestID)
	if err != nil {
		zap.L().Error("failed to promote reservation", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// LockAmount takes a transaction-scoped advisory lock over the integer base
// of the amount, making the Allocator's probe-then-insert atomic against
// concurrent allocations of the same base.
func (r *Repository) LockAmount(ctx context.Context, requestType domain.RequestType, base int64) error {
	key := fmt.Sprintf("amount:%s:%d", requestType, base)
	if _, err := r.db.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, key); err != nil {
		zap.L().Error("can't take amount advisory lock", zap.Error(err))
		return err
	}
	return nil
}
