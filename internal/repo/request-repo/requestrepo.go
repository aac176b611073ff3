package requestrepo

import (
	"context"
	"errors"
	"time"

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

const requestColumns = `id, user_id, bookmaker, account_id, amount, request_type, status, status_detail, casino_error, processed_by, created_at, processed_at`

func scanRequest(row pgx.Row) (*domain.Request, error) {
	var req domain.Request
	err := row.Scan(
		&req.ID, &req.UserID, &req.Bookmaker, &req.AccountID, &req.Amount,
		&req.RequestType, &req.Status, &req.StatusDetail, &req.CasinoError,
		&req.ProcessedBy, &req.CreatedAt, &req.ProcessedAt,
	)
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *Repository) Save(ctx context.Context, req *domain.Request) error {
	query := `
        INSERT INTO requests (user_id, bookmaker, account_id, amount, request_type, status, status_detail, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query,
		req.UserID, req.Bookmaker, req.AccountID, req.Amount,
		req.RequestType, req.Status, req.StatusDetail, req.CreatedAt,
	).Scan(&req.ID)
	if err != nil {
		zap.L().Error("can't save request", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Request, error) {
	query := `
        SELECT ` + requestColumns + `
        FROM requests
        WHERE id = $1
    `
	req, err := scanRequest(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find request", zap.Error(err))
		return nil, err
	}
	return req, nil
}

// CountDepositsByAmountSince counts deposit requests holding exactly the
// given amount inside the collision window. The Allocator treats any hit as
// "amount in flight".
func (r *Repository) CountDepositsByAmountSince(ctx context.Context, amount decimal.Decimal, since time.Time) (int, error) {
	query := `
        SELECT count(*)
        FROM requests
        WHERE request_type = 'deposit' AND amount = $1 AND created_at >= $2
    `
	var count int
	if err := r.db.QueryRow(ctx, query, amount, since).Scan(&count); err != nil {
		zap.L().Error("can't count deposits by amount", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *Repository) FindPendingDeposits(ctx context.Context, limit uint32) ([]domain.Request, error) {
	query := `
        SELECT ` + requestColumns + `
        FROM requests
        WHERE status = 'pending' AND request_type = 'deposit'
        ORDER BY created_at ASC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, int(limit))
	if err != nil {
		zap.L().Error("can't get pending deposits", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var requests []domain.Request
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			zap.L().Error("can't scan request row", zap.Error(err))
			return nil, err
		}
		requests = append(requests, *req)
	}
	return requests, nil
}

// Settle performs the success transition. The WHERE status = 'pending' guard
// makes it safe under concurrent attempts: zero affected rows means another
// attempt already won.
func (r *Repository) Settle(ctx context.Context, id int, status, processedBy string, processedAt time.Time) (bool, error) {
	query := `
        UPDATE requests
        SET status = $2, casino_error = NULL, processed_by = $3, processed_at = $4
        WHERE id = $1 AND status = 'pending'
    `
	tag, err := r.db.Exec(ctx, query, id, status, processedBy, processedAt)
	if err != nil {
		zap.L().Error("failed to settle request", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// ClaimForSettlement stamps processed_by as an in-flight marker before the
// vendor call. Only one concurrent attempt gets a non-zero row count; the
// status = 'pending' guard keeps terminal requests out entirely.
func (r *Repository) ClaimForSettlement(ctx context.Context, id int, tag string) (bool, error) {
	query := `
        UPDATE requests
        SET processed_by = $2
        WHERE id = $1 AND status = 'pending' AND processed_by IS DISTINCT FROM $2
    `
	tag2, err := r.db.Exec(ctx, query, id, tag)
	if err != nil {
		zap.L().Error("failed to claim request for settlement", zap.Error(err))
		return false, err
	}
	return tag2.RowsAffected() > 0, nil
}

// ReleaseClaim clears the in-flight marker after a failed vendor call so the
// request can be retried.
func (r *Repository) ReleaseClaim(ctx context.Context, id int) error {
	query := `
        UPDATE requests
        SET processed_by = NULL
        WHERE id = $1 AND status = 'pending'
    `
	if _, err := r.db.Exec(ctx, query, id); err != nil {
		zap.L().Error("failed to release settlement claim", zap.Error(err))
		return err
	}
	return nil
}

// SetCasinoError records a settlement failure without moving the request out
// of pending, so operators can see the error and retry.
func (r *Repository) SetCasinoError(ctx context.Context, id int, message string) error {
	query := `
        UPDATE requests
        SET casino_error = $2
        WHERE id = $1
    `
	if _, err := r.db.Exec(ctx, query, id, message); err != nil {
		zap.L().Error("failed to set casino error", zap.Error(err))
		return err
	}
	return nil
}

// UpdateStatus moves a not-yet-settled request to another lifecycle state
// (pending_check, rejected, deferred). A request under manual review can
// still be rejected, deferred or completed; terminal requests are left
// untouched.
func (r *Repository) UpdateStatus(ctx context.Context, id int, status, statusDetail string) (bool, error) {
	query := `
        UPDATE requests
        SET status = $2, status_detail = $3
        WHERE id = $1 AND status IN ('pending', 'pending_check')
    `
	tag, err := r.db.Exec(ctx, query, id, status, statusDetail)
	if err != nil {
		zap.L().Error("failed to update request status", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
