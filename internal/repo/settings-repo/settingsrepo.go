package settingsrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/ormonbek/kassabot/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// Get returns the raw JSON settings blob for a bookmaker, or nil when none
// is stored (the caller falls back to environment variables).
func (r *Repository) Get(ctx context.Context, bookmaker string) ([]byte, error) {
	query := `
        SELECT settings
        FROM casino_settings
        WHERE bookmaker = $1
    `
	var settings []byte
	err := r.db.QueryRow(ctx, query, bookmaker).Scan(&settings)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't get casino settings", zap.Error(err))
		return nil, err
	}
	return settings, nil
}
