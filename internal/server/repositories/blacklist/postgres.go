package blacklist

import (
	"context"
	"fmt"
	"time"

	"github.com/lfgames/gameslib/internal/common"
	"github.com/lfgames/gameslib/internal/dbx"
	"github.com/lfgames/gameslib/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Add(ctx context.Context, entry *models.BlacklistEntry) error {
	query := `
		INSERT INTO token_blacklist (token_hash, user_id, expires_at)
		VALUES ($1, $2, $3)
	`
	if _, err := r.db.ExecContext(ctx, query, entry.TokenHash, entry.UserID, entry.ExpiresAt); err != nil {
		if dbx.IsUniqueViolation(err) {
			return common.ErrorAlreadyExists
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Exists(ctx context.Context, tokenHash, userID string, now time.Time) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM token_blacklist
			WHERE token_hash = $1 AND user_id = $2 AND expires_at > $3
		)
	`
	var found bool
	if err := r.db.QueryRowContext(ctx, query, tokenHash, userID, now).Scan(&found); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return found, nil
}

func (r *PostgresRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	query := `
		DELETE FROM token_blacklist
		WHERE expires_at <= $1
	`
	res, err := r.db.ExecContext(ctx, query, now)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}
