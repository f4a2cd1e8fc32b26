package games

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lfgames/gameslib/internal/common"
	"github.com/lfgames/gameslib/internal/dbx"
	"github.com/lfgames/gameslib/internal/server/models"
)

const gameColumns = `id, game_id, user_id, name, cover_url, cover_image_id, total_rating,
		first_release_date, platforms, genres, completed, created_at`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, game *models.Game) (*models.Game, error) {
	platforms, err := encodeList(game.Platforms)
	if err != nil {
		return nil, err
	}
	genres, err := encodeList(game.Genres)
	if err != nil {
		return nil, err
	}

	query := `
		INSERT INTO games (game_id, user_id, name, cover_url, cover_image_id, total_rating,
			first_release_date, platforms, genres, completed)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at
	`
	err = r.db.QueryRowContext(ctx, query,
		game.GameID, game.UserID, game.Name, game.CoverURL, game.CoverImageID, game.TotalRating,
		game.FirstReleaseDate, platforms, genres, game.Completed,
	).Scan(&game.ID, &game.CreatedAt)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return game, nil
}

func (r *PostgresRepository) Exists(ctx context.Context, userID string, gameID int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM games WHERE user_id = $1 AND game_id = $2)`
	var found bool
	if err := r.db.QueryRowContext(ctx, query, userID, gameID).Scan(&found); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return found, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]*models.Game, error) {
	query := `SELECT ` + gameColumns + `
		FROM games
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to select games: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Game, 0)
	for rows.Next() {
		g, err := scanGame(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) SetCompleted(ctx context.Context, userID string, gameID int64, completed bool) (*models.Game, error) {
	query := `
		UPDATE games SET completed = $3
		WHERE user_id = $1 AND game_id = $2
		RETURNING ` + gameColumns

	g, err := scanGame(r.db.QueryRowContext(ctx, query, userID, gameID, completed))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, err
	}
	return g, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanGame(s scanner) (*models.Game, error) {
	var (
		g                 models.Game
		platforms, genres []byte
	)
	err := s.Scan(&g.ID, &g.GameID, &g.UserID, &g.Name, &g.CoverURL, &g.CoverImageID, &g.TotalRating,
		&g.FirstReleaseDate, &platforms, &genres, &g.Completed, &g.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	if g.Platforms, err = decodeList(platforms); err != nil {
		return nil, err
	}
	if g.Genres, err = decodeList(genres); err != nil {
		return nil, err
	}
	return &g, nil
}

// encodeList renders a string list as a JSON array for a jsonb column.
func encodeList(v []string) (string, error) {
	if v == nil {
		v = []string{}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encode list: %w", err)
	}
	return string(b), nil
}

func decodeList(b []byte) ([]string, error) {
	out := []string{}
	if len(b) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("decode list: %w", err)
	}
	return out, nil
}
