package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"asteroid-arena-service/internal/core/domain"
	ports "asteroid-arena-service/internal/core/ports/output"
)

type scoreRepo struct {
	pool *pgxpool.Pool
}

func NewScoreRepository(pool *pgxpool.Pool) ports.ScoreRepository {
	return &scoreRepo{pool: pool}
}

func (r *scoreRepo) Create(ctx context.Context, entry *domain.ScoreEntry) error {
	query := `
		INSERT INTO scores (id, game_id, player, score, achieved_at)
		VALUES ($1,$2,$3,$4,$5)
	`
	_, err := r.pool.Exec(ctx, query,
		entry.ID, entry.GameID, entry.Player, entry.Score, entry.AchievedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		// 23505: one leaderboard entry per game.
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil
		}
		return fmt.Errorf("create score entry: %w", err)
	}
	return nil
}

func (r *scoreRepo) ListTop(ctx context.Context, limit int) ([]*domain.ScoreEntry, error) {
	query := `
		SELECT id, game_id, player, score, achieved_at
		FROM scores
		ORDER BY score DESC, achieved_at ASC
		LIMIT $1
	`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list top scores: %w", err)
	}
	defer rows.Close()

	var entries []*domain.ScoreEntry
	for rows.Next() {
		var e domain.ScoreEntry
		if err := rows.Scan(&e.ID, &e.GameID, &e.Player, &e.Score, &e.AchievedAt); err != nil {
			return nil, fmt.Errorf("scan score row: %w", err)
		}
		entries = append(entries, &e)
	}
	return entries, rows.Err()
}
