package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"asteroid-arena-service/internal/core/domain"
	ports "asteroid-arena-service/internal/core/ports/output"
)

type gameRepo struct {
	pool *pgxpool.Pool
}

func NewGameRepository(pool *pgxpool.Pool) ports.GameRepository {
	return &gameRepo{pool: pool}
}

func (r *gameRepo) Create(ctx context.Context, game *domain.Game) error {
	query := `
		INSERT INTO games
			(id, player, seed, width, height, status, score, lives, started_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`
	_, err := r.pool.Exec(ctx, query,
		game.ID, game.Player, game.Seed, game.Width, game.Height,
		string(game.Status), game.Score, game.Lives, game.StartedAt,
	)
	if err != nil {
		return fmt.Errorf("create game: %w", err)
	}
	return nil
}

func (r *gameRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Game, error) {
	query := `
		SELECT id, player, seed, width, height, status, score, lives,
			   started_at, ended_at
		FROM games
		WHERE id = $1
	`
	game, err := scanGame(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrGameNotFound
		}
		return nil, fmt.Errorf("get game by id: %w", err)
	}
	return game, nil
}

func (r *gameRepo) Finish(ctx context.Context, game *domain.Game) error {
	query := `
		UPDATE games
		SET status=$1, score=$2, lives=$3, ended_at=$4
		WHERE id=$5
	`
	result, err := r.pool.Exec(ctx, query,
		string(game.Status), game.Score, game.Lives, game.EndedAt, game.ID,
	)
	if err != nil {
		return fmt.Errorf("finish game: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrGameNotFound
	}
	return nil
}

func (r *gameRepo) ListByStatus(ctx context.Context, status domain.GameStatus, limit int) ([]*domain.Game, error) {
	query := `
		SELECT id, player, seed, width, height, status, score, lives,
			   started_at, ended_at
		FROM games
		WHERE status = $1
		ORDER BY started_at DESC
		LIMIT $2
	`
	rows, err := r.pool.Query(ctx, query, string(status), limit)
	if err != nil {
		return nil, fmt.Errorf("list games by status: %w", err)
	}
	defer rows.Close()

	var games []*domain.Game
	for rows.Next() {
		game, err := scanGame(rows)
		if err != nil {
			return nil, fmt.Errorf("scan game row: %w", err)
		}
		games = append(games, game)
	}
	return games, rows.Err()
}

func scanGame(row pgx.Row) (*domain.Game, error) {
	var g domain.Game
	var status string
	err := row.Scan(
		&g.ID, &g.Player, &g.Seed, &g.Width, &g.Height, &status,
		&g.Score, &g.Lives, &g.StartedAt, &g.EndedAt,
	)
	if err != nil {
		return nil, err
	}
	g.Status = domain.GameStatus(status)
	return &g, nil
}
