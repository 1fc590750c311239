package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_table_games",
		SQL: `CREATE TABLE IF NOT EXISTS games (
  id         UUID             PRIMARY KEY,
  player     TEXT             NOT NULL,
  seed       BIGINT           NOT NULL,
  width      DOUBLE PRECISION NOT NULL,
  height     DOUBLE PRECISION NOT NULL,
  status     TEXT             NOT NULL,
  score      INTEGER          NOT NULL DEFAULT 0,
  lives      INTEGER          NOT NULL DEFAULT 0,
  started_at TIMESTAMPTZ      NOT NULL,
  ended_at   TIMESTAMPTZ
);`,
	},
	{
		Name: "create_index_games_status",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_games_status ON games (status, started_at DESC);`,
	},
	{
		Name: "create_table_scores",
		SQL: `CREATE TABLE IF NOT EXISTS scores (
  id          UUID        PRIMARY KEY,
  game_id     UUID        NOT NULL UNIQUE REFERENCES games (id),
  player      TEXT        NOT NULL,
  score       INTEGER     NOT NULL,
  achieved_at TIMESTAMPTZ NOT NULL
);`,
	},
	{
		Name: "create_index_scores_ranking",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_scores_ranking ON scores (score DESC, achieved_at ASC);`,
	},
}

// Migrate applies the schema steps in order. Every step is idempotent,
// so rerunning on startup is safe.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for _, step := range steps {
		if _, err := pool.Exec(ctx, step.SQL); err != nil {
			return fmt.Errorf("migration step %s: %w", step.Name, err)
		}
		log.WithField("step", step.Name).Debug("migration step applied")
	}
	return nil
}
