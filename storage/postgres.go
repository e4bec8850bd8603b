package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ayelder/ff-av/config"
	"github.com/ayelder/ff-av/models"

	_ "github.com/jackc/pgx/v5/stdlib"
)

type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(cfg config.Config) (*PostgresStore, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.DBHost,
		cfg.DBPort,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
		cfg.DBSSLMode,
	)

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres connection: %w", err)
	}

	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	store := &PostgresStore{db: db}
	schemaCtx, schemaCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer schemaCancel()
	if err := store.ensureSchema(schemaCtx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}

// SaveValues upserts the scraped valuations, keyed on the player's
// name, team and position. Returns the number of rows written.
func (s *PostgresStore) SaveValues(ctx context.Context, players []models.PlayerValue) (int, error) {
	if len(players) == 0 {
		return 0, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO player_values (name, position, team, projected_value, average_cost, percent_drafted)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (name, team, position) DO UPDATE
		SET
			projected_value = EXCLUDED.projected_value,
			average_cost = EXCLUDED.average_cost,
			percent_drafted = EXCLUDED.percent_drafted,
			updated_at = NOW()`)
	if err != nil {
		return 0, fmt.Errorf("prepare insert statement: %w", err)
	}
	defer stmt.Close()

	total := 0
	for _, p := range players {
		if p.Name == "" {
			continue
		}
		if _, err = stmt.ExecContext(
			ctx,
			p.Name,
			p.Position,
			p.Team,
			p.ProjectedValue,
			p.AverageCost,
			p.PercentDrafted,
		); err != nil {
			return 0, fmt.Errorf("insert player %q: %w", p.Name, err)
		}
		total++
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit transaction: %w", err)
	}

	return total, nil
}

func (s *PostgresStore) ensureSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS player_values (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			position TEXT NOT NULL DEFAULT '',
			team TEXT NOT NULL DEFAULT '',
			projected_value REAL NOT NULL DEFAULT 0,
			average_cost REAL NOT NULL DEFAULT 0,
			percent_drafted REAL NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (name, team, position)
		);
		CREATE INDEX IF NOT EXISTS idx_player_values_position ON player_values(position);
	`)
	if err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
