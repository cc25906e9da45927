package kv

import (
	"context"
	"errors"
	"fmt"
	"time"

	"punchclock/internal/config"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres keeps every blob in a kv_blobs table so several app instances
// can share one attendance store.
type Postgres struct {
	pool *pgxpool.Pool
}

func NewPostgres(dbCfg config.Database) (*Postgres, error) {
	cfg, err := pgxpool.ParseConfig(fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		dbCfg.User, dbCfg.Password, dbCfg.Host, dbCfg.Port, dbCfg.DBName, dbCfg.SSLMode,
	))
	if err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	// Configure connection pool and statement cache
	cfg.MaxConns = 10
	cfg.MinConns = 2
	cfg.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("error creating connection pool: %w", err)
	}

	return &Postgres{pool: pool}, nil
}

func (p *Postgres) Get(ctx context.Context, key string) ([]byte, error) {
	query := `
		SELECT value
		FROM kv_blobs
		WHERE key = $1`

	var blob []byte
	err := p.pool.QueryRow(ctx, query, key).Scan(&blob)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error reading blob: %w", err)
	}
	return blob, nil
}

func (p *Postgres) Set(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO kv_blobs (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, updated_at = now()`

	_, err := p.pool.Exec(ctx, query, key, value)
	if err != nil {
		return fmt.Errorf("error writing blob: %w", err)
	}
	return nil
}

func (p *Postgres) Delete(ctx context.Context, key string) error {
	query := `
		DELETE FROM kv_blobs
		WHERE key = $1`

	_, err := p.pool.Exec(ctx, query, key)
	if err != nil {
		return fmt.Errorf("error deleting blob: %w", err)
	}
	return nil
}

func (p *Postgres) Close() {
	p.pool.Close()
}
