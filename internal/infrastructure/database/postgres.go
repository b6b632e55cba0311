package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"skillax-backend/internal/config"
)

// PostgresDB wraps the pgx connection pool used by the document store.
type PostgresDB struct {
	Config *config.DatabaseConfig
	Pool   *pgxpool.Pool
}

func NewPostgresDB(cfg *config.DatabaseConfig) *PostgresDB {
	return &PostgresDB{Config: cfg}
}

func (db *PostgresDB) connString() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		db.Config.Host, db.Config.Port, db.Config.User,
		db.Config.Password, db.Config.Database, db.Config.SSLMode,
	)
}

// Connect establishes the pool with bounded retries and exponential backoff.
func (db *PostgresDB) Connect(ctx context.Context) error {
	poolConfig, err := pgxpool.ParseConfig(db.connString())
	if err != nil {
		return fmt.Errorf("parse pool config: %w", err)
	}
	poolConfig.MaxConns = int32(db.Config.MaxConns)
	poolConfig.MinConns = int32(db.Config.MinConns)
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = time.Minute

	const maxRetries = 4
	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
		if err == nil {
			if err = pool.Ping(ctx); err == nil {
				db.Pool = pool
				log.Info().Msg("PostgreSQL connection established")
				return nil
			}
			pool.Close()
		}
		lastErr = err
		log.Warn().Err(err).Int("attempt", attempt).Msg("database connect failed")

		if attempt < maxRetries {
			delay := time.Second * time.Duration(1<<uint(attempt-1))
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return fmt.Errorf("connection cancelled: %w", ctx.Err())
			}
		}
	}
	return fmt.Errorf("failed to connect after %d attempts: %w", maxRetries, lastErr)
}

// HealthCheck verifies connectivity. Called by the health endpoint.
func (db *PostgresDB) HealthCheck(ctx context.Context) error {
	if db.Pool == nil {
		return fmt.Errorf("database pool is not initialized")
	}
	healthCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.Pool.Ping(healthCtx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

// Stats reports pool utilization for the health endpoint.
func (db *PostgresDB) Stats() map[string]any {
	if db.Pool == nil {
		return nil
	}
	stat := db.Pool.Stat()
	return map[string]any{
		"total_conns":    stat.TotalConns(),
		"idle_conns":     stat.IdleConns(),
		"acquired_conns": stat.AcquiredConns(),
		"max_conns":      stat.MaxConns(),
	}
}

func (db *PostgresDB) Close() {
	if db.Pool != nil {
		db.Pool.Close()
	}
}
