package postgres

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"

	"fieldops/internal/config"
	"fieldops/pkg/e"

	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema.sql
var schemaSQL string

type Postgres struct {
	Pool        *pgxpool.Pool
	Teams       *TeamRepo
	Emergencies *EmergencyRepo
	Employees   *EmployeeRepo
	Stats       *StatsRepo
}

func NewPostgres(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Postgres, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Postgres.Host,
		cfg.Postgres.Port,
		cfg.Postgres.User,
		cfg.Postgres.Password,
		cfg.Postgres.Database,
		cfg.Postgres.SSLMode,
	)

	logger.Info("Connecting to Postgres",
		slog.String("host", cfg.Postgres.Host),
		slog.Int("port", cfg.Postgres.Port),
		slog.String("db", cfg.Postgres.Database),
	)

	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Error("Failed to parse pgx config", slog.String("error", err.Error()))
		return nil, e.Wrap("storage.pg.NewPostgres.ParseConfig", err)
	}
	poolCfg.MaxConns = cfg.Postgres.MaxConns
	poolCfg.MinConns = cfg.Postgres.MinConns
	poolCfg.MaxConnLifetime = cfg.Postgres.MaxConnLifetime

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		logger.Error("Failed to create pgx pool", slog.String("error", err.Error()))
		return nil, e.Wrap("storage.pg.NewPostgres.NewWithConfig", err)
	}

	logger.Info("Pinging Postgres database")
	if err := pool.Ping(ctx); err != nil {
		logger.Error("Failed to ping Postgres database", slog.String("error", err.Error()))
		pool.Close()
		return nil, e.Wrap("storage.pg.NewPostgres.Ping", err)
	}
	logger.Info("Connected to Postgres successfully")

	if cfg.Postgres.EnsureSchema {
		if err := EnsureSchema(ctx, pool); err != nil {
			logger.Error("Failed to apply schema", slog.String("error", err.Error()))
			pool.Close()
			return nil, err
		}
		logger.Info("Postgres schema ensured")
	}

	return New(pool, logger), nil
}

// New builds the repositories on top of an existing pool.
func New(pool *pgxpool.Pool, logger *slog.Logger) *Postgres {
	return &Postgres{
		Pool:        pool,
		Teams:       NewTeamRepo(pool, logger),
		Emergencies: NewEmergencyRepo(pool, logger),
		Employees:   NewEmployeeRepo(pool, logger),
		Stats:       NewStatsRepo(pool, logger),
	}
}

// EnsureSchema creates missing tables and indexes. It is safe to run on
// every start.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schemaSQL); err != nil {
		return e.Wrap("storage.pg.EnsureSchema", err)
	}
	return nil
}

func (p *Postgres) Close() {
	p.Pool.Close()
}
