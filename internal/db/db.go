package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"civic-feedback/internal/config"
)

// NewPool construye y devuelve un pool de conexiones configurado.
func NewPool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	// Configuración razonable para ambientes iniciales.
	poolCfg.MaxConns = 10
	poolCfg.MinConns = 1
	poolCfg.MaxConnLifetime = 30 * time.Minute
	poolCfg.MaxConnIdleTime = 5 * time.Minute
	poolCfg.HealthCheckPeriod = 30 * time.Second
	poolCfg.ConnConfig.ConnectTimeout = 5 * time.Second

	return pgxpool.NewWithConfig(ctx, poolCfg)
}

// Ping verifica conectividad con la base de datos.
func Ping(ctx context.Context, pool *pgxpool.Pool) error {
	return pool.Ping(ctx)
}

// EnsureSchema crea las tablas de feedback si no existen. Una fila por sesión
// completada; las categorías sin responder quedan en NULL, nunca en cero.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	const districtDDL = `
		CREATE TABLE IF NOT EXISTS district_feedback (
			id TEXT PRIMARY KEY,
			district TEXT NOT NULL,
			trust_score DOUBLE PRECISION,
			responsiveness_score DOUBLE PRECISION,
			infrastructure_score DOUBLE PRECISION,
			public_services_score DOUBLE PRECISION,
			safety_score DOUBLE PRECISION,
			environment_score DOUBLE PRECISION,
			transport_score DOUBLE PRECISION,
			community_score DOUBLE PRECISION,
			economic_score DOUBLE PRECISION,
			governance_score DOUBLE PRECISION NOT NULL,
			justice_score DOUBLE PRECISION NOT NULL,
			justice_sentiment TEXT NOT NULL,
			overall_score DOUBLE PRECISION NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`
	const justiceDDL = `
		CREATE TABLE IF NOT EXISTS justice_feedback (
			id TEXT PRIMARY KEY,
			district TEXT NOT NULL,
			trust_score DOUBLE PRECISION,
			responsiveness_score DOUBLE PRECISION,
			fairness_score DOUBLE PRECISION,
			accessibility_score DOUBLE PRECISION,
			corruption_score DOUBLE PRECISION,
			community_justice_score DOUBLE PRECISION,
			suggestions TEXT NOT NULL DEFAULT '',
			justice_sentiment TEXT NOT NULL,
			overall_score DOUBLE PRECISION NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`

	if _, err := pool.Exec(ctx, districtDDL); err != nil {
		return err
	}
	_, err := pool.Exec(ctx, justiceDDL)
	return err
}
