package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"studioquote-bot/internal/config"
	"studioquote-bot/internal/pricing"
)

// PostgresStorage holds the catalog tables. The catalog is read once at
// startup; nothing writes to it at runtime.
type PostgresStorage struct {
	db     *sqlx.DB
	logger *zap.Logger
}

type planRow struct {
	Key                     string  `db:"key"`
	Label                   string  `db:"label"`
	BasePrice               float64 `db:"base_price"`
	IncludedHours           float64 `db:"included_hours"`
	OvertimeRatePerHalfHour float64 `db:"overtime_rate_per_half_hour"`
	Position                int     `db:"position"`
}

type travelZoneRow struct {
	Label         string  `db:"label"`
	FlatSurcharge float64 `db:"flat_surcharge"`
	Position      int     `db:"position"`
}

func NewPostgresStorage(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*PostgresStorage, error) {
	const operation = "storage.NewPostgresStorage"

	connStr := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost,
		cfg.DBPort,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
	)

	var db *sqlx.DB
	var err error

	retryPolicy := backoff.NewExponentialBackOff()
	retryPolicy.MaxElapsedTime = 2 * time.Minute
	retryPolicy.MaxInterval = 15 * time.Second

	logger.Info("Connecting to PostgreSQL...")

	err = backoff.RetryNotify(
		func() error {
			db, err = sqlx.ConnectContext(ctx, "postgres", connStr)
			if err != nil {
				return fmt.Errorf("connect: %w", err)
			}

			if err = db.PingContext(ctx); err != nil {
				return fmt.Errorf("ping: %w", err)
			}
			return nil
		},
		retryPolicy,
		func(err error, duration time.Duration) {
			logger.Warn("PostgreSQL connection failed, retrying...",
				zap.Error(err),
				zap.Duration("next_attempt_in", duration))
		},
	)

	if err != nil {
		return nil, fmt.Errorf("%s: failed to connect after retries: %w", operation, err)
	}

	db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	db.SetMaxIdleConns(cfg.DBMaxIdleConns)
	db.SetConnMaxLifetime(cfg.DBConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.DBConnMaxIdleTime)

	logger.Info("Successfully connected to PostgreSQL")
	return &PostgresStorage{
		db:     db,
		logger: logger,
	}, nil
}

// LoadCatalog reads the plan and travel zone tables into an immutable
// in-memory catalog. Rows come back in display order.
func (s *PostgresStorage) LoadCatalog(ctx context.Context) (*pricing.Catalog, error) {
	const plansQuery = `
        SELECT key, label, base_price, included_hours, overtime_rate_per_half_hour, position
        FROM plans
        ORDER BY position
    `

	var planRows []planRow
	if err := s.db.SelectContext(ctx, &planRows, plansQuery); err != nil {
		return nil, fmt.Errorf("failed to load plans: %w", err)
	}

	const zonesQuery = `
        SELECT label, flat_surcharge, position
        FROM travel_zones
        ORDER BY position
    `

	var zoneRows []travelZoneRow
	if err := s.db.SelectContext(ctx, &zoneRows, zonesQuery); err != nil {
		return nil, fmt.Errorf("failed to load travel zones: %w", err)
	}

	plans := make([]pricing.Plan, 0, len(planRows))
	for _, row := range planRows {
		plans = append(plans, pricing.Plan{
			Label:                   row.Label,
			Key:                     pricing.PlanKey(row.Key),
			BasePrice:               row.BasePrice,
			IncludedDuration:        row.IncludedHours,
			OvertimeRatePerHalfHour: row.OvertimeRatePerHalfHour,
		})
	}

	zones := make([]pricing.TravelZone, 0, len(zoneRows))
	for _, row := range zoneRows {
		zones = append(zones, pricing.TravelZone{
			Label:         row.Label,
			FlatSurcharge: row.FlatSurcharge,
		})
	}

	if len(plans) == 0 {
		return nil, fmt.Errorf("plans table is empty, did migrations run?")
	}

	s.logger.Info("Catalog loaded",
		zap.Int("plans", len(plans)),
		zap.Int("travel_zones", len(zones)))

	return pricing.NewCatalog(plans, zones), nil
}

func (s *PostgresStorage) DB() *sqlx.DB {
	return s.db
}

func (s *PostgresStorage) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
