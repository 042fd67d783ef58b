package app

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/riskibarqy/gudlft-booking/internal/config"
	"github.com/riskibarqy/gudlft-booking/internal/domain/club"
	"github.com/riskibarqy/gudlft-booking/internal/domain/competition"
	"github.com/riskibarqy/gudlft-booking/internal/infrastructure/repository/jsonfile"
	"github.com/riskibarqy/gudlft-booking/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/gudlft-booking/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/gudlft-booking/internal/platform/logging"
	"github.com/sourcegraph/conc/pool"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
)

type clubLoader interface {
	LoadClubs(ctx context.Context) ([]club.Club, error)
}

type competitionLoader interface {
	LoadCompetitions(ctx context.Context) ([]competition.Competition, error)
}

type recordSource struct {
	clubs        clubLoader
	competitions competitionLoader
}

type seedLoader struct{}

func (seedLoader) LoadClubs(context.Context) ([]club.Club, error) {
	return memory.SeedClubs(), nil
}

func (seedLoader) LoadCompetitions(context.Context) ([]competition.Competition, error) {
	return memory.SeedCompetitions(), nil
}

func noopCleanup() error { return nil }

func openRecordSource(ctx context.Context, cfg config.Config, logger *logging.Logger) (recordSource, func() error, error) {
	switch cfg.DataSource {
	case config.DataSourceFile:
		loader := jsonfile.NewLoader(cfg.ClubsDataFile, cfg.CompetitionsDataFile)
		return recordSource{clubs: loader, competitions: loader}, noopCleanup, nil
	case config.DataSourceSeed:
		return recordSource{clubs: seedLoader{}, competitions: seedLoader{}}, noopCleanup, nil
	case config.DataSourcePostgres:
		db, err := openPostgres(cfg)
		if err != nil {
			return recordSource{}, nil, err
		}
		logger.InfoContext(ctx, "opening postgres source", "db", redactDBURL(cfg.DBURL))
		if err := db.PingContext(ctx); err != nil {
			_ = db.Close()
			return recordSource{}, nil, fmt.Errorf("ping postgres: %w", err)
		}

		if cfg.DBBootstrapSeed {
			if err := postgres.BootstrapSeed(ctx, db, memory.SeedClubs(), memory.SeedCompetitions()); err != nil {
				_ = db.Close()
				return recordSource{}, nil, err
			}
			logger.InfoContext(ctx, "postgres bootstrap seed checked")
		}

		return recordSource{
			clubs:        postgres.NewClubRepository(db),
			competitions: postgres.NewCompetitionRepository(db),
		}, db.Close, nil
	default:
		return recordSource{}, nil, fmt.Errorf("unsupported data source %q", cfg.DataSource)
	}
}

func openPostgres(cfg config.Config) (*sqlx.DB, error) {
	db, err := otelsqlx.Open("postgres",
		normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary),
		dbTraceOptions(cfg)...,
	)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	return db, nil
}

// loadRecords reads both collections in parallel; either failure aborts startup.
func loadRecords(ctx context.Context, source recordSource) ([]club.Club, []competition.Competition, error) {
	var (
		clubs        []club.Club
		competitions []competition.Competition
	)

	p := pool.New().WithErrors().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		items, err := source.clubs.LoadClubs(ctx)
		if err != nil {
			return fmt.Errorf("load clubs: %w", err)
		}
		clubs = items
		return nil
	})
	p.Go(func(ctx context.Context) error {
		items, err := source.competitions.LoadCompetitions(ctx)
		if err != nil {
			return fmt.Errorf("load competitions: %w", err)
		}
		competitions = items
		return nil
	})
	if err := p.Wait(); err != nil {
		return nil, nil, err
	}

	return clubs, competitions, nil
}
