package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/gudlft-booking/internal/domain/club"
	"github.com/riskibarqy/gudlft-booking/internal/domain/competition"
	qb "github.com/riskibarqy/gudlft-booking/internal/platform/querybuilder"
)

// BootstrapSeed fills empty clubs and competitions tables. Tables that
// already hold live rows are left alone.
func BootstrapSeed(ctx context.Context, db *sqlx.DB, clubs []club.Club, competitions []competition.Competition) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM clubs WHERE deleted_at IS NULL`); err != nil {
		return fmt.Errorf("count clubs for bootstrap seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if len(clubs) > 0 {
		query, args, err := seedClubsQuery(clubs)
		if err != nil {
			return fmt.Errorf("build seed clubs query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("seed clubs: %w", err)
		}
	}

	if len(competitions) > 0 {
		query, args, err := seedCompetitionsQuery(competitions)
		if err != nil {
			return fmt.Errorf("build seed competitions query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("seed competitions: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}
	return nil
}

func seedClubsQuery(clubs []club.Club) (string, []any, error) {
	b := qb.InsertInto("clubs").Columns("name", "email", "points")
	for _, c := range clubs {
		b.Values(c.Name, c.Email, c.Points)
	}
	return b.Suffix("ON CONFLICT (name) DO NOTHING").ToSQL()
}

func seedCompetitionsQuery(competitions []competition.Competition) (string, []any, error) {
	b := qb.InsertInto("competitions").Columns("name", "starts_at", "number_of_places")
	for _, c := range competitions {
		b.Values(c.Name, c.Date.UTC(), c.NumberOfPlaces)
	}
	return b.Suffix("ON CONFLICT (name) DO NOTHING").ToSQL()
}
