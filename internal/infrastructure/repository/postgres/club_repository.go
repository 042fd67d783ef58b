package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/gudlft-booking/internal/domain/club"
	qb "github.com/riskibarqy/gudlft-booking/internal/platform/querybuilder"
)

// ClubRepository reads the club list once at startup. Bookings are never
// written back.
type ClubRepository struct {
	db *sqlx.DB
}

func NewClubRepository(db *sqlx.DB) *ClubRepository {
	return &ClubRepository{db: db}
}

func (r *ClubRepository) LoadClubs(ctx context.Context) ([]club.Club, error) {
	query, args, err := listClubsQuery()
	if err != nil {
		return nil, fmt.Errorf("build select clubs query: %w", err)
	}

	var rows []clubTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select clubs: %w", err)
	}

	return clubsFromRows(rows)
}

func listClubsQuery() (string, []any, error) {
	return qb.Select(clubColumns...).From("clubs").
		Where(qb.IsNull("deleted_at")).
		OrderBy("id").
		ToSQL()
}

func clubsFromRows(rows []clubTableModel) ([]club.Club, error) {
	out := make([]club.Club, 0, len(rows))
	for _, row := range rows {
		item := row.toDomain()
		if err := item.Validate(); err != nil {
			return nil, fmt.Errorf("club row id=%d: %w", row.ID, err)
		}
		out = append(out, item)
	}
	return out, nil
}
