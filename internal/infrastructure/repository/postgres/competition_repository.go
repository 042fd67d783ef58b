package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/gudlft-booking/internal/domain/competition"
	qb "github.com/riskibarqy/gudlft-booking/internal/platform/querybuilder"
)

type CompetitionRepository struct {
	db *sqlx.DB
}

func NewCompetitionRepository(db *sqlx.DB) *CompetitionRepository {
	return &CompetitionRepository{db: db}
}

func (r *CompetitionRepository) LoadCompetitions(ctx context.Context) ([]competition.Competition, error) {
	query, args, err := listCompetitionsQuery()
	if err != nil {
		return nil, fmt.Errorf("build select competitions query: %w", err)
	}

	var rows []competitionTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select competitions: %w", err)
	}

	return competitionsFromRows(rows)
}

func listCompetitionsQuery() (string, []any, error) {
	return qb.Select(competitionColumns...).From("competitions").
		Where(qb.IsNull("deleted_at")).
		OrderBy("starts_at", "id").
		ToSQL()
}

func competitionsFromRows(rows []competitionTableModel) ([]competition.Competition, error) {
	out := make([]competition.Competition, 0, len(rows))
	for _, row := range rows {
		item := row.toDomain()
		if err := item.Validate(); err != nil {
			return nil, fmt.Errorf("competition row id=%d: %w", row.ID, err)
		}
		out = append(out, item)
	}
	return out, nil
}
