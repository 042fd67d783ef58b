package postgres

import (
	"time"

	"github.com/riskibarqy/gudlft-booking/internal/domain/competition"
)

var competitionColumns = []string{"id", "name", "starts_at", "number_of_places", "created_at", "updated_at", "deleted_at"}

type competitionTableModel struct {
	ID             int64      `db:"id"`
	Name           string     `db:"name"`
	StartsAt       time.Time  `db:"starts_at"`
	NumberOfPlaces int        `db:"number_of_places"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
	DeletedAt      *time.Time `db:"deleted_at"`
}

func (m competitionTableModel) toDomain() competition.Competition {
	return competition.Competition{
		Name:           m.Name,
		Date:           m.StartsAt.UTC(),
		NumberOfPlaces: m.NumberOfPlaces,
	}
}
