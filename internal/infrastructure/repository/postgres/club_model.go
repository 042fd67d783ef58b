package postgres

import (
	"time"

	"github.com/riskibarqy/gudlft-booking/internal/domain/club"
)

var clubColumns = []string{"id", "name", "email", "points", "created_at", "updated_at", "deleted_at"}

type clubTableModel struct {
	ID        int64      `db:"id"`
	Name      string     `db:"name"`
	Email     string     `db:"email"`
	Points    int        `db:"points"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}

func (m clubTableModel) toDomain() club.Club {
	return club.Club{
		Name:   m.Name,
		Email:  m.Email,
		Points: m.Points,
	}
}
