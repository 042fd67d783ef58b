package booking

import (
	"context"

	"github.com/riskibarqy/gudlft-booking/internal/domain/club"
	"github.com/riskibarqy/gudlft-booking/internal/domain/competition"
)

// ApplyFunc receives the current club and competition and returns their
// new state. Returning an error leaves both untouched.
type ApplyFunc func(c club.Club, comp competition.Competition) (club.Club, competition.Competition, error)

// Reservation is the outcome of a Ledger.Reserve call.
type Reservation struct {
	Club              club.Club
	Competition       competition.Competition
	ClubExists        bool
	CompetitionExists bool
}

// Ledger looks up both records and applies a booking as one step.
// apply is only called when both records exist.
type Ledger interface {
	Reserve(ctx context.Context, clubName, competitionName string, apply ApplyFunc) (Reservation, error)
}
