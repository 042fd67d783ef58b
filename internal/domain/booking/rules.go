package booking

import (
	"errors"
	"fmt"
	"time"

	"github.com/riskibarqy/gudlft-booking/internal/domain/club"
	"github.com/riskibarqy/gudlft-booking/internal/domain/competition"
)

var (
	ErrNegativeQuantity  = errors.New("requested places must not be negative")
	ErrExceedsAllowance  = errors.New("requested places exceed booking allowance")
	ErrCompetitionClosed = errors.New("competition already took place")
)

// IsRejection reports whether err is a rule rejection rather than a fault.
func IsRejection(err error) bool {
	return errors.Is(err, ErrNegativeQuantity) ||
		errors.Is(err, ErrExceedsAllowance) ||
		errors.Is(err, ErrCompetitionClosed)
}

// Rules stores booking validation parameters.
type Rules struct {
	MaxPlacesPerBooking   int
	ClosePastCompetitions bool
}

func DefaultRules() Rules {
	return Rules{
		MaxPlacesPerBooking:   12,
		ClosePastCompetitions: false,
	}
}

// MaxPlaces returns how many places a club may book right now:
// min(points, remaining) clamped into [0, limit].
func MaxPlaces(points, remaining, limit int) int {
	allowed := min(points, remaining, limit)
	if allowed < 0 {
		return 0
	}
	return allowed
}

// Allowance is MaxPlaces for a concrete club and competition.
func (r Rules) Allowance(c club.Club, comp competition.Competition) int {
	return MaxPlaces(c.Points, comp.NumberOfPlaces, r.MaxPlacesPerBooking)
}

// Validate checks a request for requested places without touching either record.
func (r Rules) Validate(c club.Club, comp competition.Competition, requested int, now time.Time) error {
	if requested < 0 {
		return fmt.Errorf("%w: got %d", ErrNegativeQuantity, requested)
	}
	if r.ClosePastCompetitions && comp.IsPast(now) {
		return fmt.Errorf("%w: %s on %s", ErrCompetitionClosed, comp.Name, comp.Date.Format(competition.DateLayout))
	}

	allowed := r.Allowance(c, comp)
	if requested > allowed {
		return fmt.Errorf("%w: requested=%d max=%d points=%d places=%d",
			ErrExceedsAllowance, requested, allowed, c.Points, comp.NumberOfPlaces)
	}

	return nil
}

// Apply validates the request and returns both records with the places deducted.
// On error the inputs are returned unchanged.
func (r Rules) Apply(c club.Club, comp competition.Competition, requested int, now time.Time) (club.Club, competition.Competition, error) {
	if err := r.Validate(c, comp, requested, now); err != nil {
		return c, comp, err
	}

	c.Points -= requested
	comp.NumberOfPlaces -= requested
	return c, comp, nil
}
