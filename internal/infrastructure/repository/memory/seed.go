package memory

import (
	"time"

	"github.com/riskibarqy/gudlft-booking/internal/domain/club"
	"github.com/riskibarqy/gudlft-booking/internal/domain/competition"
)

const (
	ClubSimplyLift  = "Simply Lift"
	ClubIronTemple  = "Iron Temple"
	ClubSheLifts    = "She Lifts"
	CompSpring      = "Spring Festival"
	CompFallClassic = "Fall Classic"
	CompWinterOpen  = "Winter Open"
)

func SeedClubs() []club.Club {
	return []club.Club{
		{Name: ClubSimplyLift, Email: "john@simplylift.co", Points: 13},
		{Name: ClubIronTemple, Email: "admin@irontemple.com", Points: 4},
		{Name: ClubSheLifts, Email: "kate@shelifts.co.uk", Points: 12},
	}
}

func SeedCompetitions() []competition.Competition {
	return []competition.Competition{
		{Name: CompSpring, Date: time.Date(2020, 3, 27, 10, 0, 0, 0, time.UTC), NumberOfPlaces: 25},
		{Name: CompFallClassic, Date: time.Date(2020, 10, 22, 13, 30, 0, 0, time.UTC), NumberOfPlaces: 13},
		{Name: CompWinterOpen, Date: time.Date(2030, 1, 18, 9, 0, 0, 0, time.UTC), NumberOfPlaces: 30},
	}
}

// MustSeedLedger builds a ledger from the seed lists.
func MustSeedLedger() *Ledger {
	l, err := NewLedger(SeedClubs(), SeedCompetitions())
	if err != nil {
		panic(err)
	}
	return l
}
