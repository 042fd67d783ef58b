package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/riskibarqy/gudlft-booking/internal/domain/booking"
	"github.com/riskibarqy/gudlft-booking/internal/domain/club"
	"github.com/riskibarqy/gudlft-booking/internal/domain/competition"
)

// Ledger owns the loaded clubs and competitions for the process lifetime.
type Ledger struct {
	mu           sync.RWMutex
	clubs        []club.Club
	clubByName   map[string]int
	clubByEmail  map[string]int
	competitions []competition.Competition
	compByName   map[string]int
}

func NewLedger(clubs []club.Club, competitions []competition.Competition) (*Ledger, error) {
	l := &Ledger{
		clubs:        make([]club.Club, 0, len(clubs)),
		clubByName:   make(map[string]int, len(clubs)),
		clubByEmail:  make(map[string]int, len(clubs)),
		competitions: make([]competition.Competition, 0, len(competitions)),
		compByName:   make(map[string]int, len(competitions)),
	}

	for _, c := range clubs {
		if err := c.Validate(); err != nil {
			return nil, err
		}
		if _, exists := l.clubByName[c.Name]; exists {
			return nil, fmt.Errorf("duplicate club name %q", c.Name)
		}
		if _, exists := l.clubByEmail[c.Email]; exists {
			return nil, fmt.Errorf("duplicate club email %q", c.Email)
		}
		l.clubByName[c.Name] = len(l.clubs)
		l.clubByEmail[c.Email] = len(l.clubs)
		l.clubs = append(l.clubs, c)
	}

	for _, comp := range competitions {
		if err := comp.Validate(); err != nil {
			return nil, err
		}
		if _, exists := l.compByName[comp.Name]; exists {
			return nil, fmt.Errorf("duplicate competition name %q", comp.Name)
		}
		l.compByName[comp.Name] = len(l.competitions)
		l.competitions = append(l.competitions, comp)
	}

	return l, nil
}

func (l *Ledger) Reserve(_ context.Context, clubName, competitionName string, apply booking.ApplyFunc) (booking.Reservation, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var out booking.Reservation
	clubIdx, clubOK := l.clubByName[clubName]
	compIdx, compOK := l.compByName[competitionName]
	out.ClubExists = clubOK
	out.CompetitionExists = compOK
	if clubOK {
		out.Club = l.clubs[clubIdx]
	}
	if compOK {
		out.Competition = l.competitions[compIdx]
	}
	if !clubOK || !compOK {
		return out, nil
	}

	updatedClub, updatedComp, err := apply(out.Club, out.Competition)
	if err != nil {
		return out, err
	}
	if updatedClub.Name != out.Club.Name || updatedComp.Name != out.Competition.Name {
		return out, fmt.Errorf("reserve must not rename records")
	}

	l.clubs[clubIdx] = updatedClub
	l.competitions[compIdx] = updatedComp
	out.Club = updatedClub
	out.Competition = updatedComp
	return out, nil
}

type ClubRepository struct {
	ledger *Ledger
}

func NewClubRepository(ledger *Ledger) *ClubRepository {
	return &ClubRepository{ledger: ledger}
}

func (r *ClubRepository) List(_ context.Context) ([]club.Club, error) {
	r.ledger.mu.RLock()
	defer r.ledger.mu.RUnlock()

	out := make([]club.Club, 0, len(r.ledger.clubs))
	out = append(out, r.ledger.clubs...)
	return out, nil
}

func (r *ClubRepository) GetByEmail(_ context.Context, email string) (club.Club, bool, error) {
	r.ledger.mu.RLock()
	defer r.ledger.mu.RUnlock()

	idx, ok := r.ledger.clubByEmail[email]
	if !ok {
		return club.Club{}, false, nil
	}
	return r.ledger.clubs[idx], true, nil
}

func (r *ClubRepository) GetByName(_ context.Context, name string) (club.Club, bool, error) {
	r.ledger.mu.RLock()
	defer r.ledger.mu.RUnlock()

	idx, ok := r.ledger.clubByName[name]
	if !ok {
		return club.Club{}, false, nil
	}
	return r.ledger.clubs[idx], true, nil
}

type CompetitionRepository struct {
	ledger *Ledger
}

func NewCompetitionRepository(ledger *Ledger) *CompetitionRepository {
	return &CompetitionRepository{ledger: ledger}
}

func (r *CompetitionRepository) List(_ context.Context) ([]competition.Competition, error) {
	r.ledger.mu.RLock()
	defer r.ledger.mu.RUnlock()

	out := make([]competition.Competition, 0, len(r.ledger.competitions))
	out = append(out, r.ledger.competitions...)
	return out, nil
}

func (r *CompetitionRepository) GetByName(_ context.Context, name string) (competition.Competition, bool, error) {
	r.ledger.mu.RLock()
	defer r.ledger.mu.RUnlock()

	idx, ok := r.ledger.compByName[name]
	if !ok {
		return competition.Competition{}, false, nil
	}
	return r.ledger.competitions[idx], true, nil
}
