package memory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/riskibarqy/gudlft-booking/internal/domain/club"
	"github.com/riskibarqy/gudlft-booking/internal/domain/competition"
)

func TestNewLedger_RejectsDuplicates(t *testing.T) {
	clubs := SeedClubs()
	clubs = append(clubs, club.Club{Name: "Other", Email: clubs[0].Email, Points: 1})
	if _, err := NewLedger(clubs, SeedCompetitions()); err == nil {
		t.Fatalf("expected error for duplicate club email")
	}

	comps := SeedCompetitions()
	comps = append(comps, comps[0])
	if _, err := NewLedger(SeedClubs(), comps); err == nil {
		t.Fatalf("expected error for duplicate competition name")
	}
}

func TestClubRepository_Lookups(t *testing.T) {
	repo := NewClubRepository(MustSeedLedger())

	got, exists, err := repo.GetByEmail(context.Background(), "admin@irontemple.com")
	if err != nil {
		t.Fatalf("get by email: %v", err)
	}
	if !exists || got.Name != ClubIronTemple {
		t.Fatalf("unexpected lookup result: exists=%v club=%+v", exists, got)
	}

	_, exists, err = repo.GetByName(context.Background(), "simply lift")
	if err != nil {
		t.Fatalf("get by name: %v", err)
	}
	if exists {
		t.Fatalf("expected exact-match lookup to miss on different case")
	}

	items, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("list clubs: %v", err)
	}
	if len(items) != 3 || items[0].Name != ClubSimplyLift {
		t.Fatalf("unexpected club list: %+v", items)
	}
}

func TestLedger_Reserve(t *testing.T) {
	ledger := MustSeedLedger()
	clubs := NewClubRepository(ledger)
	comps := NewCompetitionRepository(ledger)
	ctx := context.Background()

	deduct := func(n int) func(club.Club, competition.Competition) (club.Club, competition.Competition, error) {
		return func(c club.Club, comp competition.Competition) (club.Club, competition.Competition, error) {
			c.Points -= n
			comp.NumberOfPlaces -= n
			return c, comp, nil
		}
	}

	res, err := ledger.Reserve(ctx, ClubSimplyLift, CompWinterOpen, deduct(2))
	if err != nil {
		t.Fatalf("reserve: %v", err)
	}
	if res.Club.Points != 11 || res.Competition.NumberOfPlaces != 28 {
		t.Fatalf("unexpected reservation: %+v", res)
	}

	stored, _, _ := clubs.GetByName(ctx, ClubSimplyLift)
	if stored.Points != 11 {
		t.Fatalf("expected stored points 11, got %d", stored.Points)
	}

	t.Run("rejection leaves state unchanged", func(t *testing.T) {
		rejectErr := errors.New("nope")
		_, err := ledger.Reserve(ctx, ClubSimplyLift, CompWinterOpen, func(c club.Club, comp competition.Competition) (club.Club, competition.Competition, error) {
			c.Points = 0
			return c, comp, rejectErr
		})
		if !errors.Is(err, rejectErr) {
			t.Fatalf("expected reject error, got %v", err)
		}
		stored, _, _ := clubs.GetByName(ctx, ClubSimplyLift)
		if stored.Points != 11 {
			t.Fatalf("expected points unchanged, got %d", stored.Points)
		}
	})

	t.Run("unknown names skip apply", func(t *testing.T) {
		called := false
		res, err := ledger.Reserve(ctx, "noname", CompWinterOpen, func(c club.Club, comp competition.Competition) (club.Club, competition.Competition, error) {
			called = true
			return c, comp, nil
		})
		if err != nil {
			t.Fatalf("reserve: %v", err)
		}
		if called || res.ClubExists || !res.CompetitionExists {
			t.Fatalf("unexpected result called=%v res=%+v", called, res)
		}
		comp, _, _ := comps.GetByName(ctx, CompWinterOpen)
		if comp.NumberOfPlaces != 28 {
			t.Fatalf("expected places unchanged, got %d", comp.NumberOfPlaces)
		}
	})
}

func TestLedger_ReserveConcurrent(t *testing.T) {
	ledger := MustSeedLedger()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = ledger.Reserve(ctx, ClubSheLifts, CompWinterOpen, func(c club.Club, comp competition.Competition) (club.Club, competition.Competition, error) {
				if c.Points < 1 {
					return c, comp, errors.New("out of points")
				}
				c.Points--
				comp.NumberOfPlaces--
				return c, comp, nil
			})
		}()
	}
	wg.Wait()

	got, _, _ := NewClubRepository(ledger).GetByName(ctx, ClubSheLifts)
	if got.Points != 0 {
		t.Fatalf("expected all 12 points spent exactly once, got %d left", got.Points)
	}
	comp, _, _ := NewCompetitionRepository(ledger).GetByName(ctx, CompWinterOpen)
	if comp.NumberOfPlaces != 18 {
		t.Fatalf("expected 18 places left, got %d", comp.NumberOfPlaces)
	}
}
