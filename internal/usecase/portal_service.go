package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/gudlft-booking/internal/domain/booking"
	"github.com/riskibarqy/gudlft-booking/internal/domain/club"
	"github.com/riskibarqy/gudlft-booking/internal/domain/competition"
	"github.com/riskibarqy/gudlft-booking/internal/platform/logging"
)

// CompetitionView is a competition as shown to a logged in club.
type CompetitionView struct {
	competition.Competition
	IsPast bool
}

// Summary is the welcome page content for one club.
type Summary struct {
	Club         club.Club
	Competitions []CompetitionView
}

type BookingForm struct {
	Club        club.Club
	Competition CompetitionView
	MaxPlaces   int
}

// PurchaseInput is the incoming payload for a booking.
type PurchaseInput struct {
	ClubName        string
	CompetitionName string
	Places          int
}

type PortalService struct {
	clubRepo        club.Repository
	competitionRepo competition.Repository
	ledger          booking.Ledger
	rules           booking.Rules
	validate        *validator.Validate
	logger          *logging.Logger
	now             func() time.Time
}

func NewPortalService(
	clubRepo club.Repository,
	competitionRepo competition.Repository,
	ledger booking.Ledger,
	rules booking.Rules,
	logger *logging.Logger,
) *PortalService {
	if logger == nil {
		logger = logging.Default()
	}

	return &PortalService{
		clubRepo:        clubRepo,
		competitionRepo: competitionRepo,
		ledger:          ledger,
		rules:           rules,
		validate:        validator.New(),
		logger:          logger,
		now:             time.Now,
	}
}

func (s *PortalService) Rules() booking.Rules {
	return s.rules
}

// Login resolves a secretary email to its club.
func (s *PortalService) Login(ctx context.Context, email string) (club.Club, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PortalService.Login")
	defer span.End()

	if email == "" {
		return club.Club{}, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if err := s.validate.VarCtx(ctx, email, "email"); err != nil {
		return club.Club{}, fmt.Errorf("%w: malformed email %q", ErrInvalidInput, email)
	}

	item, exists, err := s.clubRepo.GetByEmail(ctx, email)
	if err != nil {
		return club.Club{}, fmt.Errorf("%w: get club by email: %w", ErrDependencyUnavailable, err)
	}
	if !exists {
		s.logger.WarnContext(ctx, "login rejected", "email", email)
		return club.Club{}, fmt.Errorf("%w: club email=%s", ErrNotFound, email)
	}

	s.logger.InfoContext(ctx, "club logged in", "club", item.Name)
	return item, nil
}

// Summary returns the club behind a session email together with every competition.
func (s *PortalService) Summary(ctx context.Context, email string) (Summary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PortalService.Summary")
	defer span.End()

	if email == "" {
		return Summary{}, fmt.Errorf("%w: no club session", ErrUnauthorized)
	}

	item, exists, err := s.clubRepo.GetByEmail(ctx, email)
	if err != nil {
		return Summary{}, fmt.Errorf("%w: get club by email: %w", ErrDependencyUnavailable, err)
	}
	if !exists {
		return Summary{}, fmt.Errorf("%w: session club email=%s", ErrUnauthorized, email)
	}

	return s.summaryFor(ctx, item)
}

func (s *PortalService) BookingForm(ctx context.Context, competitionName, clubName string) (BookingForm, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PortalService.BookingForm")
	defer span.End()

	item, err := s.clubByName(ctx, clubName)
	if err != nil {
		return BookingForm{}, err
	}
	comp, err := s.competitionByName(ctx, competitionName)
	if err != nil {
		return BookingForm{}, err
	}

	return BookingForm{
		Club:        item,
		Competition: s.view(comp),
		MaxPlaces:   s.rules.Allowance(item, comp),
	}, nil
}

// PurchasePlaces books places for a club. A rejected request changes nothing.
func (s *PortalService) PurchasePlaces(ctx context.Context, input PurchaseInput) (Summary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PortalService.PurchasePlaces")
	defer span.End()

	if input.ClubName == "" {
		return Summary{}, fmt.Errorf("%w: club is required", ErrInvalidInput)
	}
	if input.CompetitionName == "" {
		return Summary{}, fmt.Errorf("%w: competition is required", ErrInvalidInput)
	}

	now := s.now().UTC()
	res, err := s.ledger.Reserve(ctx, input.ClubName, input.CompetitionName,
		func(c club.Club, comp competition.Competition) (club.Club, competition.Competition, error) {
			return s.rules.Apply(c, comp, input.Places, now)
		},
	)
	if err != nil {
		if !booking.IsRejection(err) {
			return Summary{}, fmt.Errorf("reserve places: %w", err)
		}
		s.logger.WarnContext(ctx, "booking rejected",
			"club", input.ClubName,
			"competition", input.CompetitionName,
			"places", input.Places,
			"error", err,
		)
		return Summary{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if !res.ClubExists {
		return Summary{}, fmt.Errorf("%w: club=%s", ErrNotFound, input.ClubName)
	}
	if !res.CompetitionExists {
		return Summary{}, fmt.Errorf("%w: competition=%s", ErrNotFound, input.CompetitionName)
	}

	s.logger.InfoContext(ctx, "booking accepted",
		"club", res.Club.Name,
		"competition", res.Competition.Name,
		"places", input.Places,
		"points_left", res.Club.Points,
		"places_left", res.Competition.NumberOfPlaces,
	)

	return s.summaryFor(ctx, res.Club)
}

// PointsBoard lists every club with its current points, in load order.
func (s *PortalService) PointsBoard(ctx context.Context) ([]club.Club, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PortalService.PointsBoard")
	defer span.End()

	items, err := s.clubRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list clubs: %w", ErrDependencyUnavailable, err)
	}
	return items, nil
}

func (s *PortalService) ListCompetitions(ctx context.Context) ([]CompetitionView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PortalService.ListCompetitions")
	defer span.End()

	items, err := s.competitionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list competitions: %w", ErrDependencyUnavailable, err)
	}

	out := make([]CompetitionView, 0, len(items))
	for _, item := range items {
		out = append(out, s.view(item))
	}
	return out, nil
}

func (s *PortalService) summaryFor(ctx context.Context, item club.Club) (Summary, error) {
	competitions, err := s.ListCompetitions(ctx)
	if err != nil {
		return Summary{}, err
	}
	return Summary{Club: item, Competitions: competitions}, nil
}

func (s *PortalService) clubByName(ctx context.Context, name string) (club.Club, error) {
	if name == "" {
		return club.Club{}, fmt.Errorf("%w: club is required", ErrInvalidInput)
	}

	item, exists, err := s.clubRepo.GetByName(ctx, name)
	if err != nil {
		return club.Club{}, fmt.Errorf("%w: get club by name: %w", ErrDependencyUnavailable, err)
	}
	if !exists {
		return club.Club{}, fmt.Errorf("%w: club=%s", ErrNotFound, name)
	}
	return item, nil
}

func (s *PortalService) competitionByName(ctx context.Context, name string) (competition.Competition, error) {
	if name == "" {
		return competition.Competition{}, fmt.Errorf("%w: competition is required", ErrInvalidInput)
	}

	item, exists, err := s.competitionRepo.GetByName(ctx, name)
	if err != nil {
		return competition.Competition{}, fmt.Errorf("%w: get competition by name: %w", ErrDependencyUnavailable, err)
	}
	if !exists {
		return competition.Competition{}, fmt.Errorf("%w: competition=%s", ErrNotFound, name)
	}
	return item, nil
}

func (s *PortalService) view(item competition.Competition) CompetitionView {
	return CompetitionView{Competition: item, IsPast: item.IsPast(s.now().UTC())}
}
