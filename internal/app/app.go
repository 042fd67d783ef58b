package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/riskibarqy/gudlft-booking/internal/config"
	"github.com/riskibarqy/gudlft-booking/internal/domain/booking"
	"github.com/riskibarqy/gudlft-booking/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/gudlft-booking/internal/interfaces/httpapi"
	"github.com/riskibarqy/gudlft-booking/internal/platform/logging"
	"github.com/riskibarqy/gudlft-booking/internal/platform/session"
	"github.com/riskibarqy/gudlft-booking/internal/usecase"
)

// NewHTTPServer loads clubs and competitions from the configured source and
// wires the portal. The returned cleanup releases the source connection.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	source, cleanup, err := openRecordSource(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	clubs, competitions, err := loadRecords(ctx, source)
	if err != nil {
		_ = cleanup()
		return nil, nil, err
	}

	ledger, err := memory.NewLedger(clubs, competitions)
	if err != nil {
		_ = cleanup()
		return nil, nil, fmt.Errorf("build booking ledger: %w", err)
	}
	logger.InfoContext(ctx, "booking records loaded",
		"source", cfg.DataSource,
		"clubs", len(clubs),
		"competitions", len(competitions),
	)

	rules := booking.Rules{
		MaxPlacesPerBooking:   cfg.BookingMaxPlaces,
		ClosePastCompetitions: cfg.BookingClosePastCompetitions,
	}
	portal := usecase.NewPortalService(
		memory.NewClubRepository(ledger),
		memory.NewCompetitionRepository(ledger),
		ledger,
		rules,
		logger,
	)

	sessions, err := session.NewManager(cfg.SecretKey, cfg.SessionTTL, cfg.CookieSecure)
	if err != nil {
		_ = cleanup()
		return nil, nil, fmt.Errorf("build session manager: %w", err)
	}

	handler, err := httpapi.NewHandler(portal, sessions, logger)
	if err != nil {
		_ = cleanup()
		return nil, nil, err
	}
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return server, cleanup, nil
}
