package httpapi

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/gudlft-booking/internal/platform/logging"
	"github.com/riskibarqy/gudlft-booking/internal/platform/session"
	"github.com/riskibarqy/gudlft-booking/internal/usecase"
)

type Handler struct {
	portal    *usecase.PortalService
	sessions  *session.Manager
	pages     *pageRenderer
	logger    *logging.Logger
	validator *validator.Validate
}

func NewHandler(
	portal *usecase.PortalService,
	sessions *session.Manager,
	logger *logging.Logger,
) (*Handler, error) {
	if logger == nil {
		logger = logging.Default()
	}

	pages, err := newPageRenderer()
	if err != nil {
		return nil, fmt.Errorf("parse page templates: %w", err)
	}

	return &Handler{
		portal:    portal,
		sessions:  sessions,
		pages:     pages,
		logger:    logger,
		validator: validator.New(),
	}, nil
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}
