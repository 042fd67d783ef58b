package httpapi

import (
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/gudlft-booking/internal/usecase"
)

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) ListClubs(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListClubs")
	defer span.End()

	items, err := h.portal.PointsBoard(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list clubs failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, clubPointsToDTO(items))
}

func (h *Handler) ListCompetitions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListCompetitions")
	defer span.End()

	items, err := h.portal.ListCompetitions(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list competitions failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, competitionsToDTO(items))
}

func (h *Handler) GetAllowance(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetAllowance")
	defer span.End()

	competitionName := r.PathValue("competition")
	clubName := r.PathValue("club")

	form, err := h.portal.BookingForm(ctx, competitionName, clubName)
	if err != nil {
		h.logger.WarnContext(ctx, "get allowance failed", "club", clubName, "competition", competitionName, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, allowanceDTO{
		Club:        form.Club.Name,
		Competition: form.Competition.Name,
		Points:      form.Club.Points,
		Places:      form.Competition.NumberOfPlaces,
		MaxPlaces:   form.MaxPlaces,
	})
}

func (h *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateBooking")
	defer span.End()

	var req createBookingRequest
	decoder := sonic.ConfigDefault.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	summary, err := h.portal.PurchasePlaces(ctx, usecase.PurchaseInput{
		ClubName:        req.Club,
		CompetitionName: req.Competition,
		Places:          *req.Places,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create booking failed", "club", req.Club, "competition", req.Competition, "places", *req.Places, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, bookingDTO{
		Club:         summary.Club.Name,
		Points:       summary.Club.Points,
		Booked:       *req.Places,
		Competitions: competitionsToDTO(summary.Competitions),
	})
}
