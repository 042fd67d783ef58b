package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/riskibarqy/gudlft-booking/internal/domain/booking"
	"github.com/riskibarqy/gudlft-booking/internal/platform/session"
	"github.com/riskibarqy/gudlft-booking/internal/usecase"
)

const (
	flashInvalidEmail    = "Invalid mail address"
	flashSomethingWrong  = "Something went wrong-please try again"
	flashBookingComplete = "Great-booking complete!"
)

func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Index")
	defer span.End()

	data := h.sessions.Load(r)
	flashes := data.PopFlashes()
	if len(flashes) > 0 {
		h.saveSession(ctx, w, data)
	}

	h.renderPage(ctx, w, http.StatusOK, pageIndex, indexPage{Flashes: flashes})
}

func (h *Handler) ShowSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ShowSummary")
	defer span.End()

	values, ok := requiredFormValues(r, "email")
	if !ok {
		http.Error(w, "missing form field: email", http.StatusBadRequest)
		return
	}

	data := h.sessions.Load(r)
	item, err := h.portal.Login(ctx, values["email"])
	switch {
	case errors.Is(err, usecase.ErrInvalidInput), errors.Is(err, usecase.ErrNotFound):
		data.AddFlash(flashInvalidEmail)
		h.saveSession(ctx, w, data)
		http.Redirect(w, r, "/", http.StatusFound)
		return
	case err != nil:
		h.writePageError(ctx, w, err)
		return
	}

	data.ClubEmail = item.Email
	summary, err := h.portal.Summary(ctx, item.Email)
	if err != nil {
		h.writePageError(ctx, w, err)
		return
	}

	h.renderWelcome(ctx, w, http.StatusOK, data, summary)
}

func (h *Handler) BookPage(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.BookPage")
	defer span.End()

	competitionName := r.PathValue("competition")
	clubName := r.PathValue("club")
	data := h.sessions.Load(r)

	form, err := h.portal.BookingForm(ctx, competitionName, clubName)
	switch {
	case errors.Is(err, usecase.ErrNotFound), errors.Is(err, usecase.ErrInvalidInput):
		h.logger.WarnContext(ctx, "booking page lookup failed", "club", clubName, "competition", competitionName, "error", err)
		data.AddFlash(flashSomethingWrong)

		summary, sumErr := h.portal.Summary(ctx, data.ClubEmail)
		if sumErr != nil {
			h.saveSession(ctx, w, data)
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}
		h.renderWelcome(ctx, w, http.StatusOK, data, summary)
		return
	case err != nil:
		h.writePageError(ctx, w, err)
		return
	}

	flashes := data.PopFlashes()
	if len(flashes) > 0 {
		h.saveSession(ctx, w, data)
	}
	h.renderPage(ctx, w, http.StatusOK, pageBooking, bookingPage{Flashes: flashes, Form: form})
}

func (h *Handler) PurchasePlaces(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PurchasePlaces")
	defer span.End()

	values, ok := requiredFormValues(r, "competition", "club", "places")
	if !ok {
		http.Error(w, "missing form field: competition, club and places are required", http.StatusBadRequest)
		return
	}

	places, err := strconv.Atoi(strings.TrimSpace(values["places"]))
	if err != nil {
		http.Error(w, fmt.Sprintf("places must be a whole number, got %q", values["places"]), http.StatusBadRequest)
		return
	}

	input := usecase.PurchaseInput{
		ClubName:        values["club"],
		CompetitionName: values["competition"],
		Places:          places,
	}
	summary, err := h.portal.PurchasePlaces(ctx, input)
	if err != nil {
		h.logger.WarnContext(ctx, "purchase places failed", "club", input.ClubName, "competition", input.CompetitionName, "places", places, "error", err)
		if booking.IsRejection(err) {
			h.renderRejectedBooking(ctx, w, r, input, err)
			return
		}
		h.writePageError(ctx, w, err)
		return
	}

	data := h.sessions.Load(r)
	data.AddFlash(flashBookingComplete)
	h.renderWelcome(ctx, w, http.StatusOK, data, summary)
}

func (h *Handler) PointsDisplay(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PointsDisplay")
	defer span.End()

	items, err := h.portal.PointsBoard(ctx)
	if err != nil {
		h.writePageError(ctx, w, err)
		return
	}

	h.renderPage(ctx, w, http.StatusOK, pagePoints, pointsPage{Clubs: items})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	_, span := startSpan(r.Context(), "httpapi.Handler.Logout")
	defer span.End()

	h.sessions.Clear(w)
	http.Redirect(w, r, "/", http.StatusFound)
}

// renderRejectedBooking shows the booking form again with the reason. State is untouched at this point.
func (h *Handler) renderRejectedBooking(ctx context.Context, w http.ResponseWriter, r *http.Request, input usecase.PurchaseInput, cause error) {
	form, err := h.portal.BookingForm(ctx, input.CompetitionName, input.ClubName)
	if err != nil {
		h.writePageError(ctx, w, cause)
		return
	}

	data := h.sessions.Load(r)
	flashes := append(data.PopFlashes(), bookingRejectionMessage(cause, form.MaxPlaces))
	h.saveSession(ctx, w, data)
	h.renderPage(ctx, w, http.StatusBadRequest, pageBooking, bookingPage{Flashes: flashes, Form: form})
}

func (h *Handler) renderWelcome(ctx context.Context, w http.ResponseWriter, status int, data session.Data, summary usecase.Summary) {
	flashes := data.PopFlashes()
	h.saveSession(ctx, w, data)
	h.renderPage(ctx, w, status, pageWelcome, welcomePage{
		Flashes:      flashes,
		Club:         summary.Club,
		Competitions: summary.Competitions,
	})
}

func (h *Handler) renderPage(ctx context.Context, w http.ResponseWriter, status int, name string, payload any) {
	if err := h.pages.render(ctx, w, status, name, payload); err != nil {
		h.logger.ErrorContext(ctx, "render page failed", "page", name, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func (h *Handler) saveSession(ctx context.Context, w http.ResponseWriter, data session.Data) {
	if err := h.sessions.Save(w, data); err != nil {
		h.logger.ErrorContext(ctx, "save session failed", "error", err)
	}
}

func (h *Handler) writePageError(ctx context.Context, w http.ResponseWriter, err error) {
	mapped := mapError(ctx, err)
	if mapped.HTTPStatus >= http.StatusInternalServerError {
		h.logger.ErrorContext(ctx, "portal request failed", "error", err)
		http.Error(w, http.StatusText(mapped.HTTPStatus), mapped.HTTPStatus)
		return
	}
	http.Error(w, err.Error(), mapped.HTTPStatus)
}

// requiredFormValues reads the named fields and reports false when any is absent.
// Present but empty fields are returned as empty strings.
func requiredFormValues(r *http.Request, keys ...string) (map[string]string, bool) {
	if err := r.ParseForm(); err != nil {
		return nil, false
	}

	out := make(map[string]string, len(keys))
	for _, key := range keys {
		raw, ok := r.PostForm[key]
		if !ok || len(raw) == 0 {
			return nil, false
		}
		out[key] = raw[0]
	}
	return out, true
}

func bookingRejectionMessage(err error, maxPlaces int) string {
	switch {
	case errors.Is(err, booking.ErrNegativeQuantity):
		return "Number of places must be zero or more"
	case errors.Is(err, booking.ErrCompetitionClosed):
		return "This competition is over, booking is closed"
	default:
		return fmt.Sprintf("You can book at most %d places", maxPlaces)
	}
}
