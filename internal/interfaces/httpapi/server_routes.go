package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPortalRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /{$}", handler.Index)
	mux.HandleFunc("POST /showSummary", handler.ShowSummary)
	mux.HandleFunc("GET /book/{competition}/{club}", handler.BookPage)
	mux.HandleFunc("POST /purchasePlaces", handler.PurchasePlaces)
	mux.HandleFunc("GET /pointsDisplay", handler.PointsDisplay)
	mux.HandleFunc("GET /logout", handler.Logout)
}

func registerBookingAPIRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/clubs", handler.ListClubs)
	mux.HandleFunc("GET /v1/competitions", handler.ListCompetitions)
	mux.HandleFunc("GET /v1/competitions/{competition}/clubs/{club}/allowance", handler.GetAllowance)
	mux.HandleFunc("POST /v1/bookings", handler.CreateBooking)
}
