package httpapi

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/riskibarqy/gudlft-booking/internal/domain/club"
	"github.com/riskibarqy/gudlft-booking/internal/domain/competition"
	"github.com/riskibarqy/gudlft-booking/internal/usecase"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	pageIndex   = "index.html"
	pageWelcome = "welcome.html"
	pageBooking = "booking.html"
	pagePoints  = "points.html"
)

type indexPage struct {
	Flashes []string
}

type welcomePage struct {
	Flashes      []string
	Club         club.Club
	Competitions []usecase.CompetitionView
}

type bookingPage struct {
	Flashes []string
	Form    usecase.BookingForm
}

type pointsPage struct {
	Clubs []club.Club
}

type pageRenderer struct {
	pages map[string]*template.Template
}

func newPageRenderer() (*pageRenderer, error) {
	funcs := template.FuncMap{
		"date": func(t time.Time) string {
			return t.Format(competition.DateLayout)
		},
	}

	out := &pageRenderer{pages: make(map[string]*template.Template, 4)}
	for _, name := range []string{pageIndex, pageWelcome, pageBooking, pagePoints} {
		tmpl, err := template.New(name).Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		out.pages[name] = tmpl
	}
	return out, nil
}

// render buffers the page before the status line is written.
func (p *pageRenderer) render(ctx context.Context, w http.ResponseWriter, status int, name string, data any) error {
	_, span := startSpan(ctx, "httpapi.pageRenderer.render")
	defer span.End()

	tmpl, ok := p.pages[name]
	if !ok {
		return fmt.Errorf("unknown page %s", name)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
	return nil
}
