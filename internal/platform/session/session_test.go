package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestManager(t *testing.T, now time.Time) *Manager {
	t.Helper()

	m, err := NewManager("test-secret", time.Hour, false)
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}
	m.now = func() time.Time { return now }
	return m
}

func roundTrip(t *testing.T, save, load *Manager, data Data) Data {
	t.Helper()

	rec := httptest.NewRecorder()
	if err := save.Save(rec, data); err != nil {
		t.Fatalf("save session: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	return load.Load(req)
}

func TestManager_RoundTrip(t *testing.T) {
	now := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	m := newTestManager(t, now)

	data := Data{ClubEmail: "john@simplylift.co"}
	data.AddFlash("Great-booking complete!")

	got := roundTrip(t, m, m, data)
	if got.ClubEmail != "john@simplylift.co" {
		t.Fatalf("unexpected email: %q", got.ClubEmail)
	}
	flashes := got.PopFlashes()
	if len(flashes) != 1 || flashes[0] != "Great-booking complete!" {
		t.Fatalf("unexpected flashes: %+v", flashes)
	}
	if len(got.Flashes) != 0 {
		t.Fatalf("expected flashes cleared after pop")
	}
}

func TestManager_RejectsForeignSignature(t *testing.T) {
	now := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	m := newTestManager(t, now)
	other, err := NewManager("another-secret", time.Hour, false)
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}
	other.now = m.now

	got := roundTrip(t, other, m, Data{ClubEmail: "john@simplylift.co"})
	if got.ClubEmail != "" {
		t.Fatalf("expected empty session for foreign signature, got %+v", got)
	}
}

func TestManager_RejectsExpired(t *testing.T) {
	issued := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	saver := newTestManager(t, issued)
	loader := newTestManager(t, issued.Add(2*time.Hour))

	got := roundTrip(t, saver, loader, Data{ClubEmail: "john@simplylift.co"})
	if got.ClubEmail != "" {
		t.Fatalf("expected empty session after expiry, got %+v", got)
	}
}

func TestManager_SaveEmptyClearsCookie(t *testing.T) {
	m := newTestManager(t, time.Now())
	rec := httptest.NewRecorder()
	if err := m.Save(rec, Data{}); err != nil {
		t.Fatalf("save session: %v", err)
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].MaxAge >= 0 {
		t.Fatalf("expected expiring cookie, got %+v", cookies)
	}
}

func TestNewManager_Validation(t *testing.T) {
	if _, err := NewManager(" ", time.Hour, false); err == nil {
		t.Fatalf("expected error for empty secret")
	}
	if _, err := NewManager("secret", 0, false); err == nil {
		t.Fatalf("expected error for zero ttl")
	}
}

func TestData_AddFlashKeepsLatest(t *testing.T) {
	var d Data
	for i := 0; i < maxFlashes+3; i++ {
		d.AddFlash("msg")
	}
	d.AddFlash("  ")
	if len(d.Flashes) != maxFlashes {
		t.Fatalf("expected %d flashes, got %d", maxFlashes, len(d.Flashes))
	}
}
