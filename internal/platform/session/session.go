package session

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	CookieName = "gudlft_session"
	issuer     = "gudlft-booking"
	maxFlashes = 8
)

// Data is what the portal keeps between requests: the logged in club and
// messages queued for the next rendered page.
type Data struct {
	ClubEmail string
	Flashes   []string
}

func (d *Data) AddFlash(msg string) {
	msg = strings.TrimSpace(msg)
	if msg == "" {
		return
	}
	d.Flashes = append(d.Flashes, msg)
	if len(d.Flashes) > maxFlashes {
		d.Flashes = d.Flashes[len(d.Flashes)-maxFlashes:]
	}
}

// PopFlashes returns pending messages and clears them.
func (d *Data) PopFlashes() []string {
	out := d.Flashes
	d.Flashes = nil
	return out
}

type claims struct {
	Email   string   `json:"email,omitempty"`
	Flashes []string `json:"flashes,omitempty"`
	jwt.RegisteredClaims
}

// Manager signs session data into an HS256 JWT cookie.
type Manager struct {
	secret []byte
	ttl    time.Duration
	secure bool
	now    func() time.Time
}

func NewManager(secret string, ttl time.Duration, secure bool) (*Manager, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, fmt.Errorf("session secret is required")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("session ttl must be > 0")
	}

	return &Manager{
		secret: []byte(secret),
		ttl:    ttl,
		secure: secure,
		now:    time.Now,
	}, nil
}

// Load returns the session carried by the request. A missing, expired or
// tampered cookie yields an empty session.
func (m *Manager) Load(r *http.Request) Data {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return Data{}
	}

	data, err := m.decode(cookie.Value)
	if err != nil {
		return Data{}
	}
	return data
}

func (m *Manager) Save(w http.ResponseWriter, data Data) error {
	if data.ClubEmail == "" && len(data.Flashes) == 0 {
		m.Clear(w)
		return nil
	}

	token, err := m.encode(data)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func (m *Manager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (m *Manager) encode(data Data) (string, error) {
	now := m.now()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Email:   data.ClubEmail,
		Flashes: data.Flashes,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	})

	signed, err := tok.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

func (m *Manager) decode(raw string) (Data, error) {
	tok, err := jwt.ParseWithClaims(raw, &claims{}, func(*jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return Data{}, fmt.Errorf("parse session token: %w", err)
	}

	cl, ok := tok.Claims.(*claims)
	if !ok || !tok.Valid {
		return Data{}, errors.New("invalid session claims")
	}
	return Data{ClubEmail: cl.Email, Flashes: cl.Flashes}, nil
}
