// Package session keeps per-browser state in an HS256-signed cookie: the
// admin login flag and pending flash notices.
package session

import (
	"fmt"
	"net/http"
	"perfume-designer/internal/config"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const CookieName = "perfume_session"

const (
	CategorySuccess = "success"
	CategoryError   = "error"
)

type Flash struct {
	Category string `json:"category"`
	Message  string `json:"message"`
}

type Session struct {
	adminLoggedIn bool
	flashes       []Flash
	dirty         bool
}

func New() *Session {
	return &Session{}
}

func (s *Session) AdminLoggedIn() bool {
	return s.adminLoggedIn
}

func (s *Session) SetAdminLoggedIn(v bool) {
	s.adminLoggedIn = v
	s.dirty = true
}

func (s *Session) AddFlash(category, message string) {
	s.flashes = append(s.flashes, Flash{Category: category, Message: message})
	s.dirty = true
}

// PopFlashes returns pending notices and clears them.
func (s *Session) PopFlashes() []Flash {
	flashes := s.flashes
	if len(flashes) > 0 {
		s.flashes = nil
		s.dirty = true
	}
	return flashes
}

// Dirty reports whether the session changed since it was loaded.
func (s *Session) Dirty() bool {
	return s.dirty
}

type claims struct {
	Admin   bool    `json:"admin,omitempty"`
	Flashes []Flash `json:"flashes,omitempty"`
	jwt.RegisteredClaims
}

type Store struct {
	secret []byte
	ttl    time.Duration
	secure bool
}

func NewStore(cfg config.Session, secure bool) *Store {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Store{
		secret: []byte(cfg.Secret),
		ttl:    ttl,
		secure: secure,
	}
}

func (s *Store) Encode(sess *Session) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims{
		Admin:   sess.adminLoggedIn,
		Flashes: sess.flashes,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign session: %w", err)
	}
	return signed, nil
}

func (s *Store) Decode(raw string) (*Session, error) {
	var c claims
	_, err := jwt.ParseWithClaims(raw, &c, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("parse session: %w", err)
	}

	return &Session{
		adminLoggedIn: c.Admin,
		flashes:       c.Flashes,
	}, nil
}

// Load reads the session cookie. A missing, tampered or expired cookie gives
// an empty session.
func (s *Store) Load(r *http.Request) *Session {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return New()
	}

	sess, err := s.Decode(cookie.Value)
	if err != nil {
		return New()
	}
	return sess
}

func (s *Store) Save(w http.ResponseWriter, sess *Session) error {
	value, err := s.Encode(sess)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(s.ttl.Seconds()),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}
