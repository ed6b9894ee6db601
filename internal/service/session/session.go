package session

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"sync"
	"time"

	"boutique-backend/internal/cart"
)

var ErrInvalidToken = errors.New("invalid session token")

type entry struct {
	cart      *cart.Cart
	expiresAt time.Time
}

// Service issues opaque session tokens and owns one cart per session. Carts
// are never shared across sessions; the map lock only guards token lookup.
type Service struct {
	mu       sync.RWMutex
	sessions map[string]entry
	ttl      time.Duration
}

func New(ttl time.Duration) *Service {
	return &Service{
		sessions: make(map[string]entry),
		ttl:      ttl,
	}
}

// Issue creates a fresh session with an empty cart and returns its token.
func (s *Service) Issue() (string, error) {
	token, err := randomToken()
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	s.sessions[token] = entry{cart: cart.New(), expiresAt: time.Now().Add(s.ttl)}
	s.mu.Unlock()
	return token, nil
}

// Cart returns the cart owned by the session, refusing expired or unknown
// tokens. Expired sessions are dropped on access.
func (s *Service) Cart(token string) (*cart.Cart, error) {
	s.mu.RLock()
	e, ok := s.sessions[token]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrInvalidToken
	}
	if time.Now().After(e.expiresAt) {
		s.mu.Lock()
		delete(s.sessions, token)
		s.mu.Unlock()
		return nil, ErrInvalidToken
	}
	return e.cart, nil
}

// TTLSeconds exposes the session lifetime for token responses.
func (s *Service) TTLSeconds() int {
	return int(s.ttl.Seconds())
}

func randomToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
