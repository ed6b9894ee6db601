package session

import (
	"errors"
	"testing"
	"time"
)

func TestIssueAndLookup(t *testing.T) {
	svc := New(time.Hour)
	token, err := svc.Issue()
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if token == "" {
		t.Fatalf("expected non-empty token")
	}

	c, err := svc.Cart(token)
	if err != nil {
		t.Fatalf("cart lookup: %v", err)
	}
	if c == nil || !c.IsEmpty() {
		t.Fatalf("expected a fresh empty cart")
	}
}

func TestEachSessionOwnsItsCart(t *testing.T) {
	svc := New(time.Hour)
	tokenA, _ := svc.Issue()
	tokenB, _ := svc.Issue()

	cartA, err := svc.Cart(tokenA)
	if err != nil {
		t.Fatalf("cart A: %v", err)
	}
	cartB, err := svc.Cart(tokenB)
	if err != nil {
		t.Fatalf("cart B: %v", err)
	}
	if cartA == cartB {
		t.Fatalf("sessions must not share a cart")
	}

	// Same token keeps returning the same cart.
	again, _ := svc.Cart(tokenA)
	if again != cartA {
		t.Fatalf("expected stable cart per session")
	}
}

func TestUnknownTokenRejected(t *testing.T) {
	svc := New(time.Hour)
	if _, err := svc.Cart("nope"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	svc := New(-time.Second)
	token, _ := svc.Issue()
	if _, err := svc.Cart(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected expired token to be rejected, got %v", err)
	}
	// Expired entries are dropped on access.
	svc.mu.RLock()
	_, still := svc.sessions[token]
	svc.mu.RUnlock()
	if still {
		t.Fatalf("expected expired session to be deleted")
	}
}
