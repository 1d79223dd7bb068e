package advisor

import (
	"testing"
	"time"
)

func TestLimiter_FixedWindow(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	l := NewLimiter(3, time.Minute)
	l.now = func() time.Time { return now }

	for i := 0; i < 3; i++ {
		if ok, _ := l.Allow("u1"); !ok {
			t.Fatalf("request %d denied, want allowed", i+1)
		}
	}

	ok, retry := l.Allow("u1")
	if ok {
		t.Fatal("fourth request allowed, want denied")
	}
	if retry <= 0 || retry > time.Minute {
		t.Errorf("retry = %v, want within the window", retry)
	}

	// A different user has their own window.
	if ok, _ := l.Allow("u2"); !ok {
		t.Error("separate user denied")
	}

	// Advancing past the window resets the count.
	now = now.Add(61 * time.Second)
	if ok, _ := l.Allow("u1"); !ok {
		t.Error("request after window reset denied")
	}
}

func TestLimiter_RetryAfterShrinksWithTime(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	l := NewLimiter(1, time.Minute)
	l.now = func() time.Time { return now }

	l.Allow("u1")
	now = now.Add(45 * time.Second)

	ok, retry := l.Allow("u1")
	if ok {
		t.Fatal("second request allowed, want denied")
	}
	if retry != 15*time.Second {
		t.Errorf("retry = %v, want 15s", retry)
	}
}
