package conversation

import (
	"fmt"
	"testing"
	"time"
)

func TestRecentHistory_WindowKeepsChronologicalOrder(t *testing.T) {
	m, clock := newTestManager()
	m.GetOrCreate("u1")

	for i := 1; i <= 7; i++ {
		m.AppendHistory("u1", fmt.Sprintf("msg-%d", i), i%2 == 0)
		clock.Advance(time.Second)
	}

	recent := m.RecentHistory("u1", 5)
	if len(recent) != 5 {
		t.Fatalf("got %d entries, want 5", len(recent))
	}
	for i, entry := range recent {
		want := fmt.Sprintf("msg-%d", i+3)
		if entry.Message != want {
			t.Errorf("entry[%d] = %q, want %q", i, entry.Message, want)
		}
	}
	if recent[0].FromAssistant == recent[1].FromAssistant {
		t.Error("sender flags should alternate in this fixture")
	}
}

func TestRecentHistory_UnknownUserEmpty(t *testing.T) {
	m, _ := newTestManager()

	if got := m.RecentHistory("ghost", 5); len(got) != 0 {
		t.Errorf("got %d entries for unknown user, want 0", len(got))
	}
}

func TestRecentHistory_DefaultLimit(t *testing.T) {
	m, _ := newTestManager()
	m.GetOrCreate("u1")

	for i := 0; i < 10; i++ {
		m.AppendHistory("u1", fmt.Sprintf("msg-%d", i), false)
	}

	if got := m.RecentHistory("u1", 0); len(got) != 5 {
		t.Errorf("zero limit should default to 5, got %d", len(got))
	}
}

func TestAppendHistory_UnknownUserIsNoOp(t *testing.T) {
	m, _ := newTestManager()

	m.AppendHistory("ghost", "hello", false)

	if m.ActiveSessions() != 0 {
		t.Error("AppendHistory must not create sessions")
	}
}

func TestAppendHistory_CapDropsOldest(t *testing.T) {
	m := NewManager(Options{HistoryCap: 3})
	m.GetOrCreate("u1")

	for i := 1; i <= 5; i++ {
		m.AppendHistory("u1", fmt.Sprintf("msg-%d", i), false)
	}

	recent := m.RecentHistory("u1", 10)
	if len(recent) != 3 {
		t.Fatalf("got %d entries, want cap of 3", len(recent))
	}
	if recent[0].Message != "msg-3" || recent[2].Message != "msg-5" {
		t.Errorf("cap should keep the newest entries, got %v and %v", recent[0].Message, recent[2].Message)
	}
}

func TestAppendHistory_RefreshesExpiry(t *testing.T) {
	m, clock := newTestManager()
	m.GetOrCreate("u1")

	clock.Advance(25 * time.Minute)
	m.AppendHistory("u1", "still here", false)
	clock.Advance(25 * time.Minute)

	if m.Sweep() != 0 {
		t.Error("history append should count as session activity")
	}
}

func TestAppendHistory_EntriesGetUniqueIDs(t *testing.T) {
	m, _ := newTestManager()
	m.GetOrCreate("u1")

	m.AppendHistory("u1", "a", false)
	m.AppendHistory("u1", "b", true)

	recent := m.RecentHistory("u1", 2)
	if recent[0].ID == "" || recent[0].ID == recent[1].ID {
		t.Error("history entries should carry distinct non-empty IDs")
	}
}
