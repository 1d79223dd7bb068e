package conversation

import (
	"testing"
)

func TestEvaluate_FirstChatAndFirstSaleTogether(t *testing.T) {
	m, _ := newTestManager()

	ctx := m.GetOrCreate("u1")
	m.Update("u1", Updates{SalesCount: ptr(1)})
	ctx.SalesCount = 1

	newBadges := m.Evaluate("u1", ctx)

	want := map[string]bool{BadgeFirstChat: false, BadgeFirstSale: false}
	for _, b := range newBadges {
		if _, ok := want[b]; ok {
			want[b] = true
		}
	}
	for name, got := range want {
		if !got {
			t.Errorf("expected %q among new badges %v", name, newBadges)
		}
	}
	if len(newBadges) != 2 {
		t.Errorf("new badges = %v, want exactly First Chat and First Sale", newBadges)
	}

	// Second call: everything already earned.
	again := m.Evaluate("u1", m.GetOrCreate("u1"))
	if len(again) != 0 {
		t.Errorf("second evaluation should earn nothing, got %v", again)
	}
}

func TestEvaluate_FirstChatOnlyWhileListEmpty(t *testing.T) {
	m, _ := newTestManager()

	m.GetOrCreate("u1")
	m.Update("u1", Updates{Achievements: []string{BadgeBudgetSet}})

	ctx := m.GetOrCreate("u1")
	newBadges := m.Evaluate("u1", ctx)

	for _, b := range newBadges {
		if b == BadgeFirstChat {
			t.Error("First Chat must not fire once any badge exists")
		}
	}
}

func TestEvaluate_StatThresholds(t *testing.T) {
	testcases := []struct {
		name  string
		setup func(ctx *Context)
		badge string
	}{
		{"budget", func(c *Context) { c.Budget = ptr(50.0) }, BadgeBudgetSet},
		{"speed", func(c *Context) { c.AvgResponseTime = 1799 }, BadgeSpeedDemon},
		{"bulk", func(c *Context) { c.BulkPurchases = 5 }, BadgeBulkMaster},
		{"profit", func(c *Context) { c.TotalProfit = 500 }, BadgeProfitPro},
		{"feedback", func(c *Context) { c.PositiveFeedback = 10 }, BadgeFeedbackKing},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			m, _ := newTestManager()
			userID := "u-" + tc.name

			ctx := m.GetOrCreate(userID)
			tc.setup(&ctx)

			newBadges := m.Evaluate(userID, ctx)
			found := false
			for _, b := range newBadges {
				if b == tc.badge {
					found = true
				}
			}
			if !found {
				t.Errorf("expected %q among %v", tc.badge, newBadges)
			}
		})
	}
}

func TestEvaluate_BelowThresholdsEarnsOnlyFirstChat(t *testing.T) {
	m, _ := newTestManager()

	ctx := m.GetOrCreate("u1")
	newBadges := m.Evaluate("u1", ctx)

	if len(newBadges) != 1 || newBadges[0] != BadgeFirstChat {
		t.Errorf("new badges = %v, want only First Chat", newBadges)
	}
}

func TestEvaluate_PersistsUnion(t *testing.T) {
	m, _ := newTestManager()

	ctx := m.GetOrCreate("u1")
	ctx.SalesCount = 1
	ctx.TotalProfit = 600
	m.Evaluate("u1", ctx)

	stored := m.GetOrCreate("u1")
	for _, want := range []string{BadgeFirstChat, BadgeFirstSale, BadgeProfitPro} {
		if !stored.HasAchievement(want) {
			t.Errorf("stored achievements %v missing %q", stored.Achievements, want)
		}
	}
}

func TestEvaluate_AchievementsNeverShrink(t *testing.T) {
	m, _ := newTestManager()

	ctx := m.GetOrCreate("u1")
	ctx.SalesCount = 1
	m.Evaluate("u1", ctx)
	before := len(m.GetOrCreate("u1").Achievements)

	// Stats back at zero must not drop earned badges.
	m.Evaluate("u1", m.GetOrCreate("u1"))
	after := len(m.GetOrCreate("u1").Achievements)

	if after < before {
		t.Errorf("achievements shrank from %d to %d", before, after)
	}
}
