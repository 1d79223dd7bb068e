package conversation

import (
	"testing"
)

func TestAnalyze_BudgetWithPromotion(t *testing.T) {
	m, _ := newTestManager()

	upd := m.Analyze("u1", "My budget is $150")

	if upd.Budget == nil || *upd.Budget != 150.0 {
		t.Fatalf("Budget = %v, want 150", upd.Budget)
	}
	if upd.Stage == nil || *upd.Stage != StageBudgetSet {
		t.Errorf("Stage = %v, want budget_set", upd.Stage)
	}
	if upd.ShouldPromote == nil || !*upd.ShouldPromote {
		t.Error("budget over 100 should set the promotion flag")
	}
	if upd.PromotionContext == nil || *upd.PromotionContext != "scale your business efficiently" {
		t.Errorf("PromotionContext = %v, want scaling context", upd.PromotionContext)
	}
}

func TestAnalyze_SmallBudgetNoPromotion(t *testing.T) {
	m, _ := newTestManager()

	upd := m.Analyze("u1", "I can spend $50")

	if upd.Budget == nil || *upd.Budget != 50.0 {
		t.Fatalf("Budget = %v, want 50", upd.Budget)
	}
	if upd.ShouldPromote != nil {
		t.Error("budget of 100 or less must not promote")
	}
}

func TestAnalyze_BudgetWithCents(t *testing.T) {
	m, _ := newTestManager()

	upd := m.Analyze("u1", "budget is 99.50 this month")

	// The amount pattern only accepts two decimal digits; 99.50 parses,
	// 99.5 would not.
	if upd.Budget == nil || *upd.Budget != 99.5 {
		t.Fatalf("Budget = %v, want 99.5", upd.Budget)
	}
}

func TestAnalyze_BudgetKeywordWithoutNumber(t *testing.T) {
	m, _ := newTestManager()

	upd := m.Analyze("u1", "still thinking about my budget")

	if upd.Budget != nil {
		t.Errorf("Budget = %v, want unset when no amount is present", *upd.Budget)
	}
	if upd.Stage != nil {
		t.Errorf("Stage = %v, want unset", *upd.Stage)
	}
}

func TestAnalyze_BeginnerNoPromotion(t *testing.T) {
	m, _ := newTestManager()

	upd := m.Analyze("u1", "I'm new to this, never sold before")

	if upd.ExperienceLevel == nil || *upd.ExperienceLevel != ExperienceBeginner {
		t.Fatalf("ExperienceLevel = %v, want beginner", upd.ExperienceLevel)
	}
	if upd.Stage == nil || *upd.Stage != StageExperienceSet {
		t.Errorf("Stage = %v, want experience_set", upd.Stage)
	}
	if upd.ShouldPromote != nil || upd.PromotionContext != nil {
		t.Error("beginner detection must not set promotion flags")
	}
}

func TestAnalyze_AdvancedPromotes(t *testing.T) {
	m, _ := newTestManager()

	upd := m.Analyze("u1", "I've been a professional reseller")

	if upd.ExperienceLevel == nil || *upd.ExperienceLevel != ExperienceAdvanced {
		t.Fatalf("ExperienceLevel = %v, want advanced", upd.ExperienceLevel)
	}
	if upd.ShouldPromote == nil || !*upd.ShouldPromote {
		t.Error("advanced detection should set the promotion flag")
	}
	if upd.PromotionContext == nil || *upd.PromotionContext != "take your business to the next level" {
		t.Errorf("PromotionContext = %v, want next-level context", upd.PromotionContext)
	}
}

func TestAnalyze_LastExperienceMatchWins(t *testing.T) {
	m, _ := newTestManager()

	// "years" matches both intermediate ("year") and advanced ("years");
	// the later table entry wins.
	upd := m.Analyze("u1", "selling for years now")

	if upd.ExperienceLevel == nil || *upd.ExperienceLevel != ExperienceAdvanced {
		t.Fatalf("ExperienceLevel = %v, want advanced", upd.ExperienceLevel)
	}
}

func TestAnalyze_PromotionTriggerLastMatchWins(t *testing.T) {
	m, _ := newTestManager()

	upd := m.Analyze("u1", "how do I handle inventory and shipping")

	if upd.ShouldPromote == nil || !*upd.ShouldPromote {
		t.Fatal("trigger keywords should set the promotion flag")
	}
	// "shipping" is later in the trigger table than "inventory".
	if upd.PromotionContext == nil || *upd.PromotionContext != "track shipments and manage deliveries" {
		t.Errorf("PromotionContext = %v, want the shipping context", upd.PromotionContext)
	}
}

func TestAnalyze_BudgetOverridesTriggerPromotion(t *testing.T) {
	m, _ := newTestManager()

	upd := m.Analyze("u1", "tracking my spend, budget $500")

	if upd.PromotionContext == nil || *upd.PromotionContext != "scale your business efficiently" {
		t.Errorf("PromotionContext = %v, want the budget rule to overwrite the trigger", upd.PromotionContext)
	}
}

func TestAnalyze_InterestsAppendOnlyNew(t *testing.T) {
	m, _ := newTestManager()

	m.GetOrCreate("u1")
	m.Update("u1", Updates{Interests: []Category{CategoryElectronics}})

	upd := m.Analyze("u1", "I like airpods and watches")

	if upd.Interests == nil {
		t.Fatal("expected an interests update")
	}
	// electronics already known; only accessories is new, appended after it.
	want := []Category{CategoryElectronics, CategoryAccessories}
	if len(upd.Interests) != len(want) {
		t.Fatalf("Interests = %v, want %v", upd.Interests, want)
	}
	for i := range want {
		if upd.Interests[i] != want[i] {
			t.Fatalf("Interests = %v, want %v", upd.Interests, want)
		}
	}
	if upd.Stage == nil || *upd.Stage != StageInterestsSet {
		t.Errorf("Stage = %v, want interests_set", upd.Stage)
	}
}

func TestAnalyze_AllInterestsKnownNoUpdate(t *testing.T) {
	m, _ := newTestManager()

	m.GetOrCreate("u1")
	m.Update("u1", Updates{Interests: []Category{CategoryFashion}})

	upd := m.Analyze("u1", "more about shoes please")

	if upd.Interests != nil {
		t.Errorf("Interests = %v, want no update when category already known", upd.Interests)
	}
	if upd.Stage != nil {
		t.Errorf("Stage = %v, want unset", *upd.Stage)
	}
}

func TestAnalyze_DoesNotCreateSession(t *testing.T) {
	m, _ := newTestManager()

	m.Analyze("ghost", "tech on a $30 budget")

	if m.ActiveSessions() != 0 {
		t.Errorf("Analyze must not create sessions, have %d", m.ActiveSessions())
	}
}

func TestAnalyze_PlainMessageYieldsNothing(t *testing.T) {
	m, _ := newTestManager()

	upd := m.Analyze("u1", "hello there")

	if !upd.IsZero() {
		t.Errorf("expected empty update, got %+v", upd)
	}
}
