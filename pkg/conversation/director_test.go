package conversation

import (
	"strings"
	"testing"
)

func TestNextPrompt_InitialAsksForBudget(t *testing.T) {
	prompt := NextPrompt(newContext())

	if !strings.Contains(prompt, "budget") {
		t.Errorf("initial prompt should ask for a budget, got %q", prompt)
	}
}

func TestNextPrompt_BudgetTiers(t *testing.T) {
	testcases := []struct {
		name   string
		budget float64
		want   string
	}{
		{"low-boundary", 20, "$20"},
		{"low", 15, "$15"},
		{"medium", 100, "electronics like AirPods"},
		{"high-boundary", 200, "luxury items"},
		{"high", 500, "$500"},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := newContext()
			ctx.Stage = StageBudgetSet
			ctx.Budget = ptr(tc.budget)

			prompt := NextPrompt(ctx)
			if !strings.Contains(prompt, tc.want) {
				t.Errorf("prompt %q does not contain %q", prompt, tc.want)
			}
		})
	}
}

func TestNextPrompt_BudgetSubstitutionHasNoTrailingZero(t *testing.T) {
	ctx := newContext()
	ctx.Stage = StageBudgetSet
	ctx.Budget = ptr(15.0)

	prompt := NextPrompt(ctx)
	if strings.Contains(prompt, "$15.0") {
		t.Errorf("budget must render as $15, got %q", prompt)
	}
	if !strings.Contains(prompt, "$15") {
		t.Errorf("prompt %q should contain the budget", prompt)
	}
}

func TestNextPrompt_ExperienceBranches(t *testing.T) {
	for level, want := range map[ExperienceLevel]string{
		ExperienceBeginner:     "first sale",
		ExperienceIntermediate: "pro strategies",
		ExperienceAdvanced:     "scaling techniques",
	} {
		ctx := newContext()
		ctx.Stage = StageExperienceSet
		ctx.ExperienceLevel = ptr(level)

		prompt := NextPrompt(ctx)
		if !strings.Contains(prompt, want) {
			t.Errorf("level %s: prompt %q does not contain %q", level, prompt, want)
		}
	}
}

func TestNextPrompt_ExperienceUnsetDefaultsToBeginner(t *testing.T) {
	ctx := newContext()
	ctx.Stage = StageExperienceSet

	prompt := NextPrompt(ctx)
	if !strings.Contains(prompt, "Everyone starts somewhere") {
		t.Errorf("unset level should get the beginner prompt, got %q", prompt)
	}
}

func TestNextPrompt_FollowUpTopics(t *testing.T) {
	ctx := newContext()
	ctx.Stage = StageFollowUp
	ctx.LastTopic = ptr(TopicSupplier)

	prompt := NextPrompt(ctx)
	if !strings.Contains(prompt, "supplier network") {
		t.Errorf("supplier follow-up prompt wrong: %q", prompt)
	}

	ctx.LastTopic = nil
	prompt = NextPrompt(ctx)
	if !strings.Contains(prompt, "know more about") {
		t.Errorf("missing topic should use the default prompt, got %q", prompt)
	}
}

func TestNextPrompt_PromotionOverride(t *testing.T) {
	ctx := newContext()
	ctx.Stage = StageFollowUp
	ctx.ShouldPromote = true
	ctx.PromotionContext = "scale your business efficiently"

	prompt := NextPrompt(ctx)
	if !strings.Contains(prompt, "InvexPro") {
		t.Errorf("pending promotion should surface the promotional line, got %q", prompt)
	}
}

func TestNextPrompt_PromotionIgnoredInEarlyStages(t *testing.T) {
	ctx := newContext()
	ctx.Stage = StageBudgetSet
	ctx.Budget = ptr(150.0)
	ctx.ShouldPromote = true
	ctx.PromotionContext = "scale your business efficiently"

	prompt := NextPrompt(ctx)
	if strings.Contains(prompt, "InvexPro") {
		t.Errorf("promotion must not fire before experience_set, got %q", prompt)
	}
}

func TestNextPrompt_UnmatchedPromotionFallsThrough(t *testing.T) {
	ctx := newContext()
	ctx.Stage = StageFollowUp
	ctx.ShouldPromote = true
	ctx.PromotionContext = "something unrelated"

	prompt := NextPrompt(ctx)
	if strings.Contains(prompt, "InvexPro") {
		t.Errorf("unmatched promotion context must fall through, got %q", prompt)
	}
	if !strings.Contains(prompt, "know more about") {
		t.Errorf("expected the normal follow-up prompt, got %q", prompt)
	}
}
