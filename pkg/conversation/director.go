package conversation

import (
	"strconv"
	"strings"
)

const (
	promptInitial      = "Hey! What's your budget for starting out?"
	promptBudgetLow    = "Perfect! With ${budget}, I recommend starting with AirPods - they're only $10.90 to buy and you can sell them for $60-80! Want me to explain how?"
	promptBudgetMedium = "Nice! ${budget} is a good start. Are you interested in electronics like AirPods, or fashion items like designer clothes?"
	promptBudgetHigh   = "Awesome! ${budget} gives you lots of options. What catches your interest more: electronics, fashion, or luxury items?"
	promptInterests    = "Have you sold anything like this before?"
)

var experiencePrompts = map[ExperienceLevel]string{
	ExperienceBeginner:     "No worries! Everyone starts somewhere. Want some tips on how to get your first sale?",
	ExperienceIntermediate: "Great experience! Ready to learn some pro strategies to boost your profits?",
	ExperienceAdvanced:     "Impressive! Would you like to explore some advanced scaling techniques?",
}

var followUpPrompts = map[Topic]string{
	TopicDefault:  "What specific part would you like to know more about?",
	TopicProduct:  "Want to see the current best-selling items in this category?",
	TopicPricing:  "Would you like some pricing strategies for maximum profit?",
	TopicSupplier: "Should I tell you about our exclusive supplier network?",
}

// promotionLines maps promotion-context fragments to promotional replies.
// First substring match in table order wins.
var promotionLines = []struct {
	fragment string
	line     string
}{
	{"track your inventory", "BTW, our InvexPro app makes tracking inventory super easy! Want to check it out?"},
	{"track packages", "Quick tip: our InvexPro app can handle all your tracking needs! Interested?"},
	{"access exclusive suppliers", "Hey, want access to our exclusive supplier network through InvexPro?"},
	{"scale your business", "Ready to scale up? Our InvexPro app can help with that! Want to learn more?"},
	{"calculate profits", "BTW, InvexPro can auto-calculate all your profits! Interested?"},
	{"manage customer", "Pro tip: InvexPro makes customer management a breeze! Want to see how?"},
}

const (
	lowBudgetCeiling    = 20
	mediumBudgetCeiling = 200
)

// NextPrompt picks the next question or promotion to surface given the
// conversation stage. Unknown stages, levels, and topics fall back to
// documented defaults; this never fails.
func NextPrompt(ctx Context) string {
	// A pending promotion short-circuits the normal prompt in the
	// later stages, but only when its context matches a known line.
	if ctx.ShouldPromote && (ctx.Stage == StageExperienceSet || ctx.Stage == StageFollowUp) {
		for _, promo := range promotionLines {
			if strings.Contains(ctx.PromotionContext, promo.fragment) {
				return promo.line
			}
		}
	}

	switch ctx.Stage {
	case StageBudgetSet:
		budget := 0.0
		if ctx.Budget != nil {
			budget = *ctx.Budget
		}
		var prompt string
		switch {
		case budget <= lowBudgetCeiling:
			prompt = promptBudgetLow
		case budget < mediumBudgetCeiling:
			prompt = promptBudgetMedium
		default:
			prompt = promptBudgetHigh
		}
		return strings.ReplaceAll(prompt, "${budget}", "$"+formatAmount(budget))

	case StageInterestsSet:
		return promptInterests

	case StageExperienceSet:
		level := ExperienceBeginner
		if ctx.ExperienceLevel != nil {
			level = *ctx.ExperienceLevel
		}
		if prompt, ok := experiencePrompts[level]; ok {
			return prompt
		}
		return experiencePrompts[ExperienceBeginner]

	case StageFollowUp:
		topic := TopicDefault
		if ctx.LastTopic != nil {
			topic = *ctx.LastTopic
		}
		if prompt, ok := followUpPrompts[topic]; ok {
			return prompt
		}
		return followUpPrompts[TopicDefault]

	case StageInitial:
		return promptInitial

	default:
		return followUpPrompts[TopicDefault]
	}
}

// formatAmount renders a budget without a spurious trailing ".0";
// 15.0 becomes "15", 15.50 stays "15.5".
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
