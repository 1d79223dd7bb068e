package conversation

import (
	"fmt"
	"strconv"
	"strings"
)

// Summarize renders a progress report: raw stats, earned achievements,
// and the next goals to chase. Pure; no store access.
func Summarize(ctx Context) string {
	lines := []string{"Your Progress:"}

	lines = append(lines,
		fmt.Sprintf("• Sales: %d", ctx.SalesCount),
		fmt.Sprintf("• Total Profit: %s", formatMoney(ctx.TotalProfit)),
		fmt.Sprintf("• Positive Feedback: %d", ctx.PositiveFeedback),
		fmt.Sprintf("• Response Rate: %s%%", strconv.FormatFloat(ctx.ResponseRate, 'f', -1, 64)),
	)

	if len(ctx.Achievements) > 0 {
		lines = append(lines, "\nYour Achievements:")
		for _, badge := range ctx.Achievements {
			lines = append(lines, "• "+badge)
		}
	}

	if goals := NextGoals(ctx); len(goals) > 0 {
		lines = append(lines, "\nNext Goals:")
		for _, goal := range goals {
			lines = append(lines, "• "+goal)
		}
	}

	return strings.Join(lines, "\n")
}

// NextGoals lists the milestones the user has not reached yet.
func NextGoals(ctx Context) []string {
	var goals []string

	if ctx.SalesCount < 1 {
		goals = append(goals, "Make your first sale")
	} else if ctx.SalesCount < 5 {
		goals = append(goals, "Reach 5 sales")
	}

	if ctx.TotalProfit < profitProThreshold {
		goals = append(goals, fmt.Sprintf("Reach $500 in profit (Currently: %s)", formatMoney(ctx.TotalProfit)))
	}

	if ctx.PositiveFeedback < feedbackKingThreshold {
		goals = append(goals, fmt.Sprintf("Get %d more positive feedback", feedbackKingThreshold-ctx.PositiveFeedback))
	}

	return goals
}

// formatMoney renders an amount as $1,234.56.
func formatMoney(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}

	s := strconv.FormatFloat(v, 'f', 2, 64)
	dot := strings.Index(s, ".")
	intPart, fracPart := s[:dot], s[dot:]

	var b strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}

	out := "$" + b.String() + fracPart
	if neg {
		out = "-" + out
	}
	return out
}
