package conversation

// Badge names surfaced to the user.
const (
	BadgeFirstChat    = "First Chat"
	BadgeBudgetSet    = "Budget Planner"
	BadgeFirstSale    = "First Sale"
	BadgeSpeedDemon   = "Speed Demon"
	BadgeBulkMaster   = "Bulk Master"
	BadgeProfitPro    = "Profit Pro"
	BadgeFeedbackKing = "Feedback King"
)

const (
	speedDemonThreshold   = 1800 // seconds
	bulkMasterThreshold   = 5
	profitProThreshold    = 500
	feedbackKingThreshold = 10
)

// Evaluate computes badges newly earned by the given context, persists
// the union of old and new back into the store, and returns only the new
// ones. Every rule is checked against the achievement list as it was
// before this call; in particular First Chat fires only while that list
// is completely empty, so it can never fire once any badge exists.
func (m *Manager) Evaluate(userID string, ctx Context) []string {
	earned := ctx.Achievements
	var newBadges []string

	if len(earned) == 0 {
		newBadges = append(newBadges, BadgeFirstChat)
	}
	if ctx.Budget != nil && !ctx.HasAchievement(BadgeBudgetSet) {
		newBadges = append(newBadges, BadgeBudgetSet)
	}
	if ctx.SalesCount >= 1 && !ctx.HasAchievement(BadgeFirstSale) {
		newBadges = append(newBadges, BadgeFirstSale)
	}
	if ctx.AvgResponseTime < speedDemonThreshold && !ctx.HasAchievement(BadgeSpeedDemon) {
		newBadges = append(newBadges, BadgeSpeedDemon)
	}
	if ctx.BulkPurchases >= bulkMasterThreshold && !ctx.HasAchievement(BadgeBulkMaster) {
		newBadges = append(newBadges, BadgeBulkMaster)
	}
	if ctx.TotalProfit >= profitProThreshold && !ctx.HasAchievement(BadgeProfitPro) {
		newBadges = append(newBadges, BadgeProfitPro)
	}
	if ctx.PositiveFeedback >= feedbackKingThreshold && !ctx.HasAchievement(BadgeFeedbackKing) {
		newBadges = append(newBadges, BadgeFeedbackKing)
	}

	if len(newBadges) > 0 {
		union := append(append([]string(nil), earned...), newBadges...)
		m.Update(userID, Updates{Achievements: dedupe(union)})
	}

	return newBadges
}

func dedupe(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := names[:0]
	for _, n := range names {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
