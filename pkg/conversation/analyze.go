package conversation

import (
	"regexp"
	"strconv"
	"strings"
)

// promotionTriggers is an ordered table: when several keywords match the
// same message, the last entry in table order wins. The order is part of
// the contract, not an accident of map iteration.
var promotionTriggers = []struct {
	keyword string
	context string
}{
	{"inventory", "track your inventory and manage stock levels"},
	{"tracking", "track packages, sales, and customer data"},
	{"supplier", "access exclusive suppliers with 2-day delivery"},
	{"scaling", "scale your business with automated tools"},
	{"profit", "calculate profits and track expenses"},
	{"customer", "manage customer relationships"},
	{"shipping", "track shipments and manage deliveries"},
}

var budgetKeywords = []string{"budget", "spend", "invest", "$"}

var budgetAmountRe = regexp.MustCompile(`\$?(\d+(?:\.\d{2})?)`)

const highBudgetThreshold = 100

var interestKeywords = []struct {
	category Category
	keywords []string
}{
	{CategoryElectronics, []string{"electronics", "airpods", "phones", "gadgets", "tech"}},
	{CategoryFashion, []string{"clothes", "fashion", "shoes", "apparel", "wear"}},
	{CategoryAccessories, []string{"accessories", "watches", "jewelry", "bags"}},
}

// experienceKeywords is ordered; a message matching several levels ends
// up with the last matching level.
var experienceKeywords = []struct {
	level    ExperienceLevel
	keywords []string
}{
	{ExperienceBeginner, []string{"new", "beginner", "starting", "never", "first time"}},
	{ExperienceIntermediate, []string{"some", "few months", "year"}},
	{ExperienceAdvanced, []string{"experienced", "professional", "years"}},
}

func containsAny(haystack string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}

// Analyze extracts context-update signals from a free-text message. All
// rules are evaluated independently and unioned into one update; later
// rules overwrite the promotion context set by earlier ones. The interest
// rule reads the user's current interests, which makes this the only rule
// that is not a pure function of the message alone.
func (m *Manager) Analyze(userID, message string) Updates {
	lower := strings.ToLower(message)
	var upd Updates

	// Promotion triggers: last matching table entry wins.
	for _, trigger := range promotionTriggers {
		if strings.Contains(lower, trigger.keyword) {
			upd.ShouldPromote = ptr(true)
			upd.PromotionContext = ptr(trigger.context)
		}
	}

	// Budget detection.
	if containsAny(lower, budgetKeywords) {
		if match := budgetAmountRe.FindStringSubmatch(message); match != nil {
			if amount, err := strconv.ParseFloat(match[1], 64); err == nil {
				upd.Budget = ptr(amount)
				upd.Stage = ptr(StageBudgetSet)

				// A serious budget is a scaling opportunity.
				if amount > highBudgetThreshold {
					upd.ShouldPromote = ptr(true)
					upd.PromotionContext = ptr("scale your business efficiently")
				}
			}
		}
	}

	// Interest detection, appending only categories not yet recorded.
	interests := m.currentInterests(userID)
	for _, entry := range interestKeywords {
		if !containsAny(lower, entry.keywords) {
			continue
		}
		known := false
		for _, existing := range interests {
			if existing == entry.category {
				known = true
				break
			}
		}
		if !known {
			interests = append(interests, entry.category)
			upd.Interests = interests
			upd.Stage = ptr(StageInterestsSet)
		}
	}

	// Experience level detection.
	for _, entry := range experienceKeywords {
		if !containsAny(lower, entry.keywords) {
			continue
		}
		upd.ExperienceLevel = ptr(entry.level)
		upd.Stage = ptr(StageExperienceSet)

		if entry.level == ExperienceIntermediate || entry.level == ExperienceAdvanced {
			upd.ShouldPromote = ptr(true)
			upd.PromotionContext = ptr("take your business to the next level")
		}
	}

	return upd
}

// currentInterests reads the stored interest set without creating a
// session or refreshing its activity timestamp.
func (m *Manager) currentInterests(userID string) []Category {
	m.mu.Lock()
	defer m.mu.Unlock()
	if sess, ok := m.sessions[userID]; ok {
		return append([]Category(nil), sess.ctx.Interests...)
	}
	return nil
}
