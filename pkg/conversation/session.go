package conversation

import "time"

// Stage is the phase of the guided conversation funnel.
type Stage string

const (
	StageInitial       Stage = "initial"
	StageBudgetSet     Stage = "budget_set"
	StageInterestsSet  Stage = "interests_set"
	StageExperienceSet Stage = "experience_set"
	StageFollowUp      Stage = "follow_up"
)

// Category is a product interest category.
type Category string

const (
	CategoryElectronics Category = "electronics"
	CategoryFashion     Category = "fashion"
	CategoryAccessories Category = "accessories"
)

// ExperienceLevel is the user's self-reported reselling experience.
type ExperienceLevel string

const (
	ExperienceBeginner     ExperienceLevel = "beginner"
	ExperienceIntermediate ExperienceLevel = "intermediate"
	ExperienceAdvanced     ExperienceLevel = "advanced"
)

// Topic is the subject of the most recent follow-up exchange.
type Topic string

const (
	TopicProduct  Topic = "product"
	TopicPricing  Topic = "pricing"
	TopicSupplier Topic = "supplier"
	TopicDefault  Topic = "default"
)

// SaleRecord is one completed sale logged by the user.
type SaleRecord struct {
	Item      string
	BuyPrice  float64
	SellPrice float64
	Profit    float64
	Platform  string
	Date      time.Time
}

// FeedbackRecord is one buyer review logged by the user.
type FeedbackRecord struct {
	Rating  int // 1-5
	Comment string
	Date    time.Time
}

// Context is the accumulated per-user conversation state.
type Context struct {
	Budget           *float64
	Interests        []Category
	ExperienceLevel  *ExperienceLevel
	Stage            Stage
	LastTopic        *Topic
	ShouldPromote    bool
	PromotionContext string
	Achievements     []string

	SalesCount       int
	TotalProfit      float64
	PositiveFeedback int
	AvgResponseTime  float64 // seconds, lower is better
	BulkPurchases    int
	ResponseRate     float64 // percent

	// Present (non-nil) only after the first reset.
	SalesHistory    []SaleRecord
	FeedbackHistory []FeedbackRecord
}

// HistoryEntry is one logged conversation turn.
type HistoryEntry struct {
	ID            string
	Timestamp     time.Time
	Message       string
	FromAssistant bool
}

const defaultAvgResponseTime = 3600

func newContext() Context {
	return Context{
		Stage:           StageInitial,
		Interests:       []Category{},
		Achievements:    []string{},
		AvgResponseTime: defaultAvgResponseTime,
	}
}

// clone returns a deep copy so callers never share slices with the store.
func (c Context) clone() Context {
	out := c
	out.Interests = append([]Category(nil), c.Interests...)
	out.Achievements = append([]string(nil), c.Achievements...)
	if c.Budget != nil {
		b := *c.Budget
		out.Budget = &b
	}
	if c.ExperienceLevel != nil {
		e := *c.ExperienceLevel
		out.ExperienceLevel = &e
	}
	if c.LastTopic != nil {
		t := *c.LastTopic
		out.LastTopic = &t
	}
	if c.SalesHistory != nil {
		out.SalesHistory = append([]SaleRecord{}, c.SalesHistory...)
	}
	if c.FeedbackHistory != nil {
		out.FeedbackHistory = append([]FeedbackRecord{}, c.FeedbackHistory...)
	}
	return out
}

// HasInterest reports whether category is already recorded.
func (c Context) HasInterest(cat Category) bool {
	for _, existing := range c.Interests {
		if existing == cat {
			return true
		}
	}
	return false
}

// HasAchievement reports whether the badge name is already earned.
func (c Context) HasAchievement(name string) bool {
	for _, a := range c.Achievements {
		if a == name {
			return true
		}
	}
	return false
}

type session struct {
	lastUpdated time.Time
	ctx         Context
	history     []HistoryEntry
}
