package conversation

// Updates is a partial context update. Nil fields are left untouched;
// set fields overwrite. Slices replace the stored value wholesale.
type Updates struct {
	Budget           *float64
	Interests        []Category
	ExperienceLevel  *ExperienceLevel
	Stage            *Stage
	LastTopic        *Topic
	ShouldPromote    *bool
	PromotionContext *string
	Achievements     []string

	SalesCount       *int
	TotalProfit      *float64
	PositiveFeedback *int
	AvgResponseTime  *float64
	BulkPurchases    *int
	ResponseRate     *float64

	// Appended rather than overwritten.
	AddSale     *SaleRecord
	AddFeedback *FeedbackRecord
}

// IsZero reports whether the update carries no changes at all.
func (u Updates) IsZero() bool {
	return u.Budget == nil && u.Interests == nil && u.ExperienceLevel == nil &&
		u.Stage == nil && u.LastTopic == nil && u.ShouldPromote == nil &&
		u.PromotionContext == nil && u.Achievements == nil &&
		u.SalesCount == nil && u.TotalProfit == nil && u.PositiveFeedback == nil &&
		u.AvgResponseTime == nil && u.BulkPurchases == nil && u.ResponseRate == nil &&
		u.AddSale == nil && u.AddFeedback == nil
}

func (u Updates) applyTo(c *Context) {
	if u.Budget != nil {
		b := *u.Budget
		c.Budget = &b
	}
	if u.Interests != nil {
		c.Interests = append([]Category(nil), u.Interests...)
	}
	if u.ExperienceLevel != nil {
		e := *u.ExperienceLevel
		c.ExperienceLevel = &e
	}
	if u.Stage != nil {
		c.Stage = *u.Stage
	}
	if u.LastTopic != nil {
		t := *u.LastTopic
		c.LastTopic = &t
	}
	if u.ShouldPromote != nil {
		c.ShouldPromote = *u.ShouldPromote
	}
	if u.PromotionContext != nil {
		c.PromotionContext = *u.PromotionContext
	}
	if u.Achievements != nil {
		c.Achievements = append([]string(nil), u.Achievements...)
	}
	if u.SalesCount != nil {
		c.SalesCount = *u.SalesCount
	}
	if u.TotalProfit != nil {
		c.TotalProfit = *u.TotalProfit
	}
	if u.PositiveFeedback != nil {
		c.PositiveFeedback = *u.PositiveFeedback
	}
	if u.AvgResponseTime != nil {
		c.AvgResponseTime = *u.AvgResponseTime
	}
	if u.BulkPurchases != nil {
		c.BulkPurchases = *u.BulkPurchases
	}
	if u.ResponseRate != nil {
		c.ResponseRate = *u.ResponseRate
	}
	if u.AddSale != nil {
		c.SalesHistory = append(c.SalesHistory, *u.AddSale)
	}
	if u.AddFeedback != nil {
		c.FeedbackHistory = append(c.FeedbackHistory, *u.AddFeedback)
	}
}

// diff returns the applied fields for observability logging.
func (u Updates) diff() map[string]any {
	fields := map[string]any{}
	if u.Budget != nil {
		fields["budget"] = *u.Budget
	}
	if u.Interests != nil {
		fields["interests"] = u.Interests
	}
	if u.ExperienceLevel != nil {
		fields["experience_level"] = string(*u.ExperienceLevel)
	}
	if u.Stage != nil {
		fields["stage"] = string(*u.Stage)
	}
	if u.LastTopic != nil {
		fields["last_topic"] = string(*u.LastTopic)
	}
	if u.ShouldPromote != nil {
		fields["should_promote"] = *u.ShouldPromote
	}
	if u.PromotionContext != nil {
		fields["promotion_context"] = *u.PromotionContext
	}
	if u.Achievements != nil {
		fields["achievements"] = u.Achievements
	}
	if u.SalesCount != nil {
		fields["sales_count"] = *u.SalesCount
	}
	if u.TotalProfit != nil {
		fields["total_profit"] = *u.TotalProfit
	}
	if u.PositiveFeedback != nil {
		fields["positive_feedback"] = *u.PositiveFeedback
	}
	if u.AvgResponseTime != nil {
		fields["avg_response_time"] = *u.AvgResponseTime
	}
	if u.BulkPurchases != nil {
		fields["bulk_purchases"] = *u.BulkPurchases
	}
	if u.ResponseRate != nil {
		fields["response_rate"] = *u.ResponseRate
	}
	if u.AddSale != nil {
		fields["sale"] = u.AddSale.Item
	}
	if u.AddFeedback != nil {
		fields["feedback_rating"] = u.AddFeedback.Rating
	}
	return fields
}

func ptr[T any](v T) *T {
	return &v
}
