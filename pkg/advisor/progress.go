package advisor

import (
	"fmt"

	"github.com/invexlabs/invexbot/pkg/conversation"
	"github.com/invexlabs/invexbot/pkg/logger"
)

const recentProfitSamples = 5

// TipSheet is one tier of canned advice, picked by sales count.
type TipSheet struct {
	Title string
	Lines []string
}

// Tips returns advice matched to how far along the user is.
func (e *Engine) Tips(userID string) TipSheet {
	uc := e.conv.GetOrCreate(userID)

	switch {
	case uc.SalesCount == 0:
		return TipSheet{Title: "🌟 Getting Started", Lines: []string{
			"Start with AirPods - only $10.90 to buy",
			"Take clear, well-lit photos",
			"Price slightly below retail",
			"List on Facebook Marketplace first",
			"Respond quickly to messages",
		}}
	case uc.SalesCount < 5:
		return TipSheet{Title: "📈 Growing Your Business", Lines: []string{
			"Try listing on multiple platforms",
			"Build a positive feedback score",
			"Track your profits carefully",
			"Consider buying in bulk",
			"Maintain quick shipping times",
		}}
	default:
		return TipSheet{Title: "🚀 Scaling Up", Lines: []string{
			"Diversify your product range",
			"Build supplier relationships",
			"Consider using InvexPro for tracking",
			"Optimize your pricing strategy",
			"Focus on customer retention",
		}}
	}
}

// ProgressReport bundles everything the progress view renders.
type ProgressReport struct {
	Context   conversation.Context
	NewBadges []string
	Summary   string
	Goals     []string
}

// Progress snapshots the user's stats, awarding any badges earned since
// the last look.
func (e *Engine) Progress(userID string) ProgressReport {
	uc := e.conv.GetOrCreate(userID)
	newBadges := e.conv.Evaluate(userID, uc)
	uc = e.conv.GetOrCreate(userID)

	return ProgressReport{
		Context:   uc,
		NewBadges: newBadges,
		Summary:   conversation.Summarize(uc),
		Goals:     conversation.NextGoals(uc),
	}
}

// SaleOutcome reports the effect of one recorded sale. Frequency and
// AvgProfit are only set once at least two sales exist.
type SaleOutcome struct {
	Profit    float64
	AvgProfit float64
	Frequency string
	NewBadges []string
}

// RecordSale logs a completed sale and rolls it into the running totals.
func (e *Engine) RecordSale(userID, item string, buyPrice, sellPrice float64, platform string) SaleOutcome {
	profit := sellPrice - buyPrice
	uc := e.conv.GetOrCreate(userID)

	e.conv.Update(userID, conversation.Updates{
		SalesCount:  ptr(uc.SalesCount + 1),
		TotalProfit: ptr(uc.TotalProfit + profit),
		AddSale: &conversation.SaleRecord{
			Item:      item,
			BuyPrice:  buyPrice,
			SellPrice: sellPrice,
			Profit:    profit,
			Platform:  platform,
			Date:      e.now(),
		},
	})

	uc = e.conv.GetOrCreate(userID)
	out := SaleOutcome{Profit: profit, NewBadges: e.conv.Evaluate(userID, uc)}

	if n := len(uc.SalesHistory); n >= 2 {
		gap := uc.SalesHistory[n-1].Date.Sub(uc.SalesHistory[n-2].Date)
		out.Frequency = fmt.Sprintf("%d days between sales", int(gap.Hours()/24))

		recent := uc.SalesHistory
		if len(recent) > recentProfitSamples {
			recent = recent[len(recent)-recentProfitSamples:]
		}
		var sum float64
		for _, s := range recent {
			sum += s.Profit
		}
		out.AvgProfit = sum / float64(len(recent))
	}

	logger.InfoCF(component, "Sale recorded", map[string]any{
		"user_id":  userID,
		"item":     item,
		"profit":   profit,
		"platform": platform,
	})
	return out
}

// FeedbackOutcome reports the effect of one recorded review.
type FeedbackOutcome struct {
	AvgRating float64
	NewBadges []string
}

// RecordFeedback logs a buyer review. Ratings of 4 and up count toward
// the positive feedback total.
func (e *Engine) RecordFeedback(userID string, rating int, comment string) FeedbackOutcome {
	uc := e.conv.GetOrCreate(userID)

	upd := conversation.Updates{
		AddFeedback: &conversation.FeedbackRecord{
			Rating:  rating,
			Comment: comment,
			Date:    e.now(),
		},
	}
	if rating >= 4 {
		upd.PositiveFeedback = ptr(uc.PositiveFeedback + 1)
	}
	e.conv.Update(userID, upd)

	uc = e.conv.GetOrCreate(userID)
	var sum float64
	for _, f := range uc.FeedbackHistory {
		sum += float64(f.Rating)
	}
	avg := 0.0
	if len(uc.FeedbackHistory) > 0 {
		avg = sum / float64(len(uc.FeedbackHistory))
	}

	return FeedbackOutcome{AvgRating: avg, NewBadges: e.conv.Evaluate(userID, uc)}
}

// Stats is the detailed statistics view over the logged histories.
type Stats struct {
	TotalSales   int
	TotalProfit  float64
	AvgProfit    float64
	BestSale     *conversation.SaleRecord
	AvgRating    float64
	FiveStars    int
	TotalReviews int
}

func (e *Engine) Stats(userID string) Stats {
	uc := e.conv.GetOrCreate(userID)

	stats := Stats{TotalSales: len(uc.SalesHistory), TotalReviews: len(uc.FeedbackHistory)}

	if stats.TotalSales > 0 {
		best := 0
		for i, s := range uc.SalesHistory {
			stats.TotalProfit += s.Profit
			if s.Profit > uc.SalesHistory[best].Profit {
				best = i
			}
		}
		stats.AvgProfit = stats.TotalProfit / float64(stats.TotalSales)
		sale := uc.SalesHistory[best]
		stats.BestSale = &sale
	}

	if stats.TotalReviews > 0 {
		var sum float64
		for _, f := range uc.FeedbackHistory {
			sum += float64(f.Rating)
			if f.Rating == 5 {
				stats.FiveStars++
			}
		}
		stats.AvgRating = sum / float64(stats.TotalReviews)
	}

	return stats
}

// ResetProgress wipes the user's stats and history back to a fresh start.
func (e *Engine) ResetProgress(userID string) {
	e.conv.Reset(userID)
}

func ptr[T any](v T) *T {
	return &v
}
