package cron

import (
	"context"
	"fmt"
	"time"

	"github.com/adhocore/gronx"

	"github.com/invexlabs/invexbot/pkg/logger"
)

const component = "cron"

const defaultTick = 30 * time.Second

// Sweeper fires a sweep callback on a cron schedule. Expiry also happens
// on access; the sweeper bounds how stale idle sessions can get when no
// traffic arrives.
type Sweeper struct {
	expr  string
	sweep func() int
	gron  *gronx.Gronx
	tick  time.Duration
}

// NewSweeper validates the cron expression and wires the callback. The
// callback returns how many sessions it removed, for logging.
func NewSweeper(expr string, sweep func() int) (*Sweeper, error) {
	g := gronx.New()
	if !g.IsValid(expr) {
		return nil, fmt.Errorf("invalid cron expression %q", expr)
	}
	return &Sweeper{expr: expr, sweep: sweep, gron: g, tick: defaultTick}, nil
}

// Run blocks until ctx is cancelled, sweeping whenever the schedule
// comes due. A scheduled minute fires at most once.
func (s *Sweeper) Run(ctx context.Context) {
	logger.InfoCF(component, "Sweep scheduler started", map[string]any{"schedule": s.expr})

	ticker := time.NewTicker(s.tick)
	defer ticker.Stop()

	var lastRun time.Time
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			minute := now.Truncate(time.Minute)
			if minute.Equal(lastRun) {
				continue
			}

			due, err := s.gron.IsDue(s.expr, minute)
			if err != nil {
				logger.WarnCF(component, "Schedule check failed", map[string]any{
					"schedule": s.expr,
					"error":    err.Error(),
				})
				continue
			}
			if !due {
				continue
			}

			lastRun = minute
			if removed := s.sweep(); removed > 0 {
				logger.InfoCF(component, "Expired sessions swept", map[string]any{"removed": removed})
			}
		}
	}
}
