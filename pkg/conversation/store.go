package conversation

import (
	"sync"
	"time"

	"github.com/invexlabs/invexbot/pkg/logger"
)

const (
	defaultExpiry     = 30 * time.Minute
	defaultHistoryCap = 50
	defaultRecent     = 5
)

// Options configures a Manager.
type Options struct {
	Expiry     time.Duration // session idle lifetime
	HistoryCap int           // retained history entries per user
}

// Manager owns all in-memory conversation sessions. It is safe for
// concurrent use; all map access goes through one mutex.
type Manager struct {
	mu         sync.Mutex
	sessions   map[string]*session
	expiry     time.Duration
	historyCap int
	now        func() time.Time
}

func NewManager(opts Options) *Manager {
	if opts.Expiry <= 0 {
		opts.Expiry = defaultExpiry
	}
	if opts.HistoryCap <= 0 {
		opts.HistoryCap = defaultHistoryCap
	}
	return &Manager{
		sessions:   make(map[string]*session),
		expiry:     opts.Expiry,
		historyCap: opts.HistoryCap,
		now:        time.Now,
	}
}

// GetOrCreate returns the user's context, creating a fresh session when
// none exists. Expired sessions are swept first. The read refreshes the
// session's activity timestamp. The returned Context is a snapshot.
func (m *Manager) GetOrCreate(userID string) Context {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	m.sweepLocked(now)

	sess, ok := m.sessions[userID]
	if !ok {
		sess = &session{lastUpdated: now, ctx: newContext()}
		m.sessions[userID] = sess
	} else {
		sess.lastUpdated = now
	}

	return sess.ctx.clone()
}

// Update merges a partial update into the user's context. Unknown users
// are a no-op: callers that need creation go through GetOrCreate first.
func (m *Manager) Update(userID string, upd Updates) {
	if upd.IsZero() {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	sess, ok := m.sessions[userID]
	if !ok {
		return
	}

	upd.applyTo(&sess.ctx)
	sess.lastUpdated = m.now()

	logger.InfoCF("conversation", "Updated context", map[string]any{
		"user_id": userID,
		"applied": upd.diff(),
	})
}

// Reset reinitializes the user's session to defaults. Sales and feedback
// history containers exist (empty) afterwards, distinguishing a reset
// session from a brand-new one.
func (m *Manager) Reset(userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ctx := newContext()
	ctx.SalesHistory = []SaleRecord{}
	ctx.FeedbackHistory = []FeedbackRecord{}

	m.sessions[userID] = &session{
		lastUpdated: m.now(),
		ctx:         ctx,
	}

	logger.InfoCF("conversation", "Reset context", map[string]any{"user_id": userID})
}

// Sweep removes every session idle longer than the expiry threshold and
// returns how many were removed.
func (m *Manager) Sweep() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sweepLocked(m.now())
}

func (m *Manager) sweepLocked(now time.Time) int {
	var expired []string
	for userID, sess := range m.sessions {
		if now.Sub(sess.lastUpdated) > m.expiry {
			expired = append(expired, userID)
		}
	}
	for _, userID := range expired {
		delete(m.sessions, userID)
		logger.InfoCF("conversation", "Expired session removed", map[string]any{"user_id": userID})
	}
	return len(expired)
}

// ActiveSessions returns the number of live sessions.
func (m *Manager) ActiveSessions() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

