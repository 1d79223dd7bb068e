package conversation

import (
	"github.com/google/uuid"
)

// AppendHistory logs one conversation turn for the user. Unknown users
// are a no-op. Retained history is capped; the oldest entries drop first.
func (m *Manager) AppendHistory(userID, message string, fromAssistant bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sess, ok := m.sessions[userID]
	if !ok {
		return
	}

	now := m.now()
	sess.history = append(sess.history, HistoryEntry{
		ID:            uuid.NewString(),
		Timestamp:     now,
		Message:       message,
		FromAssistant: fromAssistant,
	})
	if len(sess.history) > m.historyCap {
		sess.history = append([]HistoryEntry(nil), sess.history[len(sess.history)-m.historyCap:]...)
	}
	sess.lastUpdated = now
}

// RecentHistory returns the last limit entries in chronological order,
// oldest of the window first. Unknown users get an empty slice.
func (m *Manager) RecentHistory(userID string, limit int) []HistoryEntry {
	if limit <= 0 {
		limit = defaultRecent
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	sess, ok := m.sessions[userID]
	if !ok {
		return nil
	}

	start := len(sess.history) - limit
	if start < 0 {
		start = 0
	}
	return append([]HistoryEntry(nil), sess.history[start:]...)
}
