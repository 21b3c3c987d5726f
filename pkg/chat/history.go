package chat

import (
	"sync"
	"time"
)

// sessionWindow keeps the sender's recent submissions. This feeds the
// moderation context, so it records what the sender tried to say, blocked
// or not; the distress hysteresis depends on seeing blocked attempts too.
type sessionWindow struct {
	texts  []string
	lastAt time.Time
}

// HistoryStore holds a bounded, most-recent-last text window per session.
type HistoryStore struct {
	mu       sync.Mutex
	size     int
	sessions map[string]*sessionWindow
}

func NewHistoryStore(size int) *HistoryStore {
	if size <= 0 {
		size = 5
	}
	return &HistoryStore{
		size:     size,
		sessions: make(map[string]*sessionWindow),
	}
}

// Snapshot returns a copy of the window; callers can hold it across
// suspension points without racing Append.
func (h *HistoryStore) Snapshot(sessionID string) ([]string, time.Time) {
	h.mu.Lock()
	defer h.mu.Unlock()
	w, ok := h.sessions[sessionID]
	if !ok {
		return nil, time.Time{}
	}
	out := make([]string, len(w.texts))
	copy(out, w.texts)
	return out, w.lastAt
}

func (h *HistoryStore) Append(sessionID, text string, at time.Time) {
	h.mu.Lock()
	defer h.mu.Unlock()
	w, ok := h.sessions[sessionID]
	if !ok {
		w = &sessionWindow{}
		h.sessions[sessionID] = w
	}
	w.texts = append(w.texts, text)
	if len(w.texts) > h.size {
		w.texts = w.texts[len(w.texts)-h.size:]
	}
	w.lastAt = at
}
