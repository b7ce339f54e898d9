package game

import "sync"

// HistoryLimit caps how many recent scores are kept per game.
const HistoryLimit = 20

// ScoreStore persists final session scores, newest first, capped at
// HistoryLimit entries per game. The SQL-backed implementation lives in the
// repository package; MemoryStore covers guests and tests.
type ScoreStore interface {
	AppendScore(gameID string, score int) error
	ReadRecent(gameID string, n int) ([]int, error)
}

// MemoryStore is an in-process ScoreStore. Safe for concurrent use.
type MemoryStore struct {
	mu     sync.Mutex
	scores map[string][]int // newest first
}

// NewMemoryStore creates an empty in-memory score store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{scores: make(map[string][]int)}
}

// AppendScore records a score as the most recent entry, trimming anything
// past HistoryLimit.
func (m *MemoryStore) AppendScore(gameID string, score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	recent := append([]int{score}, m.scores[gameID]...)
	if len(recent) > HistoryLimit {
		recent = recent[:HistoryLimit]
	}
	m.scores[gameID] = recent
	return nil
}

// ReadRecent returns up to n scores, newest first.
func (m *MemoryStore) ReadRecent(gameID string, n int) ([]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	recent := m.scores[gameID]
	if n > len(recent) {
		n = len(recent)
	}
	out := make([]int, n)
	copy(out, recent[:n])
	return out, nil
}
