package game

import (
	"log"
	"time"

	"brightplay/internal/sampler"

	"github.com/google/uuid"
)

// SubmitOutcome tells the caller what a SubmitAnswer call did.
type SubmitOutcome string

const (
	// OutcomeLocked means the answer was correct; the round is locked and
	// waits for AdvanceRound.
	OutcomeLocked SubmitOutcome = "locked"
	// OutcomeRetry means the answer was wrong; the round stays open but no
	// longer counts for first-try scoring.
	OutcomeRetry SubmitOutcome = "retry"
	// OutcomeIgnored means the submission arrived after the round locked or
	// the session completed. Duplicate UI events land here silently.
	OutcomeIgnored SubmitOutcome = "ignored"
)

// Session runs one play-through of a game: an ordered pool of rounds, a
// cursor, and first-try scoring. It is not safe for concurrent use; each
// game instance owns exactly one session and the service serializes access.
type Session struct {
	id      string
	gameID  string
	pool    []*sampler.RoundDescriptor
	index   int
	score   int
	started time.Time

	firstAttempt bool
	locked       bool
	finalized    bool
}

// NewSession starts a session over the given pool. An empty pool is legal
// (catalog exhaustion) and yields an immediately complete session.
func NewSession(gameID string, pool []*sampler.RoundDescriptor) *Session {
	return &Session{
		id:           uuid.New().String(),
		gameID:       gameID,
		pool:         pool,
		started:      time.Now(),
		firstAttempt: true,
	}
}

// ID returns the session's unique identifier.
func (s *Session) ID() string { return s.id }

// GameID returns the game this session belongs to.
func (s *Session) GameID() string { return s.gameID }

// Score returns the number of rounds answered correctly on the first try.
func (s *Session) Score() int { return s.score }

// Index returns the 0-based cursor into the pool.
func (s *Session) Index() int { return s.index }

// TotalRounds returns the number of rounds in this play-through.
func (s *Session) TotalRounds() int { return len(s.pool) }

// StartedAt returns when the session was created.
func (s *Session) StartedAt() time.Time { return s.started }

// IsComplete reports whether the cursor has passed the last round.
func (s *Session) IsComplete() bool { return s.index >= len(s.pool) }

// RoundLocked reports whether the current round has been answered correctly
// and is waiting for AdvanceRound.
func (s *Session) RoundLocked() bool { return s.locked }

// CurrentRound returns the round under the cursor, or ok=false once the
// session is complete.
func (s *Session) CurrentRound() (*sampler.RoundDescriptor, bool) {
	if s.IsComplete() {
		return nil, false
	}
	return s.pool[s.index], true
}

// SubmitAnswer records one answer event for the current round.
//
// A correct answer locks the round and scores it if no wrong answer came
// first. A wrong answer clears the first-attempt flag and leaves the round
// open. Anything after the lock, or after completion, is a no-op: the
// animation layer double-fires events and must not be able to double-score.
func (s *Session) SubmitAnswer(correct bool) SubmitOutcome {
	if s.IsComplete() || s.locked {
		return OutcomeIgnored
	}

	if !correct {
		s.firstAttempt = false
		return OutcomeRetry
	}

	if s.firstAttempt {
		s.score++
	}
	s.locked = true
	return OutcomeLocked
}

// AdvanceRound moves to the next round once the current one is locked.
// Returns false when there is nothing to advance (round still open, or
// session already complete).
func (s *Session) AdvanceRound() bool {
	if s.IsComplete() || !s.locked {
		return false
	}
	s.index++
	s.locked = false
	s.firstAttempt = true
	return true
}

// Finalize returns the final score and appends it to the store the first
// time it is called on a complete session. Persistence is best-effort: a
// store failure is logged and the score is still returned, so a flaky
// backend can never lose the in-memory result.
func (s *Session) Finalize(store ScoreStore) int {
	if !s.IsComplete() || s.finalized {
		return s.score
	}
	s.finalized = true

	if store != nil {
		if err := store.AppendScore(s.gameID, s.score); err != nil {
			log.Printf("Failed to append score for game %s: %v", s.gameID, err)
		}
	}
	return s.score
}
