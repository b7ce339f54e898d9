package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"brightplay/internal/catalog"
	"brightplay/internal/game"
	"brightplay/internal/models"
	"brightplay/internal/repository"
	"brightplay/internal/sampler"
)

var (
	ErrUnknownGame = errors.New("unknown game")
	ErrNoSession   = errors.New("no active session")
)

// Owner identifies who is playing: a registered player (PlayerID set) or a
// guest (GuestID set). Guests keep their history in process memory only.
type Owner struct {
	PlayerID int64
	GuestID  string
	Name     string
	Email    string
}

// IsGuest reports whether the owner plays without an account
func (o Owner) IsGuest() bool {
	return o.PlayerID == 0
}

func (o Owner) key() string {
	if o.IsGuest() {
		return "g:" + o.GuestID
	}
	return fmt.Sprintf("p:%d", o.PlayerID)
}

// GameService runs game sessions. It holds one active session per
// (owner, game); starting a game again replaces the old session.
type GameService struct {
	mu          sync.Mutex
	catalog     *catalog.Catalog
	history     *repository.HistoryRepository
	email       *EmailService
	sessions    map[string]*game.Session
	guestStores map[string]*game.MemoryStore
}

// NewGameService creates a new game service. history may be nil when no
// database is attached; registered players then fall back to memory stores.
func NewGameService(c *catalog.Catalog, history *repository.HistoryRepository, email *EmailService) *GameService {
	return &GameService{
		catalog:     c,
		history:     history,
		email:       email,
		sessions:    make(map[string]*game.Session),
		guestStores: make(map[string]*game.MemoryStore),
	}
}

func sessionKey(owner Owner, gameID string) string {
	return owner.key() + "/" + gameID
}

// SessionState is a point-in-time snapshot of a session, taken while the
// service lock is held. Callers only ever see snapshots; the live session is
// never exposed, so concurrent requests cannot race the state machine.
type SessionState struct {
	SessionID   string
	GameID      string
	RoundIndex  int
	TotalRounds int
	Score       int
	Complete    bool
	Round       *sampler.RoundDescriptor
}

// snapshot copies the session's observable state. Callers must hold s.mu.
// Round descriptors are immutable, so sharing the pointer is safe.
func snapshot(session *game.Session) SessionState {
	state := SessionState{
		SessionID:   session.ID(),
		GameID:      session.GameID(),
		RoundIndex:  session.Index(),
		TotalRounds: session.TotalRounds(),
		Score:       session.Score(),
		Complete:    session.IsComplete(),
	}
	if round, ok := session.CurrentRound(); ok {
		state.Round = round
	}
	return state
}

// StartSession builds a fresh session for a game, replacing any session the
// owner already had running for it.
func (s *GameService) StartSession(owner Owner, gameID string) (SessionState, error) {
	def, ok := game.Lookup(gameID)
	if !ok {
		return SessionState{}, ErrUnknownGame
	}

	pool := sampler.New(s.catalog, nil).SampleMany(def.Dimension, def.Kind, def.Rounds, def.Correct, def.Distractors)
	session := game.NewSession(def.ID, pool)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionKey(owner, gameID)] = session
	return snapshot(session), nil
}

// Session returns the current state of the owner's active session for a game
func (s *GameService) Session(owner Owner, gameID string) (SessionState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionKey(owner, gameID)]
	if !ok {
		return SessionState{}, ErrNoSession
	}
	return snapshot(session), nil
}

// SubmitAnswer records an answer for the given round index and returns the
// outcome with the resulting state. An index that does not match the
// session's current round is a stale duplicate from the client and is
// ignored.
func (s *GameService) SubmitAnswer(owner Owner, gameID string, roundIndex int, correct bool) (game.SubmitOutcome, SessionState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionKey(owner, gameID)]
	if !ok {
		return game.OutcomeIgnored, SessionState{}, ErrNoSession
	}
	if roundIndex != session.Index() {
		return game.OutcomeIgnored, snapshot(session), nil
	}
	outcome := session.SubmitAnswer(correct)
	return outcome, snapshot(session), nil
}

// AdvanceRound moves the owner's session to the next round and returns
// whether it moved along with the resulting state
func (s *GameService) AdvanceRound(owner Owner, gameID string) (bool, SessionState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionKey(owner, gameID)]
	if !ok {
		return false, SessionState{}, ErrNoSession
	}
	advanced := session.AdvanceRound()
	return advanced, snapshot(session), nil
}

// Finish finalizes the owner's session, persists the score, and drops the
// session. It returns the final score and the number of rounds played.
func (s *GameService) Finish(ctx context.Context, owner Owner, gameID string) (score, totalRounds int, err error) {
	s.mu.Lock()
	session, ok := s.sessions[sessionKey(owner, gameID)]
	if ok {
		delete(s.sessions, sessionKey(owner, gameID))
	}
	s.mu.Unlock()

	if !ok {
		return 0, 0, ErrNoSession
	}

	score = session.Finalize(s.storeFor(owner))
	totalRounds = session.TotalRounds()

	if !owner.IsGuest() && s.history != nil && session.IsComplete() {
		def, _ := game.Lookup(gameID)
		result := &models.GameResult{
			PlayerID:    owner.PlayerID,
			GameID:      gameID,
			Score:       score,
			TotalRounds: totalRounds,
			Dimension:   string(def.Dimension),
		}
		if _, err := s.history.RecordResult(result); err != nil {
			log.Printf("Failed to record result for player %d: %v", owner.PlayerID, err)
		}

		if s.email != nil && owner.Email != "" {
			if err := s.email.SendProgressEmail(ctx, owner.Email, owner.Name, def.Title, result); err != nil {
				log.Printf("Failed to send progress email to %s: %v", owner.Email, err)
			}
		}
	}

	return score, totalRounds, nil
}

// RecentScores returns the owner's recent scores for a game, newest first
func (s *GameService) RecentScores(owner Owner, gameID string) ([]int, error) {
	if _, ok := game.Lookup(gameID); !ok {
		return nil, ErrUnknownGame
	}
	return s.storeFor(owner).ReadRecent(gameID, game.HistoryLimit)
}

// RecentResults returns a registered player's latest finished games across
// all games, newest first. Guests have no durable results.
func (s *GameService) RecentResults(owner Owner, limit int) ([]models.GameResult, error) {
	if owner.IsGuest() || s.history == nil {
		return []models.GameResult{}, nil
	}
	return s.history.RecentResults(owner.PlayerID, limit)
}

// storeFor picks the score store for an owner: the database for registered
// players, a per-guest memory store otherwise.
func (s *GameService) storeFor(owner Owner) game.ScoreStore {
	if !owner.IsGuest() && s.history != nil {
		return s.history.PlayerStore(owner.PlayerID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	store, ok := s.guestStores[owner.key()]
	if !ok {
		store = game.NewMemoryStore()
		s.guestStores[owner.key()] = store
	}
	return store
}
