package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"brightplay/internal/game"
	"brightplay/internal/sampler"
	"brightplay/internal/service"
)

// GameHandler serves the JSON API the browser games talk to
type GameHandler struct {
	games *service.GameService
}

// NewGameHandler creates a new game handler
func NewGameHandler(games *service.GameService) *GameHandler {
	return &GameHandler{games: games}
}

// sessionState is the wire shape for the session's current position
type sessionState struct {
	GameID      string                   `json:"game_id"`
	RoundIndex  int                      `json:"round_index"`
	TotalRounds int                      `json:"total_rounds"`
	Score       int                      `json:"score"`
	Complete    bool                     `json:"complete"`
	Round       *sampler.RoundDescriptor `json:"round,omitempty"`
}

func stateOf(s service.SessionState) sessionState {
	return sessionState{
		GameID:      s.GameID,
		RoundIndex:  s.RoundIndex,
		TotalRounds: s.TotalRounds,
		Score:       s.Score,
		Complete:    s.Complete,
		Round:       s.Round,
	}
}

// List returns the game registry
func (h *GameHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"games": game.Games()})
}

// Start builds a fresh session and returns its first round
func (h *GameHandler) Start(w http.ResponseWriter, r *http.Request) {
	owner := GetOwnerFromContext(r.Context())

	session, err := h.games.StartSession(owner, r.PathValue("gameID"))
	if err != nil {
		h.gameError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, stateOf(session))
}

// Shuffle discards the current session and rebuilds it with a fresh draw
func (h *GameHandler) Shuffle(w http.ResponseWriter, r *http.Request) {
	h.Start(w, r)
}

// Round returns the session's current position
func (h *GameHandler) Round(w http.ResponseWriter, r *http.Request) {
	owner := GetOwnerFromContext(r.Context())

	session, err := h.games.Session(owner, r.PathValue("gameID"))
	if err != nil {
		h.gameError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stateOf(session))
}

type answerRequest struct {
	Round   int  `json:"round"`
	Correct bool `json:"correct"`
}

// Answer records an answer for a round. Stale and post-lock submissions are
// acknowledged but change nothing.
func (h *GameHandler) Answer(w http.ResponseWriter, r *http.Request) {
	owner := GetOwnerFromContext(r.Context())

	var req answerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	outcome, state, err := h.games.SubmitAnswer(owner, r.PathValue("gameID"), req.Round, req.Correct)
	if err != nil {
		h.gameError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"outcome": outcome,
		"state":   stateOf(state),
	})
}

// Advance moves to the next round after the client's reveal animation
func (h *GameHandler) Advance(w http.ResponseWriter, r *http.Request) {
	owner := GetOwnerFromContext(r.Context())

	advanced, state, err := h.games.AdvanceRound(owner, r.PathValue("gameID"))
	if err != nil {
		h.gameError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"advanced": advanced,
		"state":    stateOf(state),
	})
}

// Finish finalizes the session and returns the final tally
func (h *GameHandler) Finish(w http.ResponseWriter, r *http.Request) {
	owner := GetOwnerFromContext(r.Context())

	score, total, err := h.games.Finish(r.Context(), owner, r.PathValue("gameID"))
	if err != nil {
		h.gameError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{
		"score":        score,
		"total_rounds": total,
	})
}

// History returns the owner's recent scores for a game, newest first
func (h *GameHandler) History(w http.ResponseWriter, r *http.Request) {
	owner := GetOwnerFromContext(r.Context())

	scores, err := h.games.RecentScores(owner, r.PathValue("gameID"))
	if err != nil {
		h.gameError(w, err)
		return
	}
	if scores == nil {
		scores = []int{}
	}

	writeJSON(w, http.StatusOK, map[string][]int{"scores": scores})
}

type resultEntry struct {
	GameID      string  `json:"game_id"`
	Score       int     `json:"score"`
	TotalRounds int     `json:"total_rounds"`
	Dimension   string  `json:"dimension"`
	Accuracy    float64 `json:"accuracy"`
	FinishedAt  string  `json:"finished_at"`
}

// Results returns a registered player's latest finished games, newest first
func (h *GameHandler) Results(w http.ResponseWriter, r *http.Request) {
	owner := GetOwnerFromContext(r.Context())

	results, err := h.games.RecentResults(owner, game.HistoryLimit)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "internal error", "RecentResults failed", err)
		return
	}

	entries := make([]resultEntry, 0, len(results))
	for _, res := range results {
		entries = append(entries, resultEntry{
			GameID:      res.GameID,
			Score:       res.Score,
			TotalRounds: res.TotalRounds,
			Dimension:   res.Dimension,
			Accuracy:    res.Accuracy(),
			FinishedAt:  res.FinishedAt.Format(time.RFC3339),
		})
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"results": entries})
}

func (h *GameHandler) gameError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrUnknownGame):
		writeJSONError(w, http.StatusNotFound, "unknown game")
	case errors.Is(err, service.ErrNoSession):
		writeJSONError(w, http.StatusNotFound, "no active session")
	default:
		respondWithError(w, http.StatusInternalServerError, "internal error", "game handler error", err)
	}
}
