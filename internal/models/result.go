package models

import "time"

// GameResult is one completed play-through: which game, how many rounds the
// pool held, and how many were answered right on the first try.
type GameResult struct {
	ID          int64
	PlayerID    int64
	GameID      string
	Score       int
	TotalRounds int
	Dimension   string
	FinishedAt  time.Time
}

// Accuracy returns the first-try success rate as a percentage.
func (r *GameResult) Accuracy() float64 {
	if r.TotalRounds == 0 {
		return 0
	}
	return float64(r.Score) / float64(r.TotalRounds) * 100
}
