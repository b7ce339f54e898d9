package repository

import (
	"fmt"

	"brightplay/internal/database"
	"brightplay/internal/game"
	"brightplay/internal/models"
)

// HistoryRepository handles database operations for finished games and the
// rolling per-game score history.
type HistoryRepository struct {
	db *database.DB
}

// NewHistoryRepository creates a new history repository
func NewHistoryRepository(db *database.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// RecordResult stores one finished game
func (r *HistoryRepository) RecordResult(result *models.GameResult) (int64, error) {
	query := `
		INSERT INTO game_results (player_id, game_id, score, total_rounds, dimension)
		VALUES (?, ?, ?, ?, ?)
	`
	id, err := r.db.ExecReturningID(query, result.PlayerID, result.GameID, result.Score, result.TotalRounds, result.Dimension)
	if err != nil {
		return 0, fmt.Errorf("failed to record result: %w", err)
	}
	return id, nil
}

// RecentResults retrieves a player's most recent finished games, newest first
func (r *HistoryRepository) RecentResults(playerID int64, limit int) ([]models.GameResult, error) {
	query := `
		SELECT id, player_id, game_id, score, total_rounds, dimension, finished_at
		FROM game_results
		WHERE player_id = ?
		ORDER BY id DESC
		LIMIT ?
	`
	rows, err := r.db.Query(query, playerID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query results: %w", err)
	}
	defer rows.Close()

	var results []models.GameResult
	for rows.Next() {
		var result models.GameResult
		err := rows.Scan(
			&result.ID,
			&result.PlayerID,
			&result.GameID,
			&result.Score,
			&result.TotalRounds,
			&result.Dimension,
			&result.FinishedAt,
		)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}

	return results, rows.Err()
}

// PlayerStore returns a score store scoped to one player, backed by the
// score_history table.
func (r *HistoryRepository) PlayerStore(playerID int64) game.ScoreStore {
	return &playerScoreStore{db: r.db, playerID: playerID}
}

// playerScoreStore adapts the score_history table to the per-game score
// store the session engine finalizes into.
type playerScoreStore struct {
	db       *database.DB
	playerID int64
}

// AppendScore inserts a score and trims the player's history for that game
// back to the retention limit, in one transaction.
func (s *playerScoreStore) AppendScore(gameID string, score int) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin append: %w", err)
	}
	defer tx.Rollback()

	insert := "INSERT INTO score_history (player_id, game_id, score) VALUES (?, ?, ?)"
	if _, err := tx.Exec(insert, s.playerID, gameID, score); err != nil {
		return fmt.Errorf("failed to append score: %w", err)
	}

	// Rows are ordered by insertion id; everything older than the newest
	// HistoryLimit goes.
	trim := `
		DELETE FROM score_history
		WHERE player_id = ? AND game_id = ? AND id NOT IN (
			SELECT id FROM (
				SELECT id FROM score_history
				WHERE player_id = ? AND game_id = ?
				ORDER BY id DESC
				LIMIT ?
			) AS keep
		)
	`
	if _, err := tx.Exec(trim, s.playerID, gameID, s.playerID, gameID, game.HistoryLimit); err != nil {
		return fmt.Errorf("failed to trim history: %w", err)
	}

	return tx.Commit()
}

// ReadRecent returns up to n of the player's most recent scores for a game,
// newest first.
func (s *playerScoreStore) ReadRecent(gameID string, n int) ([]int, error) {
	query := `
		SELECT score FROM score_history
		WHERE player_id = ? AND game_id = ?
		ORDER BY id DESC
		LIMIT ?
	`
	rows, err := s.db.Query(query, s.playerID, gameID, n)
	if err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}
	defer rows.Close()

	scores := []int{}
	for rows.Next() {
		var score int
		if err := rows.Scan(&score); err != nil {
			return nil, err
		}
		scores = append(scores, score)
	}

	return scores, rows.Err()
}
