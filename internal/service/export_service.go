package service

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"brightplay/internal/database"
)

// BackupData represents the complete database backup structure
type BackupData struct {
	Version    string          `json:"version"`
	ExportedAt time.Time       `json:"exported_at"`
	Players    []PlayerBackup  `json:"players"`
	Results    []ResultBackup  `json:"results"`
	History    []HistoryBackup `json:"history"`
}

// PlayerBackup represents a player record for backup
type PlayerBackup struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"password_hash"`
	OAuthProvider string    `json:"oauth_provider"`
	OAuthSubject  string    `json:"oauth_subject"`
	CreatedAt     time.Time `json:"created_at"`
}

// ResultBackup represents a finished game for backup
type ResultBackup struct {
	ID          int64     `json:"id"`
	PlayerID    int64     `json:"player_id"`
	GameID      string    `json:"game_id"`
	Score       int       `json:"score"`
	TotalRounds int       `json:"total_rounds"`
	Dimension   string    `json:"dimension"`
	FinishedAt  time.Time `json:"finished_at"`
}

// HistoryBackup represents one rolling score entry for backup
type HistoryBackup struct {
	ID         int64     `json:"id"`
	PlayerID   int64     `json:"player_id"`
	GameID     string    `json:"game_id"`
	Score      int       `json:"score"`
	RecordedAt time.Time `json:"recorded_at"`
}

// ExportService handles database export and restore operations
type ExportService struct {
	db *database.DB
}

// NewExportService creates a new export service
func NewExportService(db *database.DB) *ExportService {
	return &ExportService{db: db}
}

// Export writes a complete backup of the database to a file
func (s *ExportService) Export(outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	if err := s.ExportToWriter(file); err != nil {
		return err
	}

	log.Printf("Database exported successfully to %s", outputPath)
	return nil
}

// ExportToWriter exports the database as indented JSON
func (s *ExportService) ExportToWriter(w io.Writer) error {
	backup := &BackupData{
		Version:    "1.0",
		ExportedAt: time.Now(),
	}

	if err := s.exportPlayers(backup); err != nil {
		return fmt.Errorf("failed to export players: %w", err)
	}
	if err := s.exportResults(backup); err != nil {
		return fmt.Errorf("failed to export results: %w", err)
	}
	if err := s.exportHistory(backup); err != nil {
		return fmt.Errorf("failed to export history: %w", err)
	}

	log.Printf("Exported: %d players, %d results, %d history rows",
		len(backup.Players), len(backup.Results), len(backup.History))

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(backup)
}

// Import restores a database from a backup file
func (s *ExportService) Import(inputPath string) error {
	file, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("failed to open input file: %w", err)
	}
	defer file.Close()

	return s.ImportFromReader(file)
}

// ImportFromReader restores a database from a backup reader
func (s *ExportService) ImportFromReader(reader io.Reader) error {
	var backup BackupData
	if err := json.NewDecoder(reader).Decode(&backup); err != nil {
		return fmt.Errorf("failed to decode backup: %w", err)
	}

	log.Printf("Backup version: %s, exported at: %s", backup.Version, backup.ExportedAt)

	// Import in order of dependencies
	if err := s.importPlayers(backup.Players); err != nil {
		return fmt.Errorf("failed to import players: %w", err)
	}
	if err := s.importResults(backup.Results); err != nil {
		return fmt.Errorf("failed to import results: %w", err)
	}
	if err := s.importHistory(backup.History); err != nil {
		return fmt.Errorf("failed to import history: %w", err)
	}

	log.Println("Database import completed successfully")
	return nil
}

func (s *ExportService) exportPlayers(backup *BackupData) error {
	query := "SELECT id, name, COALESCE(email, ''), password_hash, oauth_provider, oauth_subject, created_at FROM players ORDER BY id"
	rows, err := s.db.Query(query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var p PlayerBackup
		if err := rows.Scan(&p.ID, &p.Name, &p.Email, &p.PasswordHash, &p.OAuthProvider, &p.OAuthSubject, &p.CreatedAt); err != nil {
			return err
		}
		backup.Players = append(backup.Players, p)
	}
	return rows.Err()
}

func (s *ExportService) exportResults(backup *BackupData) error {
	query := "SELECT id, player_id, game_id, score, total_rounds, dimension, finished_at FROM game_results ORDER BY id"
	rows, err := s.db.Query(query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var r ResultBackup
		if err := rows.Scan(&r.ID, &r.PlayerID, &r.GameID, &r.Score, &r.TotalRounds, &r.Dimension, &r.FinishedAt); err != nil {
			return err
		}
		backup.Results = append(backup.Results, r)
	}
	return rows.Err()
}

func (s *ExportService) exportHistory(backup *BackupData) error {
	query := "SELECT id, player_id, game_id, score, recorded_at FROM score_history ORDER BY id"
	rows, err := s.db.Query(query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var h HistoryBackup
		if err := rows.Scan(&h.ID, &h.PlayerID, &h.GameID, &h.Score, &h.RecordedAt); err != nil {
			return err
		}
		backup.History = append(backup.History, h)
	}
	return rows.Err()
}

func (s *ExportService) importPlayers(players []PlayerBackup) error {
	log.Printf("Importing %d players...", len(players))
	for _, p := range players {
		query := "INSERT INTO players (id, name, email, password_hash, oauth_provider, oauth_subject, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)"
		_, err := s.db.Exec(query, p.ID, p.Name, nullIfEmpty(p.Email), p.PasswordHash, p.OAuthProvider, p.OAuthSubject, p.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to import player %d: %w", p.ID, err)
		}
	}
	return nil
}

func (s *ExportService) importResults(results []ResultBackup) error {
	log.Printf("Importing %d results...", len(results))
	for _, r := range results {
		query := "INSERT INTO game_results (id, player_id, game_id, score, total_rounds, dimension, finished_at) VALUES (?, ?, ?, ?, ?, ?, ?)"
		_, err := s.db.Exec(query, r.ID, r.PlayerID, r.GameID, r.Score, r.TotalRounds, r.Dimension, r.FinishedAt)
		if err != nil {
			return fmt.Errorf("failed to import result %d: %w", r.ID, err)
		}
	}
	return nil
}

func (s *ExportService) importHistory(history []HistoryBackup) error {
	log.Printf("Importing %d history rows...", len(history))
	for _, h := range history {
		query := "INSERT INTO score_history (id, player_id, game_id, score, recorded_at) VALUES (?, ?, ?, ?, ?)"
		_, err := s.db.Exec(query, h.ID, h.PlayerID, h.GameID, h.Score, h.RecordedAt)
		if err != nil {
			return fmt.Errorf("failed to import history row %d: %w", h.ID, err)
		}
	}
	return nil
}

func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
