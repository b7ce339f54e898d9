package repository

import (
	"database/sql"
	"fmt"
	"time"

	"brightplay/internal/database"
	"brightplay/internal/models"
)

// PlayerRepository handles database operations for player accounts
type PlayerRepository struct {
	db *database.DB
}

// NewPlayerRepository creates a new player repository
func NewPlayerRepository(db *database.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

// CreatePlayer inserts a new local-account player
func (r *PlayerRepository) CreatePlayer(name, email, passwordHash string) (*models.Player, error) {
	query := `
		INSERT INTO players (name, email, password_hash)
		VALUES (?, ?, ?)
	`
	id, err := r.db.ExecReturningID(query, name, email, passwordHash)
	if err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	return &models.Player{
		ID:           id,
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}, nil
}

// GetPlayerByEmail retrieves a player by email address.
// Returns nil, nil when no player has that email.
func (r *PlayerRepository) GetPlayerByEmail(email string) (*models.Player, error) {
	query := `
		SELECT id, name, COALESCE(email, ''), password_hash, oauth_provider, oauth_subject, created_at
		FROM players
		WHERE email = ?
	`
	return r.scanPlayer(r.db.QueryRow(query, email))
}

// GetPlayerByID retrieves a player by ID.
// Returns nil, nil when the player does not exist.
func (r *PlayerRepository) GetPlayerByID(id int64) (*models.Player, error) {
	query := `
		SELECT id, name, COALESCE(email, ''), password_hash, oauth_provider, oauth_subject, created_at
		FROM players
		WHERE id = ?
	`
	return r.scanPlayer(r.db.QueryRow(query, id))
}

// UpsertOAuthPlayer finds the player for an OAuth identity, creating the
// account on first sign-in. The provider's subject claim is the stable key;
// name and email refresh on every login.
func (r *PlayerRepository) UpsertOAuthPlayer(provider, subject, name, email string) (*models.Player, error) {
	query := `
		SELECT id, name, COALESCE(email, ''), password_hash, oauth_provider, oauth_subject, created_at
		FROM players
		WHERE oauth_provider = ? AND oauth_subject = ?
	`
	player, err := r.scanPlayer(r.db.QueryRow(query, provider, subject))
	if err != nil {
		return nil, err
	}

	if player != nil {
		if player.Name != name || player.Email != email {
			update := "UPDATE players SET name = ?, email = ? WHERE id = ?"
			if _, err := r.db.Exec(update, name, nullableEmail(email), player.ID); err != nil {
				return nil, fmt.Errorf("failed to refresh oauth player: %w", err)
			}
			player.Name = name
			player.Email = email
		}
		return player, nil
	}

	insert := `
		INSERT INTO players (name, email, oauth_provider, oauth_subject)
		VALUES (?, ?, ?, ?)
	`
	id, err := r.db.ExecReturningID(insert, name, nullableEmail(email), provider, subject)
	if err != nil {
		return nil, fmt.Errorf("failed to create oauth player: %w", err)
	}

	return &models.Player{
		ID:            id,
		Name:          name,
		Email:         email,
		OAuthProvider: provider,
		OAuthSubject:  subject,
		CreatedAt:     time.Now(),
	}, nil
}

func (r *PlayerRepository) scanPlayer(row *sql.Row) (*models.Player, error) {
	player := &models.Player{}
	err := row.Scan(
		&player.ID,
		&player.Name,
		&player.Email,
		&player.PasswordHash,
		&player.OAuthProvider,
		&player.OAuthSubject,
		&player.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	return player, nil
}

// nullableEmail maps an empty email to NULL so the unique index ignores
// accounts whose provider withheld the address.
func nullableEmail(email string) interface{} {
	if email == "" {
		return nil
	}
	return email
}
