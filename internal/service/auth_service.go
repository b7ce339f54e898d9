package service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"brightplay/internal/models"
	"brightplay/internal/repository"
	"brightplay/internal/security"
	"brightplay/internal/validation"
)

var (
	ErrEmailTaken         = errors.New("email already taken")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// AuthService handles authentication business logic. Sessions are stateless
// JWTs in a cookie, so no session table is needed.
type AuthService struct {
	players         *repository.PlayerRepository
	jwtSecret       []byte
	sessionDuration time.Duration
}

// NewAuthService creates a new auth service
func NewAuthService(players *repository.PlayerRepository, jwtSecret string, sessionDuration time.Duration) *AuthService {
	return &AuthService{
		players:         players,
		jwtSecret:       []byte(jwtSecret),
		sessionDuration: sessionDuration,
	}
}

// Register creates a new local player account
func (s *AuthService) Register(name, email, password string) (*models.Player, error) {
	if err := validation.ValidateName(name); err != nil {
		return nil, err
	}
	if err := validation.ValidateEmail(email); err != nil {
		return nil, err
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, err
	}

	existing, err := s.players.GetPlayerByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing player: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	passwordHash, err := security.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	return s.players.CreatePlayer(name, email, passwordHash)
}

// Login authenticates a player by email and password
func (s *AuthService) Login(email, password string) (*models.Player, error) {
	player, err := s.players.GetPlayerByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	if player == nil || player.PasswordHash == "" {
		return nil, ErrInvalidCredentials
	}

	if !security.CheckPassword(password, player.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return player, nil
}

// OAuthLogin resolves an OAuth identity to a player, creating the account on
// first sign-in.
func (s *AuthService) OAuthLogin(provider, subject, name, email string) (*models.Player, error) {
	if provider == "" || subject == "" {
		return nil, errors.New("missing oauth provider information")
	}
	if email != "" {
		if err := validation.ValidateEmail(email); err != nil {
			return nil, err
		}
	}
	if name == "" {
		if email != "" {
			name = strings.Split(email, "@")[0]
		} else {
			name = "Player"
		}
	}

	return s.players.UpsertOAuthPlayer(provider, subject, name, email)
}

// sessionClaims is the JWT payload for a logged-in player
type sessionClaims struct {
	Name      string `json:"name"`
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// IssueToken mints a signed session token for a player. The returned session
// ID is embedded in the token and doubles as the key for CSRF tokens.
func (s *AuthService) IssueToken(player *models.Player) (token, sessionID string, err error) {
	sessionID = security.GenerateSessionID()
	now := time.Now()

	claims := sessionClaims{
		Name:      player.Name,
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(player.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.sessionDuration)),
		},
	}

	token, err = jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return "", "", fmt.Errorf("failed to sign token: %w", err)
	}
	return token, sessionID, nil
}

// ValidateToken parses a session token and returns the player it belongs to
// along with the embedded session ID.
func (s *AuthService) ValidateToken(tokenString string) (*models.Player, string, error) {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, "", ErrInvalidToken
	}

	playerID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return nil, "", ErrInvalidToken
	}

	player, err := s.players.GetPlayerByID(playerID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to get player: %w", err)
	}
	if player == nil {
		return nil, "", ErrInvalidToken
	}

	return player, claims.SessionID, nil
}

// SessionDuration returns the configured session lifetime
func (s *AuthService) SessionDuration() time.Duration {
	return s.sessionDuration
}
