package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/facebook"
	"golang.org/x/oauth2/google"

	"brightplay/internal/config"
	"brightplay/internal/models"
	"brightplay/internal/security"
	"brightplay/internal/service"
	"brightplay/internal/validation"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	authService    *service.AuthService
	emailService   *service.EmailService
	csrf           *security.CSRFGenerator
	oauthProviders map[string]OAuthProvider
	baseURL        string
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService, emailService *service.EmailService, csrf *security.CSRFGenerator, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		emailService: emailService,
		csrf:         csrf,
		baseURL:      cfg.BaseURL,
		oauthProviders: map[string]OAuthProvider{
			"google": {
				Label: "Google",
				Config: &oauth2.Config{
					ClientID:     cfg.GoogleClientID,
					ClientSecret: cfg.GoogleClientSecret,
					Endpoint:     google.Endpoint,
					Scopes:       []string{"openid", "email", "profile"},
				},
				UserInfoURL: "https://www.googleapis.com/oauth2/v2/userinfo",
			},
			"facebook": {
				Label: "Facebook",
				Config: &oauth2.Config{
					ClientID:     cfg.FacebookClientID,
					ClientSecret: cfg.FacebookClientSecret,
					Endpoint:     facebook.Endpoint,
					Scopes:       []string{"email", "public_profile"},
				},
				UserInfoURL: "https://graph.facebook.com/me?fields=id,name,email",
			},
		},
	}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type playerResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	Guest     bool   `json:"guest"`
	CSRFToken string `json:"csrf_token,omitempty"`
}

// Register handles account creation
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	player, err := h.authService.Register(req.Name, req.Email, req.Password)
	if err != nil {
		var validationErr validation.ValidationError
		switch {
		case errors.As(err, &validationErr):
			writeJSONError(w, http.StatusBadRequest, validationErr.Error())
		case errors.Is(err, service.ErrEmailTaken):
			writeJSONError(w, http.StatusConflict, "email already taken")
		default:
			respondWithError(w, http.StatusInternalServerError, "registration failed", "Register failed", err)
		}
		return
	}

	// Welcome email is best effort.
	if h.emailService != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := h.emailService.SendWelcomeEmail(ctx, player.Email, player.Name); err != nil {
			log.Printf("Failed to send welcome email to %s: %v", player.Email, err)
		}
	}

	h.startSession(w, r, player, http.StatusCreated)
}

// Login handles credential login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	player, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeJSONError(w, http.StatusUnauthorized, "invalid email or password")
		} else {
			respondWithError(w, http.StatusInternalServerError, "login failed", "Login failed", err)
		}
		return
	}

	h.startSession(w, r, player, http.StatusOK)
}

// Logout clears the session cookie
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, security.CreateDeleteCookie(r, TokenCookie))
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// Me reports who the request is playing as, with a fresh CSRF token for
// logged-in players.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	owner := GetOwnerFromContext(r.Context())

	resp := playerResponse{
		ID:    owner.PlayerID,
		Name:  owner.Name,
		Guest: owner.IsGuest(),
	}
	if !owner.IsGuest() {
		resp.Email = owner.Email
		if token, err := h.csrf.GenerateToken(GetSessionIDFromContext(r.Context())); err == nil {
			resp.CSRFToken = token
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

// startSession issues the session cookie and responds with the player
func (h *AuthHandler) startSession(w http.ResponseWriter, r *http.Request, player *models.Player, status int) {
	token, sessionID, err := h.authService.IssueToken(player)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to start session", "IssueToken failed", err)
		return
	}

	expires := time.Now().Add(h.authService.SessionDuration())
	http.SetCookie(w, security.CreateSessionCookie(r, TokenCookie, token, expires))

	resp := playerResponse{
		ID:    player.ID,
		Name:  player.Name,
		Email: player.Email,
	}
	if csrfToken, err := h.csrf.GenerateToken(sessionID); err == nil {
		resp.CSRFToken = csrfToken
	}

	writeJSON(w, status, resp)
}
