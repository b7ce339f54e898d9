package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"brightplay/internal/credentials"
	"brightplay/internal/security"
	"brightplay/internal/service"
)

// Cookie names shared across handlers
const (
	TokenCookie     = "bp_token"
	GuestCookie     = "bp_guest"
	GuestNameCookie = "bp_guest_name"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const (
	OwnerContextKey   ContextKey = "owner"
	SessionContextKey ContextKey = "sessionID"
)

// Middleware holds dependencies for middleware functions
type Middleware struct {
	authService *service.AuthService
	csrf        *security.CSRFGenerator
	authLimiter *security.RateLimiter
}

// NewMiddleware creates a new middleware instance
func NewMiddleware(authService *service.AuthService, csrf *security.CSRFGenerator) *Middleware {
	return &Middleware{
		authService: authService,
		csrf:        csrf,
		authLimiter: security.NewRateLimiter(10, time.Minute),
	}
}

// ResolvePlayer identifies who is making the request. A valid session token
// wins; otherwise the request runs as a guest, minting a guest cookie on
// first contact so history sticks for the visit.
func (m *Middleware) ResolvePlayer(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cookie, err := r.Cookie(TokenCookie); err == nil {
			player, sessionID, err := m.authService.ValidateToken(cookie.Value)
			if err == nil {
				owner := service.Owner{
					PlayerID: player.ID,
					Name:     player.Name,
					Email:    player.Email,
				}
				ctx := context.WithValue(r.Context(), OwnerContextKey, owner)
				ctx = context.WithValue(ctx, SessionContextKey, sessionID)
				next(w, r.WithContext(ctx))
				return
			}
			// Expired or tampered token: fall through as guest.
			http.SetCookie(w, security.CreateDeleteCookie(r, TokenCookie))
		}

		guestID := ""
		if cookie, err := r.Cookie(GuestCookie); err == nil && cookie.Value != "" {
			guestID = cookie.Value
		}
		if guestID == "" {
			guestID = security.GenerateSessionID()
			expires := time.Now().Add(30 * 24 * time.Hour)
			http.SetCookie(w, security.CreateSessionCookie(r, GuestCookie, guestID, expires))

			if nickname, err := credentials.GenerateGuestName(); err == nil {
				nameCookie := security.CreateSessionCookie(r, GuestNameCookie, nickname, expires)
				nameCookie.HttpOnly = false
				http.SetCookie(w, nameCookie)
			}
		}

		owner := service.Owner{GuestID: guestID}
		if cookie, err := r.Cookie(GuestNameCookie); err == nil {
			owner.Name = cookie.Value
		}

		ctx := context.WithValue(r.Context(), OwnerContextKey, owner)
		next(w, r.WithContext(ctx))
	}
}

// RequireAuth rejects requests that did not resolve to a registered player
func (m *Middleware) RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return m.ResolvePlayer(func(w http.ResponseWriter, r *http.Request) {
		owner := GetOwnerFromContext(r.Context())
		if owner.IsGuest() {
			writeJSONError(w, http.StatusUnauthorized, "login required")
			return
		}
		next(w, r)
	})
}

// RequireCSRF validates the CSRF header on mutating requests from logged-in
// players. Guest requests carry no account to protect and pass through.
func (m *Middleware) RequireCSRF(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner := GetOwnerFromContext(r.Context())
		if !owner.IsGuest() {
			sessionID := GetSessionIDFromContext(r.Context())
			token := r.Header.Get("X-CSRF-Token")
			if !m.csrf.ValidateToken(sessionID, token) {
				writeJSONError(w, http.StatusForbidden, "invalid CSRF token")
				return
			}
		}
		next(w, r)
	}
}

// RateLimitAuth throttles credential endpoints per client IP
func (m *Middleware) RateLimitAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ip := security.GetClientIP(r)
		if !m.authLimiter.Allow(ip) {
			writeJSONError(w, http.StatusTooManyRequests, "too many attempts, slow down")
			return
		}
		next(w, r)
	}
}

// Logging middleware logs HTTP requests
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		next.ServeHTTP(w, r)

		log.Printf("%s %s %s", r.Method, r.URL.Path, time.Since(start))
	})
}

// GetOwnerFromContext retrieves the playing owner from the request context
func GetOwnerFromContext(ctx context.Context) service.Owner {
	owner, _ := ctx.Value(OwnerContextKey).(service.Owner)
	return owner
}

// GetSessionIDFromContext retrieves the auth session ID, empty for guests
func GetSessionIDFromContext(ctx context.Context) string {
	sessionID, _ := ctx.Value(SessionContextKey).(string)
	return sessionID
}
