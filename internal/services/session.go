package services

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"eventadmin/internal/domain"
)

// Session owns the authentication credential for the lifetime of the
// process. Constructed once and passed by reference to consumers; there is
// no module-level singleton.
type Session struct {
	gateway domain.Gateway
	tokens  domain.TokenStore
	logger  *slog.Logger

	mu            sync.RWMutex
	authenticated bool
}

// NewSession probes the persisted token store synchronously. An existing
// access token optimistically flips the session to authenticated without
// server revalidation; an expired token surfaces as an AuthError on the
// first subsequent API call and the caller must prompt for re-login.
func NewSession(gateway domain.Gateway, tokens domain.TokenStore, logger *slog.Logger) *Session {
	s := &Session{gateway: gateway, tokens: tokens, logger: logger}
	s.probe()
	return s
}

func (s *Session) probe() {
	pair, err := s.tokens.Load()
	if err != nil {
		s.logger.Warn("failed to load persisted tokens", "err", err)
		return
	}
	if pair.AccessToken == "" {
		return
	}
	s.mu.Lock()
	s.authenticated = true
	s.mu.Unlock()

	if exp, ok := tokenExpiry(pair.AccessToken); ok && exp.Before(time.Now()) {
		s.logger.Warn("stored access token is expired, api calls will require re-login", "expired_at", exp)
	}
}

// tokenExpiry decodes the token's registered claims without verifying the
// signature. The session has no signing key; this is informational only.
func tokenExpiry(token string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// Login exchanges credentials for a token pair and persists it. On any
// failure, network or otherwise, it reports false and leaves the session
// unauthenticated. It never returns an error to the caller.
func (s *Session) Login(ctx context.Context, email, password string) bool {
	pair, err := s.gateway.Login(ctx, email, password)
	if err != nil {
		s.logger.Warn("login failed", "err", err)
		return false
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		s.logger.Warn("login response missing tokens")
		return false
	}
	if err := s.tokens.Save(pair); err != nil {
		s.logger.Error("failed to persist tokens", "err", err)
		return false
	}
	s.mu.Lock()
	s.authenticated = true
	s.mu.Unlock()
	return true
}

// Logout clears both persisted tokens and flips the session to
// unauthenticated. It is synchronous, idempotent, and makes no network
// call.
func (s *Session) Logout() {
	if err := s.tokens.Clear(); err != nil {
		s.logger.Warn("failed to clear persisted tokens", "err", err)
	}
	s.mu.Lock()
	s.authenticated = false
	s.mu.Unlock()
}

// IsAuthenticated reports whether a credential is present. True does not
// guarantee the token is still accepted by the backend.
func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated
}
