package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/elsmrh/sami-yaya/pkg/crypto"
	"github.com/elsmrh/sami-yaya/pkg/metrics"
)

// DefaultTokenLength is the number of random bytes backing a session token.
const DefaultTokenLength = 32

// ErrInvalidCredentials is returned when the supplied password does not match
// the configured admin credential.
var ErrInvalidCredentials = errors.New("session: invalid credentials")

// Config captures the settings required by the session service.
type Config struct {
	AdminPassword string
	TokenLength   int
}

// SessionService issues and validates opaque bearer tokens for the single
// shared admin credential. Tokens live only in process memory: a restart
// invalidates every outstanding token and forces re-login. There is no
// expiry; a token stays valid until logout.
type SessionService struct {
	password string
	tokenLen int

	mu     sync.RWMutex
	tokens map[string]struct{}
}

// NewSessionService constructs the session authority for the given credential.
func NewSessionService(cfg Config) (*SessionService, error) {
	if strings.TrimSpace(cfg.AdminPassword) == "" {
		return nil, errors.New("session: admin password is required")
	}

	length := cfg.TokenLength
	if length <= 0 {
		length = DefaultTokenLength
	}

	return &SessionService{
		password: cfg.AdminPassword,
		tokenLen: length,
		tokens:   make(map[string]struct{}),
	}, nil
}

// Login checks the password against the configured credential and, on match,
// mints and registers a fresh opaque token. The comparison is constant-time.
func (s *SessionService) Login(password string) (string, error) {
	if subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) != 1 {
		return "", ErrInvalidCredentials
	}

	token, err := crypto.GenerateToken(s.tokenLen)
	if err != nil {
		return "", fmt.Errorf("session: generate token: %w", err)
	}

	s.mu.Lock()
	s.tokens[token] = struct{}{}
	s.mu.Unlock()

	metrics.ActiveSessions.Inc()
	return token, nil
}

// Validate reports whether the token is currently registered.
func (s *SessionService) Validate(token string) bool {
	if token == "" {
		return false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.tokens[token]
	return ok
}

// Logout unregisters the token. Revoking an unknown token is a no-op.
func (s *SessionService) Logout(token string) {
	s.mu.Lock()
	_, existed := s.tokens[token]
	delete(s.tokens, token)
	s.mu.Unlock()

	if existed {
		metrics.ActiveSessions.Dec()
	}
}
