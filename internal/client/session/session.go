// Package session holds the single authenticated session of the operator client.
package session

import (
	"context"
	"errors"
	"regexp"
	"sync"

	"go.uber.org/zap"
)

// DefaultLoginError is reported when a failed login carries no server message.
const DefaultLoginError = "Error de login"

// ErrNonNumericIdentifier rejects a login before any network call.
var ErrNonNumericIdentifier = errors.New("La identificación debe contener solo números.")

var identifierPattern = regexp.MustCompile(`^\d+$`)

// An Authenticator exchanges credentials for a bearer token.
type Authenticator interface {
	Login(ctx context.Context, username, password string) (string, error)
}

// ServerError is implemented by errors that carry the backend's error message.
type ServerError interface {
	error
	ServerMessage() string
}

// LoginResult is the outcome of Manager.Login.
type LoginResult struct {
	OK    bool
	Error string
}

// A Manager owns the token and the identity decoded from it.
// It is safe for concurrent use.
type Manager struct {
	store TokenStore
	log   *zap.Logger

	mu       sync.RWMutex
	auth     Authenticator
	token    string
	identity *Identity
	ready    bool
}

// NewManager creates a Manager persisting its token in store.
func NewManager(store TokenStore, log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{store: store, log: log}
}

// SetAuthenticator sets the backend used by Login.
func (m *Manager) SetAuthenticator(auth Authenticator) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.auth = auth
}

// Initialize restores a persisted token. It never fails: a store error means
// no session, a payload that cannot be decoded yields an anonymous identity.
func (m *Manager) Initialize(ctx context.Context) {
	token, err := m.store.Load()
	if err != nil {
		m.log.Warn("could not read persisted token", zap.Error(err))
		token = ""
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.token = token
	m.identity = nil
	if token != "" {
		id, err := decodeIdentity(token)
		if err != nil {
			m.log.Debug("persisted token payload could not be decoded", zap.Error(err))
			id = &Identity{}
		}
		m.identity = id
	}
	m.ready = true
}

// Login validates the identifier, authenticates and activates the returned token.
// On failure the prior session is left untouched.
func (m *Manager) Login(ctx context.Context, username, password string) LoginResult {
	if !identifierPattern.MatchString(username) {
		return LoginResult{Error: ErrNonNumericIdentifier.Error()}
	}

	m.mu.RLock()
	auth := m.auth
	m.mu.RUnlock()
	if auth == nil {
		return LoginResult{Error: DefaultLoginError}
	}

	token, err := auth.Login(Anonymous(ctx), username, password)
	if err != nil {
		m.log.Debug("login failed", zap.Error(err))
		return LoginResult{Error: loginMessage(err)}
	}
	if token == "" {
		return LoginResult{Error: DefaultLoginError}
	}

	if err := m.store.Save(token); err != nil {
		m.log.Warn("could not persist token", zap.Error(err))
	}

	id, err := decodeIdentity(token)
	if err != nil {
		m.log.Debug("token payload could not be decoded", zap.Error(err))
		name := username
		id = &Identity{DisplayName: &name}
	}

	m.mu.Lock()
	m.token = token
	m.identity = id
	m.ready = true
	m.mu.Unlock()

	return LoginResult{OK: true}
}

func loginMessage(err error) string {
	var se ServerError
	if errors.As(err, &se) && se.ServerMessage() != "" {
		return se.ServerMessage()
	}
	return DefaultLoginError
}

// Logout clears the persisted and in-memory session. It is idempotent.
func (m *Manager) Logout() {
	if err := m.store.Clear(); err != nil {
		m.log.Warn("could not clear persisted token", zap.Error(err))
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	m.identity = nil
}

// Teardown drops the in-memory session and marks the manager not ready.
// The persisted token is kept.
func (m *Manager) Teardown() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	m.identity = nil
	m.ready = false
}

// Token returns the active token, or "".
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token
}

// Identity returns a copy of the current identity, or nil without a session.
func (m *Manager) Identity() *Identity {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.identity.clone()
}

// Ready reports whether Initialize or Login has run since the last Teardown.
func (m *Manager) Ready() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.ready
}

// Authenticated reports whether a token is active.
func (m *Manager) Authenticated() bool {
	return m.Token() != ""
}
