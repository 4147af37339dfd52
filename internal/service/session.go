package service

import (
	"context"
	"log/slog"

	"github.com/stridewear/stride/internal/clientstate"
	"github.com/stridewear/stride/internal/domain"
)

// AuthAPI is the slice of the catalog client the session gate needs.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*domain.Session, error)
}

// SessionGate owns the session lifecycle: reading the persisted credential,
// establishing it on login, and destroying it on logout.
type SessionGate struct {
	auth   AuthAPI
	logger *slog.Logger
}

// NewSessionGate creates a session gate.
func NewSessionGate(auth AuthAPI, logger *slog.Logger) *SessionGate {
	return &SessionGate{auth: auth, logger: logger}
}

// Current reads the persisted session. A role without a token reads as
// logged out; the stale role value is ignored rather than cleaned up, since
// the next login overwrites it anyway.
func (g *SessionGate) Current(kv clientstate.KV) domain.Session {
	token, ok := kv.Get(clientstate.KeyToken)
	if !ok || token == "" {
		return domain.Session{}
	}
	role, _ := kv.Get(clientstate.KeyRole)
	return domain.Session{Token: token, Role: role}
}

// Login exchanges credentials for a session and persists both the token and
// the role verbatim. Failed logins leave any existing session untouched.
func (g *SessionGate) Login(ctx context.Context, kv clientstate.KV, email, password string) (*domain.Session, error) {
	sess, err := g.auth.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	kv.Set(clientstate.KeyToken, sess.Token)
	kv.Set(clientstate.KeyRole, sess.Role)
	g.logger.Info("login succeeded", "role", sess.Role)
	return sess, nil
}

// Logout removes the persisted credential. It always succeeds, logged in or
// not, and never touches the cart.
func (g *SessionGate) Logout(kv clientstate.KV) {
	kv.Delete(clientstate.KeyToken)
	kv.Delete(clientstate.KeyRole)
}
