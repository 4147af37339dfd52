package middleware

import (
	"context"
	"net/http"

	"github.com/stridewear/stride/internal/clientstate"
	"github.com/stridewear/stride/internal/domain"
)

const (
	// ClientStateContextKey is the context key for the request's cookie-backed KV
	ClientStateContextKey contextKey = "client_state"

	// SessionContextKey is the context key for the resolved session
	SessionContextKey contextKey = "session"
)

// SessionReader resolves the persisted session from client state.
type SessionReader interface {
	Current(kv clientstate.KV) domain.Session
}

// WithClientState creates middleware that attaches a cookie-backed KV and
// the resolved session to the request context. Every route goes through
// this; handlers reach both via GetKV and GetSession.
func WithClientState(sessions SessionReader, secureCookies bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			jar := clientstate.NewCookieJar(w, r, secureCookies)
			sess := sessions.Current(jar)

			ctx := context.WithValue(r.Context(), ClientStateContextKey, jar)
			ctx = context.WithValue(ctx, SessionContextKey, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetKV retrieves the request's client-state KV from the context.
// Returns nil outside the WithClientState chain.
func GetKV(ctx context.Context) clientstate.KV {
	if kv, ok := ctx.Value(ClientStateContextKey).(clientstate.KV); ok {
		return kv
	}
	return nil
}

// GetSession retrieves the resolved session from the context. Returns the
// zero (logged-out) session outside the WithClientState chain.
func GetSession(ctx context.Context) domain.Session {
	if sess, ok := ctx.Value(SessionContextKey).(domain.Session); ok {
		return sess
	}
	return domain.Session{}
}

// RequireAdmin gates the admin console. Navigations from anyone who is not
// an authenticated admin redirect to the login page; non-GET requests get an
// error response instead, since redirecting a form post hides the failure.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := GetSession(r.Context())
		if sess.IsAdmin() {
			next.ServeHTTP(w, r)
			return
		}

		if r.Method == http.MethodGet || r.Method == http.MethodHead {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		if !sess.LoggedIn() {
			respondWithError(w, r, domain.Unauthorized("middleware.require_admin", "Authentication required"))
			return
		}
		respondWithError(w, r, &domain.Error{
			Code:    domain.EFORBIDDEN,
			Op:      "middleware.require_admin",
			Message: "You don't have permission to access this resource",
		})
	})
}
