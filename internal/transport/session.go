package transport

import (
	"context"
	"net/http"
)

type sessionKey struct{}

// defaultSession is used when a client sends no session header. Headerless
// clients share one table-state bucket, matching a single local browser.
const defaultSession = "local"

// SessionID returns the client session ID from context.
func SessionID(ctx context.Context) string {
	if id, ok := ctx.Value(sessionKey{}).(string); ok && id != "" {
		return id
	}
	return defaultSession
}

// SessionMiddleware extracts Grid-Session-Id and stores it in context.
func SessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := r.Header.Get("Grid-Session-Id")
		if sessionID != "" {
			ctx := context.WithValue(r.Context(), sessionKey{}, sessionID)
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}
		next.ServeHTTP(w, r)
	})
}
