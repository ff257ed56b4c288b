package middleware

import (
	"io"
	"net/http"
)

// DrainAndCloseRequest drains and closes the request body once the handler
// is done with it, whether it read the body or bailed out early, keeping
// the underlying connection reusable.
func DrainAndCloseRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r)
			if r.Body != nil {
				_, _ = io.Copy(io.Discard, r.Body)
				_ = r.Body.Close()
			}
		})
	}
}
