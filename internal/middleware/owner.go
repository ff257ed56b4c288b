package middleware

import (
	"net/http"

	"github.com/samuelassuncao1/fitprogress/internal/fitness/identity"
)

// OwnerHeader carries the owner id of the request.
const OwnerHeader = "X-Fitprogress-Owner"

// ResolveOwner puts the owner id into the request context: the header value
// when present, the configured default otherwise (single user deployment).
// Everything downstream reads the owner from the context, never from
// ambient state.
func ResolveOwner(defaultOwnerID string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ownerID := r.Header.Get(OwnerHeader)
			if ownerID == "" {
				ownerID = defaultOwnerID
			}
			if ownerID == "" {
				http.Error(w, "owner not resolved", http.StatusBadRequest)
				return
			}

			ctx := identity.ToContext(r.Context(), ownerID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
