// Package identity carries the active owner through the request context.
// All persistence operations are scoped to an owner id; it is resolved once
// per request and passed explicitly, never read from ambient globals.
package identity

import "context"

type ctxKey struct{}

func ToContext(ctx context.Context, ownerID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, ownerID)
}

func FromContext(ctx context.Context) (string, bool) {
	ownerID, ok := ctx.Value(ctxKey{}).(string)
	if !ok || ownerID == "" {
		return "", false
	}
	return ownerID, true
}
