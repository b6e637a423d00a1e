package httpx

import "context"

type ctxKey int

const (
	// CtxKeyUserID holds the authenticated user's ID as a string.
	CtxKeyUserID ctxKey = iota
)

// UserID returns the authenticated user ID from the context, if present.
func UserID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(CtxKeyUserID).(string)
	return id, ok && id != ""
}

// WithUserID returns a context carrying the authenticated user ID.
func WithUserID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, CtxKeyUserID, id)
}
