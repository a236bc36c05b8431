package contextutil

import "context"

// contextKey is a private type so our keys cannot collide with other packages.
type contextKey string

const requestIDKey contextKey = "request_id"

// WithRequestID injects the request ID into the context.
func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, requestIDKey, rid)
}

// GetRequestID pulls the request ID out of the context, empty if absent.
func GetRequestID(ctx context.Context) string {
	if rid, ok := ctx.Value(requestIDKey).(string); ok {
		return rid
	}
	return ""
}
