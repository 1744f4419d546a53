package requestid

import "context"

type contextKey struct{}

// WithContext returns a copy of ctx carrying the resolved request ID.
func WithContext(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, contextKey{}, requestID)
}

// FromContext returns the request ID stored by the middleware, or "" when the
// context carries none. It is safe to call with a nil context.
func FromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	requestID, ok := ctx.Value(contextKey{}).(string)
	if !ok {
		return ""
	}
	return requestID
}
