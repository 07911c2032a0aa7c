package logging

import "context"

type contextKey string

const (
	userKey      contextKey = "user"
	operationKey contextKey = "operation"
)

// WithUser adds the acting user's email to the context.
func WithUser(ctx context.Context, user string) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// WithOperation adds an operation name (e.g. "product.save") to the context.
func WithOperation(ctx context.Context, op string) context.Context {
	return context.WithValue(ctx, operationKey, op)
}

// GetUser retrieves the user from the context.
// Returns empty string if not present.
func GetUser(ctx context.Context) string {
	if v, ok := ctx.Value(userKey).(string); ok {
		return v
	}
	return ""
}

// GetOperation retrieves the operation name from the context.
// Returns empty string if not present.
func GetOperation(ctx context.Context) string {
	if v, ok := ctx.Value(operationKey).(string); ok {
		return v
	}
	return ""
}
