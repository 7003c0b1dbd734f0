package services

import "context"

type contextKey string

const (
	sessionIDKey contextKey = "session_id"
	turnKey      contextKey = "turn"
)

// WithSessionID annotates context with the chat session identifier.
func WithSessionID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, sessionIDKey, id)
}

// SessionIDFromContext extracts the chat session identifier if present.
func SessionIDFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(sessionIDKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// WithTurn annotates context with the one-based turn number.
func WithTurn(ctx context.Context, turn int) context.Context {
	if turn <= 0 {
		return ctx
	}
	return context.WithValue(ctx, turnKey, turn)
}

// TurnFromContext returns the turn number if present.
func TurnFromContext(ctx context.Context) (int, bool) {
	if v, ok := ctx.Value(turnKey).(int); ok && v > 0 {
		return v, true
	}
	return 0, false
}
