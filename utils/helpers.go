package utils

import (
	"context"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// NewPublicID returns the URL-safe identifier exposed in place of database keys.
func NewPublicID() (string, error) {
	return gonanoid.New()
}

type requestIDKey struct{}

// WithRequestID stores the request id on ctx.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// GetRequestID returns the id set by the request logger, if any.
func GetRequestID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey{}).(string)
	return id, ok && id != ""
}
