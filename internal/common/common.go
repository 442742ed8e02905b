package common

import (
	"context"

	"github.com/gin-gonic/gin"
)

const (
	// Context keys
	ContextRequestIDKey = "requestID" // Key to store the request id in context
	HeaderRequestID     = "X-Request-ID"
)

type requestIDKey struct{}

// GetRequestIDFromContext retrieves the request id set by the request-id middleware.
func GetRequestIDFromContext(c *gin.Context) string {
	v, exists := c.Get(ContextRequestIDKey)
	if !exists {
		return ""
	}
	id, _ := v.(string)
	return id
}

// WithRequestID attaches a request id to ctx so that loggers below the HTTP layer can see it.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
