package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	RequestIDKey    = "request_id"
	RequestIDHeader = "X-Request-ID"
)

// RequestID injects a request identifier into the context and the
// X-Request-ID response header.
//
// A well-formed UUID sent by the client in X-Request-ID is reused so a caller
// can correlate its own logs; anything else is replaced by a fresh UUID v4.
//
// Usage:
//
//	router := gin.New()
//	router.Use(middleware.RequestID())
//
//	rid := c.GetString(middleware.RequestIDKey)
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}

		c.Set(RequestIDKey, id)
		c.Writer.Header().Set(RequestIDHeader, id)

		c.Next()
	}
}
