package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/yigit/salesweb/internal/pkg/logger"
)

// Header names used for request correlation
const (
	HeaderRequestID   = "X-Request-ID"
	HeaderTraceParent = "traceparent"
)

// Context keys
const (
	RequestIDKey = "requestId"
	LoggerKey    = "logger"
)

// maxRequestIDLength bounds client supplied ids before they reach logs
const maxRequestIDLength = 128

// RequestID assigns every request a correlation id: the incoming
// X-Request-ID header, else the trace id of a W3C traceparent header, else a
// fresh UUID. The id is echoed back in the response and a request-scoped
// logger carrying it is stored in the context.
func RequestID(base zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := requestIDFromHeaders(c)

		c.Set(RequestIDKey, id)
		c.Set(LoggerKey, logger.WithRequestID(base, id))
		c.Header(HeaderRequestID, id)

		c.Next()
	}
}

func requestIDFromHeaders(c *gin.Context) string {
	if id := strings.TrimSpace(c.GetHeader(HeaderRequestID)); id != "" && len(id) <= maxRequestIDLength {
		return id
	}
	if id := traceIDFromTraceParent(c.GetHeader(HeaderTraceParent)); id != "" {
		return id
	}
	return uuid.NewString()
}

// traceIDFromTraceParent extracts the trace id from a
// "version-traceid-parentid-flags" header, empty when malformed
func traceIDFromTraceParent(header string) string {
	parts := strings.Split(strings.TrimSpace(header), "-")
	if len(parts) < 4 || len(parts[1]) != 32 {
		return ""
	}

	traceID := strings.ToLower(parts[1])
	if strings.Trim(traceID, "0") == "" {
		return ""
	}
	for _, r := range traceID {
		if !strings.ContainsRune("0123456789abcdef", r) {
			return ""
		}
	}
	return traceID
}

// GetRequestID returns the correlation id of the request, generating one
// when the RequestID middleware did not run
func GetRequestID(c *gin.Context) string {
	if id := c.GetString(RequestIDKey); id != "" {
		return id
	}

	id := requestIDFromHeaders(c)
	c.Set(RequestIDKey, id)
	return id
}

// GetLogger returns the request-scoped logger, or the global logger
func GetLogger(c *gin.Context) zerolog.Logger {
	if value, exists := c.Get(LoggerKey); exists {
		if lgr, ok := value.(zerolog.Logger); ok {
			return lgr
		}
	}
	return logger.Get()
}
