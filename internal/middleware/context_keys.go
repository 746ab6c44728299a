package middleware

import "github.com/gin-gonic/gin"

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-ID"

// requestIDKey is the key used to store the request id in the Gin context.
const requestIDKey = contextKey("requestID")

// GetRequestIDFromContext retrieves the request id from the Gin context.
// It returns the id and a boolean indicating if it was found.
func GetRequestIDFromContext(c *gin.Context) (string, bool) {
	val, exists := c.Get(string(requestIDKey))
	if !exists {
		if v, ok := c.Request.Context().Value(requestIDKey).(string); ok {
			return v, true
		}
		return "", false
	}

	requestID, ok := val.(string)
	return requestID, ok
}
