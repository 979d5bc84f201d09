package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RequestIdKey = "requestId"

// RequestId tags every request with a UUID, echoed in the response header
// for log correlation.
func RequestId() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(RequestIdKey, id)
		c.Header("X-Request-Id", id)
		c.Next()
	}
}

func GetRequestId(c *gin.Context) string {
	id, _ := c.Get(RequestIdKey)
	if s, ok := id.(string); ok {
		return s
	}
	return ""
}
