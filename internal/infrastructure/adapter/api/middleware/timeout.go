package middleware

import (
	"time"

	coreport "github.com/amirhossein-jamali/expense-tracker/internal/domain/port/core"
	"github.com/gin-gonic/gin"
)

// Timeout bounds the request context, and with it every query the request
// runs. A non-positive timeout leaves the context unbounded.
func Timeout(timeProvider coreport.TimeProvider, timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if timeout <= 0 {
			c.Next()
			return
		}

		ctx, cancel := timeProvider.WithTimeout(c.Request.Context(), coreport.Duration(timeout))
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
