package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
)

// Timeout bounds the request context. Store and upstream calls made with
// ctx.Request.Context() give up once it expires.
func Timeout(d time.Duration) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if d <= 0 {
			ctx.Next()
			return
		}

		c, cancel := context.WithTimeout(ctx.Request.Context(), d)
		defer cancel()

		ctx.Request = ctx.Request.WithContext(c)
		ctx.Next()
	}
}
