package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GinRequireAuth adapts the net/http AuthMiddleware to Gin. Credential
// decisions stay in RequireAuth; this only bridges the two handler models.
func GinRequireAuth(auth *AuthMiddleware) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Bridge handler to allow net/http middleware execution
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c.Request = r
			c.Next()
		})

		handler := auth.RequireAuth(next)
		handler.ServeHTTP(c.Writer, c.Request)

		// If the middleware already wrote a response, stop the Gin chain
		if c.Writer.Written() {
			c.Abort()
			return
		}
	}
}
