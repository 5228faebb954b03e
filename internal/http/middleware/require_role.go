package middleware

import (
	"github.com/gin-gonic/gin"
)

// RequireRole returns a checker that halts the request unless the verified
// identity carries the given role. It must run after the auth gate. The
// response is 401, indistinguishable from an authentication failure.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := IdentityFrom(c)
		if !ok || !identity.HasRole(role) {
			unauthorized(c)
			return
		}
		c.Next()
	}
}
