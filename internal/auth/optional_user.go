package auth

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// DemoUser owns every workspace when auth is off and no header is sent.
const DemoUser = "demo-user"

// OptionalUser sets a firebase uid in context without enforcing auth.
// - If X-User-Id is missing, it falls back to "demo-user".
// - Use this ONLY for development/testing.
func OptionalUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := strings.TrimSpace(c.GetHeader("X-User-Id"))
		if uid == "" {
			uid = DemoUser
		}
		c.Set(CtxFirebaseUID, uid)
		c.Next()
	}
}
