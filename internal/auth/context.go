package auth

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// Gin context keys set by the auth middlewares. The uid doubles as the owner
// of every stored network and as the key of the user's editing workspace.
const (
	CtxFirebaseUID = "firebase_uid"
	CtxEmail       = "email"
	CtxToken       = "firebase_token"
)

// UserFirebaseUID returns the caller's uid, or "" when neither
// FirebaseAuthMiddleware nor OptionalUser ran.
func UserFirebaseUID(c *gin.Context) string {
	return strings.TrimSpace(c.GetString(CtxFirebaseUID))
}
