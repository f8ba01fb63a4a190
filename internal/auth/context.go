package auth

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// Keys under which the auth middleware stores the resolved principal.
const (
	CtxUserID    = "user_id"
	CtxUserEmail = "user_email"
	CtxToken     = "auth_token"
)

// UserID returns the authenticated user's id from the Gin context, or ""
// when the request carries no resolved principal.
func UserID(c *gin.Context) string {
	return strings.TrimSpace(c.GetString(CtxUserID))
}

// UserEmail returns the authenticated user's email, if any.
func UserEmail(c *gin.Context) string {
	return strings.TrimSpace(c.GetString(CtxUserEmail))
}

// Token returns the raw bearer token the middleware accepted.
func Token(c *gin.Context) string {
	return c.GetString(CtxToken)
}
