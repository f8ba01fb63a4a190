package http

import "github.com/gin-gonic/gin"

// RegisterPublic attaches the routes that must work without a token.
func (h *Handler) RegisterPublic(rg *gin.RouterGroup) {
	rg.POST("/register", h.Register)
	rg.POST("/token", h.Token)
}

// RegisterProtected attaches the routes that run behind the auth middleware.
func (h *Handler) RegisterProtected(rg *gin.RouterGroup) {
	rg.GET("/me", h.Me)
	rg.POST("/logout", h.Logout)
}
