package http

import "github.com/gin-gonic/gin"

// Register attaches project routes to the given router group.
func Register(rg *gin.RouterGroup, svc Service) {
	h := New(svc)

	rg.GET("", h.list)
	rg.POST("", h.create)
	rg.GET("/:id", h.retrieve)
	rg.PUT("/:id", h.put)
	rg.PATCH("/:id", h.patch)
	rg.DELETE("/:id", h.delete)
}
