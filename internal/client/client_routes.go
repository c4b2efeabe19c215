package client

import (
	"github.com/DeboraBSilva/Punchclock/internal/middleware"
	"github.com/DeboraBSilva/Punchclock/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	h *Handler,
	rbacService rbac.Service,
) {
	clients := r.Group("/clients")

	clients.Use(middleware.AuthMiddleware())

	{
		clients.GET("", middleware.RBACAuthorize(rbacService, "client", "read"), h.GetAll)
		clients.POST("", middleware.RBACAuthorize(rbacService, "client", "create"), h.Create)
		clients.GET("/:id", middleware.RBACAuthorize(rbacService, "client", "read"), h.GetById)
		clients.PUT("/:id", middleware.RBACAuthorize(rbacService, "client", "update"), h.Update)
		clients.DELETE("/:id", middleware.RBACAuthorize(rbacService, "client", "delete"), h.Delete)
	}
}
