package project

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
	projects := r.Group("/projects")

	projects.Use(middleware.AuthMiddleware())

	{
		projects.GET("", middleware.RBACAuthorize(rbacService, "project", "read"), h.GetAll)
		projects.POST("", middleware.RBACAuthorize(rbacService, "project", "create"), h.Create)
		projects.GET("/:id", middleware.RBACAuthorize(rbacService, "project", "read"), h.GetById)
		projects.PUT("/:id", middleware.RBACAuthorize(rbacService, "project", "update"), h.Update)
		projects.DELETE("/:id", middleware.RBACAuthorize(rbacService, "project", "delete"), h.Delete)
	}
}
