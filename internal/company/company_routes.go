package company

import (
	"github.com/DeboraBSilva/Punchclock/internal/middleware"
	"github.com/DeboraBSilva/Punchclock/internal/rbac"
	"github.com/DeboraBSilva/Punchclock/internal/tenant"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	company := r.Group("/companies")
	company.Use(middleware.AuthMiddleware())
	{
		company.GET("/me",
			middleware.RateLimitByUser(2, 10),
			handler.GetMe,
		)

		company.PUT("/me",
			middleware.RateLimitByUser(0.1, 1),
			middleware.RBACAuthorize(rbacService, "company", "update"),
			handler.UpdateMe,
		)

		// Cross-tenant administration, super only.
		company.GET("",
			middleware.RateLimitByUser(1, 5),
			middleware.RoleMiddleware(tenant.RoleSuper),
			handler.GetAll,
		)

		company.GET("/:id",
			middleware.RateLimitByUser(1, 5),
			middleware.RoleMiddleware(tenant.RoleSuper),
			handler.GetById,
		)

		company.POST("",
			middleware.RateLimitByUser(0.1, 1),
			middleware.RoleMiddleware(tenant.RoleSuper),
			handler.Create,
		)

		company.PUT("/:id",
			middleware.RateLimitByUser(0.1, 1),
			middleware.RoleMiddleware(tenant.RoleSuper),
			handler.Update,
		)
	}
}
