package contribution

import (
	"github.com/DeboraBSilva/Punchclock/internal/middleware"
	"github.com/DeboraBSilva/Punchclock/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	h *Handler,
	rbacService rbac.Service,
	rdb ...*redis.Client,
) {
	var redisClient *redis.Client
	if len(rdb) > 0 {
		redisClient = rdb[0]
	}

	contributions := r.Group("/contributions")
	contributions.Use(middleware.AuthMiddleware())
	{
		contributions.GET("", middleware.RBACAuthorize(rbacService, "contribution", "read"), h.GetAll)
		contributions.GET("/:id", middleware.RBACAuthorize(rbacService, "contribution", "read"), h.GetById)

		if redisClient != nil {
			contributions.POST(
				"",
				middleware.Idempotency(redisClient),
				middleware.RBACAuthorize(rbacService, "contribution", "create"),
				h.Create,
			)
		} else {
			contributions.POST("", middleware.RBACAuthorize(rbacService, "contribution", "create"), h.Create)
		}

		contributions.POST("/:id/approve", middleware.RBACAuthorize(rbacService, "contribution", "approve"), h.Approve)
		contributions.POST("/:id/refuse", middleware.RBACAuthorize(rbacService, "contribution", "approve"), h.Refuse)
		contributions.DELETE("/:id", middleware.RBACAuthorize(rbacService, "contribution", "delete"), h.Delete)
	}
}
