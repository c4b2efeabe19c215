package punch

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

	punches := r.Group("/punches")
	punches.Use(middleware.AuthMiddleware())
	{
		punches.GET("", middleware.RBACAuthorize(rbacService, "punch", "read"), h.GetAll)
		punches.GET("/:id", middleware.RBACAuthorize(rbacService, "punch", "read"), h.GetById)

		if redisClient != nil {
			punches.POST(
				"",
				middleware.Idempotency(redisClient),
				middleware.RBACAuthorize(rbacService, "punch", "create"),
				h.Create,
			)
		} else {
			punches.POST("", middleware.RBACAuthorize(rbacService, "punch", "create"), h.Create)
		}

		punches.PATCH("/:id", middleware.RBACAuthorize(rbacService, "punch", "update"), h.Update)
		punches.DELETE("/:id", middleware.RBACAuthorize(rbacService, "punch", "delete"), h.Delete)
	}
}
