package app

import (
	"database/sql"
	"path/filepath"

	"github.com/DeboraBSilva/Punchclock/internal/auth"
	"github.com/DeboraBSilva/Punchclock/internal/client"
	"github.com/DeboraBSilva/Punchclock/internal/company"
	"github.com/DeboraBSilva/Punchclock/internal/contribution"
	"github.com/DeboraBSilva/Punchclock/internal/messaging/kafka"
	"github.com/DeboraBSilva/Punchclock/internal/project"
	"github.com/DeboraBSilva/Punchclock/internal/punch"
	"github.com/DeboraBSilva/Punchclock/internal/rbac"
	"github.com/DeboraBSilva/Punchclock/internal/rbac/infra"
	"github.com/DeboraBSilva/Punchclock/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	rbacRepo := rbac.NewRepository(gormDB)
	authRepo := auth.NewRepository(gormDB)
	userRepo := user.NewRepository(gormDB)
	companyRepo := company.NewRepository(gormDB)
	clientRepo := client.NewRepository(gormDB)
	projectRepo := project.NewRepository(gormDB)
	punchRepo := punch.NewRepository(gormDB)
	contributionRepo := contribution.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer(filepath.Join("internal", "rbac", "infra", "model.conf"))
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbacRepo, enforcer)

	// --- Services ---
	authService := auth.NewService(authRepo, rbacService)
	userService := user.NewService(userRepo)
	companyService := company.NewService(companyRepo)
	clientService := client.NewService(db, clientRepo)
	projectService := project.NewService(db, projectRepo, rdb)
	punchService := punch.NewService(db, punchRepo)
	contributionService := contribution.NewServiceWithOutbox(db, contributionRepo, outboxRepo)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	userHandler := user.NewHandler(userService)
	companyHandler := company.NewHandler(companyService)
	clientHandler := client.NewHandler(clientService)
	projectHandler := project.NewHandler(projectService)
	punchHandler := punch.NewHandler(punchService, rdb)
	contributionHandler := contribution.NewHandler(contributionService, rdb)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		user.RegisterRoutes(api, userHandler, rbacService, zap.L())
		company.RegisterRoutes(api, companyHandler, rbacService)
		client.RegisterRoutes(api, clientHandler, rbacService)
		project.RegisterRoutes(api, projectHandler, rbacService)
		punch.RegisterRoutes(api, punchHandler, rbacService, rdb)
		contribution.RegisterRoutes(api, contributionHandler, rbacService, rdb)
	}

	return nil
}
