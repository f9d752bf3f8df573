package app

import (
	"database/sql"

	"go-kafe/internal/access"
	"go-kafe/internal/adminuser"
	"go-kafe/internal/auth"
	"go-kafe/internal/auth/token"
	"go-kafe/internal/bootstrap"
	"go-kafe/internal/diagnostics"
	"go-kafe/internal/live"
	"go-kafe/internal/menu"
	"go-kafe/internal/messaging/kafka"
	"go-kafe/internal/middleware"
	"go-kafe/internal/order"
	"go-kafe/internal/rbac"
	"go-kafe/internal/rbac/infra"
	"go-kafe/internal/report"
	"go-kafe/internal/shared/counter"
	"go-kafe/internal/superadmin"
	"go-kafe/internal/table"
	"go-kafe/internal/tenant"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	cfg Config,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) (*live.Hub, error) {
	logger := zap.L()
	audit := bootstrap.NewStdoutAuditLogger(logger)
	emitter := diagnostics.NewEmitter(logger)

	// --- Repositories ---
	authRepo := auth.NewRepository(gormDB)
	tenantRepo := tenant.NewRepository(gormDB)
	adminUserRepo := adminuser.NewRepository(gormDB)
	superAdminRepo := superadmin.NewRepository(gormDB)
	menuRepo := menu.NewRepository(gormDB)
	tableRepo := table.NewRepository(gormDB)
	orderRepo := order.NewRepository(gormDB)
	reportRepo := report.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return nil, err
	}
	policy, err := rbac.DefaultPolicy()
	if err != nil {
		return nil, err
	}
	rbacService, err := rbac.NewService(enforcer, policy, logger)
	if err != nil {
		return nil, err
	}

	// --- Live updates ---
	hub := live.NewHub(logger)
	publisher := live.NewRedisPublisher(rdb)

	// --- Services ---
	authService := auth.NewService(authRepo, token.Config{Secret: cfg.JWTSecret}, logger)
	tenantService := tenant.NewService(db, tenantRepo, audit, logger)
	adminUserService := adminuser.NewService(adminUserRepo, authService, tenantService, audit, logger)
	superAdminService := superadmin.NewService(superAdminRepo, emitter, audit, logger)
	menuService := menu.NewService(menuRepo, publisher, logger)
	tableService := table.NewService(tableRepo, publisher, cfg.PublicOrigin, logger)
	orderService := order.NewService(db, orderRepo, counterRepo, outboxRepo, publisher, logger)
	reportService := report.NewService(reportRepo, cfg.Location, logger)

	gate := access.NewGate(adminUserService, tenantService, superAdminService, emitter, logger)

	// --- Guards ---
	requestLog := middleware.ContextLogger(logger)
	guards := middleware.Guards{
		Authenticated: []gin.HandlerFunc{middleware.AuthMiddleware(cfg.JWTSecret), requestLog},
		Public:        []gin.HandlerFunc{middleware.OptionalAuth(cfg.JWTSecret), requestLog},

		SuperAdmin:   access.SuperAdminGate(gate),
		TenantAdmin:  access.TenantAdminGate(gate),
		PublicTenant: tenant.PublicTenantMiddleware(tenantService),
		Idempotency:  middleware.Idempotency(rdb, false),
		Authorize: func(resource, action string) gin.HandlerFunc {
			return middleware.RBACAuthorize(rbacService, emitter, resource, action)
		},

		CheckoutLimit: middleware.RateLimitByIP(0.5, 5),
	}

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, logger)
	tenantHandler := tenant.NewHandler(tenantService, logger)
	adminUserHandler := adminuser.NewHandler(adminUserService, rdb, logger)
	superAdminHandler := superadmin.NewHandler(superAdminService, logger)
	menuHandler := menu.NewHandler(menuService, tableService, logger)
	tableHandler := table.NewHandler(tableService, logger)
	orderHandler := order.NewHandler(orderService, rdb, logger)
	reportHandler := report.NewHandler(reportService, logger)
	liveHandler := live.NewHandler(hub, orderService, logger)

	// --- Routes Registration ---
	router.Use(middleware.RequestID())
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler, guards)
		superadmin.RegisterRoutes(api, superAdminHandler, guards)
		tenant.RegisterRoutes(api, tenantHandler, guards)
		adminuser.RegisterRoutes(api, adminUserHandler, guards)
		menu.RegisterRoutes(api, menuHandler, guards)
		table.RegisterRoutes(api, tableHandler, guards)
		order.RegisterRoutes(api, orderHandler, guards)
		report.RegisterRoutes(api, reportHandler, guards)
		live.RegisterRoutes(api, liveHandler, guards)
	}

	return hub, nil
}
