package payroll

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"

	"github.com/OutLand606/FinancePro-sub001/internal/middleware"
	"github.com/OutLand606/FinancePro-sub001/internal/rbac"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	rdb ...*redis.Client,
) {
	var redisClient *redis.Client
	if len(rdb) > 0 {
		redisClient = rdb[0]
	}

	// Compute is the expensive call, so it gets a per-actor token bucket on
	// top of the shared auth and RBAC chain.
	computeLimit := middleware.RateLimitByActor(rate.Limit(1), 5)

	runs := r.Group("/payroll-runs")
	runs.Use(middleware.AuthMiddleware())
	{
		runs.GET("/:period", middleware.RBACAuthorize(rbacService, "payroll_run", "read"), handler.GetRun)
		runs.GET("/:period/export", middleware.RBACAuthorize(rbacService, "payroll_run", "read"), handler.Export)
		if redisClient != nil {
			runs.POST(
				"/:period/compute",
				computeLimit,
				middleware.Idempotency(redisClient),
				middleware.RBACAuthorize(rbacService, "payroll_run", "compute"),
				handler.Compute,
			)
		} else {
			runs.POST("/:period/compute", computeLimit, middleware.RBACAuthorize(rbacService, "payroll_run", "compute"), handler.Compute)
		}
		runs.POST("/:period/lock", middleware.RBACAuthorize(rbacService, "payroll_run", "lock"), handler.Lock)
		runs.POST("/:period/unlock", middleware.RBACAuthorize(rbacService, "payroll_run", "unlock"), handler.Unlock)
		runs.POST("/:period/pay", middleware.RBACAuthorize(rbacService, "payroll_run", "pay"), handler.Pay)
	}
}
