package attendance

import (
	"github.com/gin-gonic/gin"

	"github.com/OutLand606/FinancePro-sub001/internal/middleware"
	"github.com/OutLand606/FinancePro-sub001/internal/rbac"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	timesheets := r.Group("/timesheets")
	timesheets.Use(middleware.AuthMiddleware())
	{
		timesheets.POST("", middleware.RBACAuthorize(rbacService, "payroll_inputs", "write"), handler.CreateEntry)
		timesheets.POST("/holidays", middleware.RBACAuthorize(rbacService, "payroll_inputs", "write"), handler.CreateHoliday)
	}
}
