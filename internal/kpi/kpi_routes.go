package kpi

import (
	"github.com/gin-gonic/gin"

	"github.com/OutLand606/FinancePro-sub001/internal/middleware"
	"github.com/OutLand606/FinancePro-sub001/internal/rbac"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	kpi := r.Group("/kpi")
	kpi.Use(middleware.AuthMiddleware())
	{
		kpi.PUT("/commissions", middleware.RBACAuthorize(rbacService, "payroll_inputs", "write"), handler.UpsertCommission)
		kpi.POST("/adjustments", middleware.RBACAuthorize(rbacService, "payroll_inputs", "write"), handler.CreateAdjustment)
	}
}
