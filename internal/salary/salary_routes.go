package salary

import (
	"github.com/gin-gonic/gin"

	"github.com/OutLand606/FinancePro-sub001/internal/middleware"
	"github.com/OutLand606/FinancePro-sub001/internal/rbac"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	components := r.Group("/salary-components")
	components.Use(middleware.AuthMiddleware())
	{
		components.GET("", middleware.RBACAuthorize(rbacService, "salary_catalog", "read"), handler.GetAllComponents)
		components.POST("", middleware.RBACAuthorize(rbacService, "salary_catalog", "write"), handler.CreateComponent)
		components.PUT("/:id", middleware.RBACAuthorize(rbacService, "salary_catalog", "write"), handler.UpdateComponent)
		components.DELETE("/:id", middleware.RBACAuthorize(rbacService, "salary_catalog", "write"), handler.DeleteComponent)
	}

	templates := r.Group("/salary-templates")
	templates.Use(middleware.AuthMiddleware())
	{
		templates.GET("", middleware.RBACAuthorize(rbacService, "salary_catalog", "read"), handler.GetAllTemplates)
		templates.GET("/:id", middleware.RBACAuthorize(rbacService, "salary_catalog", "read"), handler.GetTemplateByID)
		templates.POST("", middleware.RBACAuthorize(rbacService, "salary_catalog", "write"), handler.CreateTemplate)
		templates.DELETE("/:id", middleware.RBACAuthorize(rbacService, "salary_catalog", "write"), handler.DeleteTemplate)
	}
}
