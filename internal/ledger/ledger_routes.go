package ledger

import (
	"github.com/gin-gonic/gin"

	"github.com/OutLand606/FinancePro-sub001/internal/middleware"
	"github.com/OutLand606/FinancePro-sub001/internal/rbac"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	accounts := r.Group("/cash-accounts")
	accounts.Use(middleware.AuthMiddleware())
	{
		accounts.GET("", middleware.RBACAuthorize(rbacService, "cash_accounts", "read"), handler.GetAllAccounts)
		accounts.GET("/:id", middleware.RBACAuthorize(rbacService, "cash_accounts", "read"), handler.GetAccountByID)
		accounts.POST("", middleware.RBACAuthorize(rbacService, "cash_accounts", "write"), handler.CreateAccount)
	}
}
