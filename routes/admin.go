package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/arslan020/techxchange/config"
	adminControllers "github.com/arslan020/techxchange/controllers/admin"
	productControllers "github.com/arslan020/techxchange/controllers/product"
	"github.com/arslan020/techxchange/middleware"
	"github.com/arslan020/techxchange/models"
)

func SetupAdminRoutes(api *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	admin := api.Group("/admin")
	admin.Use(middleware.ValidateToken(cfg.JWTSecret), middleware.RequireRole(models.RoleAdmin))
	{
		admin.GET("/stats", adminControllers.GetStats(db))
		admin.GET("/export/products", productControllers.ExportProductsToExcel(db))
	}
}
