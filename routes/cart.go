package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/arslan020/techxchange/config"
	cartControllers "github.com/arslan020/techxchange/controllers/cart"
	"github.com/arslan020/techxchange/middleware"
)

func SetupCartRoutes(api *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	cart := api.Group("/cart")
	cart.Use(middleware.ValidateToken(cfg.JWTSecret))
	{
		cart.GET("", cartControllers.GetCartHandler(db))
		cart.POST("/add", cartControllers.AddItemHandler(db))
		cart.PATCH("/item", cartControllers.UpdateItemHandler(db))
		cart.DELETE("/item/:productId", cartControllers.RemoveItemHandler(db))
		cart.DELETE("/clear", cartControllers.ClearCartHandler(db))
	}
}
