package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/arslan020/techxchange/config"
	orderControllers "github.com/arslan020/techxchange/controllers/order"
	"github.com/arslan020/techxchange/middleware"
	"github.com/arslan020/techxchange/models"
)

func SetupOrderRoutes(api *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	authed := middleware.ValidateToken(cfg.JWTSecret)

	orders := api.Group("/orders")
	{
		orders.POST("/checkout", authed, orderControllers.CheckoutHandler(db))
		orders.GET("", authed, orderControllers.ListMyOrdersHandler(db))

		// live feed of confirmed orders for the admin dashboard
		orders.GET("/ws", authed, middleware.RequireRole(models.RoleAdmin), orderControllers.OrderFeedHandler)

		orders.GET("/:id", authed, orderControllers.GetOrderHandler(db))
	}
}
