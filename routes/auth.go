package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/arslan020/techxchange/config"
	authControllers "github.com/arslan020/techxchange/controllers/auth"
	"github.com/arslan020/techxchange/middleware"
)

func SetupAuthRoutes(api *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	auth := api.Group("/auth")
	{
		auth.POST("/register", authControllers.Register(db, cfg))
		auth.POST("/login", authControllers.Login(db, cfg))
		auth.GET("/me", middleware.ValidateToken(cfg.JWTSecret), authControllers.Me(db))
	}
}
