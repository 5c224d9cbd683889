package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/arslan020/techxchange/config"
	"github.com/arslan020/techxchange/logger"
)

// SetupRoutes is the single entry point that wires up every route group
// under /api.
func SetupRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, log *logger.Logger, cfg *config.Config) {
	api := r.Group("/api")

	SetupAuthRoutes(api, db, cfg)
	SetupCatalogRoutes(api, db, cfg)
	SetupCartRoutes(api, db, cfg)
	SetupOrderRoutes(api, db, cfg)
	SetupNewsRoutes(api, rdb, log, cfg)
	SetupAdminRoutes(api, db, cfg)
}
