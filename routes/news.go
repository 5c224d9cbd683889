package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/arslan020/techxchange/config"
	newsControllers "github.com/arslan020/techxchange/controllers/news"
	"github.com/arslan020/techxchange/logger"
)

func SetupNewsRoutes(api *gin.RouterGroup, rdb *redis.Client, log *logger.Logger, cfg *config.Config) {
	news := api.Group("/news")
	{
		news.GET("", newsControllers.ListNews(rdb, log, cfg.NewsTTL))
		news.GET("/:id", newsControllers.GetNews(rdb, log, cfg.NewsTTL))
	}
}
