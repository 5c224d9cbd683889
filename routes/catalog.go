package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/arslan020/techxchange/config"
	metaControllers "github.com/arslan020/techxchange/controllers/meta"
	productControllers "github.com/arslan020/techxchange/controllers/product"
	reviewControllers "github.com/arslan020/techxchange/controllers/review"
	sellerControllers "github.com/arslan020/techxchange/controllers/seller"
	"github.com/arslan020/techxchange/middleware"
	"github.com/arslan020/techxchange/models"
)

// SetupCatalogRoutes registers products, sellers, their review sub-resources
// and the meta endpoints. Reads are public; writes need a seller or admin
// token, review writes any authenticated user.
func SetupCatalogRoutes(api *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	authed := middleware.ValidateToken(cfg.JWTSecret)
	sellerOrAdmin := middleware.RequireRole(models.RoleSeller, models.RoleAdmin)

	products := api.Group("/products")
	{
		products.GET("", productControllers.ListProducts(db))
		products.GET("/:id", productControllers.GetProductByID(db))
		products.POST("", authed, sellerOrAdmin, productControllers.CreateProduct(db))
		products.PUT("/:id", authed, sellerOrAdmin, productControllers.UpdateProduct(db))
		products.DELETE("/:id", authed, sellerOrAdmin, productControllers.DeleteProduct(db))

		products.GET("/:id/reviews", reviewControllers.ListReviews(db, models.TargetProduct))
		products.POST("/:id/reviews", authed, reviewControllers.CreateReview(db, models.TargetProduct))
		products.PATCH("/:id/reviews/:rid", authed, reviewControllers.UpdateReview(db, models.TargetProduct))
		products.DELETE("/:id/reviews/:rid", authed, reviewControllers.DeleteReview(db, models.TargetProduct))
	}

	sellers := api.Group("/sellers")
	{
		sellers.GET("", sellerControllers.ListSellers(db))
		sellers.GET("/:id", sellerControllers.GetSellerByID(db))
		sellers.POST("", authed, sellerOrAdmin, sellerControllers.CreateSeller(db))
		sellers.PUT("/:id", authed, sellerOrAdmin, sellerControllers.UpdateSeller(db))
		sellers.DELETE("/:id", authed, sellerOrAdmin, sellerControllers.DeleteSeller(db))

		sellers.GET("/:id/reviews", reviewControllers.ListReviews(db, models.TargetSeller))
		sellers.POST("/:id/reviews", authed, reviewControllers.CreateReview(db, models.TargetSeller))
		sellers.PATCH("/:id/reviews/:rid", authed, reviewControllers.UpdateReview(db, models.TargetSeller))
		sellers.DELETE("/:id/reviews/:rid", authed, reviewControllers.DeleteReview(db, models.TargetSeller))
	}

	meta := api.Group("/meta")
	{
		meta.GET("/categories", metaControllers.GetCategories(db))
		meta.GET("/filters", metaControllers.GetFilters(db))
	}
}
