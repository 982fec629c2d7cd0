package routes

import (
	"github.com/chloeyeo/wswg-backend/configs"
	"github.com/chloeyeo/wswg-backend/controllers"
	"github.com/chloeyeo/wswg-backend/repository"
	"github.com/chloeyeo/wswg-backend/services"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	db := configs.DB()

	restaurantRepo := repository.NewRestaurantRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Controllers
	restCtrl := controllers.NewRestaurantController(services.NewRestaurantService(restaurantRepo))
	reviewCtrl := controllers.NewReviewController(services.NewReviewService(reviewRepo, userRepo, restaurantRepo), cfg.UploadDir)

	// Restaurants
	rest := r.Group("/restaurant")
	{
		rest.GET("/", restCtrl.Nearest) // ?latitude=&longitude=
		rest.POST("/location", restCtrl.Location)
		rest.GET("/:cateId", restCtrl.Search)
		rest.GET("/:cateId/:id", restCtrl.Detail)
		rest.POST("/:cateId/:id/view", restCtrl.View)
	}

	// Reviews
	review := r.Group("/review")
	{
		review.POST("/", reviewCtrl.Create)
		review.POST("/image", reviewCtrl.UploadImage)
		review.GET("/:id", reviewCtrl.List) // :id = restaurant id
		review.GET("/:id/view", reviewCtrl.Detail)
		review.DELETE("/:id", reviewCtrl.Delete)
	}
}
