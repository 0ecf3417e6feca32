package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/recipebox/backend/internal/api"
	"github.com/recipebox/backend/internal/middleware"
	"github.com/recipebox/backend/internal/service"
)

// Options carries the optional infrastructure the router can run without.
type Options struct {
	// Redis enables per-user rate limiting on recipe creation and image
	// upload when set.
	Redis *redis.Client
	// Storage enables the image upload endpoint when set.
	Storage service.ObjectUploader
	// AllowedOrigins configures CORS.
	AllowedOrigins []string
}

// Setup builds the full application router.
func Setup(db *gorm.DB, jwtSecret string, opts Options) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(opts.AllowedOrigins))

	authService := service.NewAuthService(db, jwtSecret)
	recipeService := service.NewRecipeService(db)
	tagService := service.NewTagService(db)
	ingredientService := service.NewIngredientService(db)

	var imageService *service.ImageService
	if opts.Storage != nil {
		imageService = service.NewImageService(opts.Storage)
	}

	var createLimiter, uploadLimiter *middleware.RateLimiter
	if opts.Redis != nil {
		createLimiter = middleware.NewRecipeCreationRateLimiter(opts.Redis)
		uploadLimiter = middleware.NewImageUploadRateLimiter(opts.Redis)
	}

	authHandler := api.NewAuthHandler(authService)
	userHandler := api.NewUserHandler(authService)
	recipeHandler := api.NewRecipeHandler(recipeService, imageService, createLimiter, uploadLimiter)
	tagHandler := api.NewTagHandler(tagService)
	ingredientHandler := api.NewIngredientHandler(ingredientService)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	authHandler.RegisterRoutes(v1)

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authService))
	{
		userHandler.RegisterRoutes(protected)
		recipeHandler.RegisterRoutes(protected)
		tagHandler.RegisterRoutes(protected)
		ingredientHandler.RegisterRoutes(protected)
	}

	return router
}
