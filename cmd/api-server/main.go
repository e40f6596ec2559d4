package main

import (
	"fmt"
	"log"
	"net/http"

	"recipehub/database"
	"recipehub/internal/api/handler"
	"recipehub/internal/api/middleware"
	"recipehub/internal/api/repository"
	"recipehub/internal/api/service"
	"recipehub/internal/cache"
	"recipehub/internal/config"
	"recipehub/internal/mlclient"

	"github.com/gin-gonic/gin"
)

func main() {
	// 1️⃣ Load config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	// 2️⃣ Connect to the database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("could not connect to database: %v", err)
	}

	// 3️⃣ Redis cache (view counters + trending snapshot)
	recipeCache, err := cache.NewRecipeCache(cfg.RedisAddr, cfg.RedisPassword, cfg.CacheTTL)
	if err != nil {
		log.Fatalf("could not connect to redis: %v", err)
	}
	defer recipeCache.Close()

	// 4️⃣ ML backend client
	ml := mlclient.NewClient(cfg.MLBackendURL, cfg.MLRequestTimeout)

	// 5️⃣ Repositories
	userRepo := repository.NewUserRepository(db)
	refreshTokenRepo := repository.NewRefreshTokenRepository(db)
	recipeRepo := repository.NewRecipeRepository(db)
	ingredientRepo := repository.NewIngredientRepository(db)
	interactionRepo := repository.NewInteractionRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	followRepo := repository.NewFollowRepository(db)
	trendingRepo := repository.NewTrendingRepository(db)
	mealPlanRepo := repository.NewMealPlanRepository(db)
	shoppingListRepo := repository.NewShoppingListRepository(db)
	foodImageRepo := repository.NewFoodImageRepository(db)

	// 6️⃣ Services
	authService := service.NewAuthService(userRepo, refreshTokenRepo, cfg)
	userService := service.NewUserService(userRepo)
	recipeService := service.NewRecipeService(recipeRepo, recipeCache, ml)
	ingredientService := service.NewIngredientService(ingredientRepo, recipeRepo)
	interactionService := service.NewInteractionService(interactionRepo, recipeRepo)
	reviewService := service.NewReviewService(reviewRepo, recipeRepo)
	followService := service.NewFollowService(followRepo, userRepo, recipeRepo)
	trendingService := service.NewTrendingService(trendingRepo, recipeRepo, recipeCache)
	mealPlanService := service.NewMealPlanService(mealPlanRepo, recipeRepo, ml)
	shoppingListService := service.NewShoppingListService(shoppingListRepo)
	foodImageService := service.NewFoodImageService(foodImageRepo, ml)

	// 7️⃣ Setup Gin
	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst).Middleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	// Public routes carry OptionalAuth so authors can see their own drafts
	// and views attribute correctly.
	public := api.Group("")
	public.Use(middleware.OptionalAuth(authService))

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(authService))

	// 8️⃣ Handlers
	handler.NewAuthHandler(authService).RegisterRoutes(api, protected)
	handler.NewUserHandler(userService).RegisterRoutes(public, protected)
	handler.NewFollowHandler(followService).RegisterRoutes(public, protected)
	handler.NewRecipeHandler(recipeService, ingredientService).RegisterRoutes(public, protected)
	handler.NewIngredientHandler(ingredientService).RegisterRoutes(public, protected)
	handler.NewInteractionHandler(interactionService, trendingService).RegisterRoutes(public, protected)
	handler.NewReviewHandler(reviewService).RegisterRoutes(public, protected)
	handler.NewTrendingHandler(trendingService).RegisterRoutes(public)
	handler.NewMealPlanHandler(mealPlanService).RegisterRoutes(protected)
	handler.NewShoppingListHandler(shoppingListService).RegisterRoutes(protected)
	handler.NewFoodImageHandler(foodImageService).RegisterRoutes(protected)
	handler.NewChatHandler(ml).RegisterRoutes(protected)

	httpServer := fmt.Sprintf(":%d", cfg.HTTPPort)
	fmt.Println("🚀 Server running at", httpServer)
	if err := r.Run(httpServer); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
