package main

import (
	"log"
	"net/http"
	"time"

	"studypath-be/internal/cache"
	"studypath-be/internal/config"
	"studypath-be/internal/controllers"
	"studypath-be/internal/database"
	"studypath-be/internal/jwt"
	"studypath-be/internal/middleware"
	"studypath-be/internal/openai"
	"studypath-be/internal/repository"
	"studypath-be/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Connect to database
	db, err := database.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Run database migrations
	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize Redis cache (optional - continue if Redis is unavailable)
	var cacheClient cache.Cache
	cacheClient, err = cache.NewRedisCache(cfg.RedisURL)
	if err != nil {
		log.Printf("Warning: Failed to connect to Redis (%v). Continuing without cache.", err)
		cacheClient = nil
	} else {
		log.Println("Connected to Redis cache")
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	studyRepo := repository.NewStudyPlanRepository(db)
	timetableRepo := repository.NewTimetableRepository(db)

	// Initialize JWT service
	jwtService := jwt.NewJWTService(
		cfg.JWTSecret,
		time.Duration(cfg.JWTTTL)*time.Hour,
	)

	// Initialize completion client
	completionClient := openai.NewClient(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey, cfg.OpenAIModel)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService)
	studyService := service.NewStudyService(studyRepo)
	plannerService := service.NewAIPlannerService(completionClient, timetableRepo, cacheClient)

	// Initialize controllers
	authController := controllers.NewAuthController(authService)
	studyController := controllers.NewStudyController(studyService)
	smartPlanController := controllers.NewSmartPlanController()
	aiPlanController := controllers.NewAIPlanController(plannerService)
	timetableController := controllers.NewTimetableController(plannerService)

	// Initialize rate limiters
	generalRateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
	authRateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitAuthRPS), cfg.RateLimitAuthBurst)
	aiRateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitAIRPS), cfg.RateLimitAIBurst)

	// Auth middleware for protected routes
	requireAuth := middleware.AuthMiddleware(jwtService, userRepo)

	// Create a Gin router
	router := gin.Default()

	// CORS for the dev frontend only
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           5 * time.Minute,
	}))

	// Liveness endpoints (no rate limiting)
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "Backend running",
		})
	})
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	// Auth routes with stricter rate limiting
	auth := router.Group("/auth")
	auth.Use(authRateLimiter.LimitMiddleware())
	{
		auth.POST("/signup", authController.Signup)
		auth.POST("/login", authController.Login)
	}

	// Study plans - require JWT authentication
	study := router.Group("/study")
	study.Use(generalRateLimiter.LimitMiddleware(), requireAuth)
	{
		study.POST("/", studyController.CreatePlan)
		study.GET("/", studyController.GetPlans)
	}

	progress := router.Group("/progress")
	progress.Use(generalRateLimiter.LimitMiddleware(), requireAuth)
	{
		progress.GET("/weekly", studyController.WeeklyProgress)
	}

	// Heuristic planner - public, cheap, general rate limiting
	smartPlan := router.Group("/smart-plan")
	smartPlan.Use(generalRateLimiter.LimitMiddleware())
	{
		smartPlan.POST("/", smartPlanController.Generate)
	}

	// AI generation routes pay upstream latency and cost per call
	aiPlan := router.Group("/ai-plan")
	aiPlan.Use(aiRateLimiter.LimitMiddleware())
	{
		aiPlan.POST("/", aiPlanController.Generate)
	}

	aiTimetable := router.Group("/ai-timetable")
	aiTimetable.Use(aiRateLimiter.LimitMiddleware())
	{
		aiTimetable.POST("/", requireAuth, timetableController.Generate)
		aiTimetable.GET("/latest", requireAuth, timetableController.Latest)
		aiTimetable.POST("/save", timetableController.Save)
	}

	// Start the server on port 8080
	log.Println("Server starting on http://localhost:8080")
	router.Run(":8080")
}
