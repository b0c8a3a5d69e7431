package routes

import (
	"context"
	"net/http"

	"squad-stats-backend/internal/api/handlers"
	"squad-stats-backend/internal/api/middleware"
	"squad-stats-backend/internal/auth"
	"squad-stats-backend/internal/config"
	"squad-stats-backend/internal/logger"
	"squad-stats-backend/internal/metrics"
	"squad-stats-backend/internal/repository"
	"squad-stats-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Version is reported by the health endpoint
var Version = "1.0.0"

// SetupRoutes configures all the routes for the application. redisClient may
// be nil, in which case player stats are computed on every request.
func SetupRoutes(db *gorm.DB, redisClient *redis.Client, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))
	router.Use(middleware.Metrics())

	// Initialize validator
	validator := service.NewValidator()

	// Initialize repositories
	teamRepo := repository.NewTeamRepository(db)
	gameRepo := repository.NewGameRepository(db)

	var statsCache service.StatsCache = service.NoopStatsCache{}
	if redisClient != nil {
		statsCache = service.NewRedisStatsCache(redisClient, cfg.StatsCacheTTL)
	}

	// The coach service reports ErrAIProviderNotConfigured on a nil generator
	var generator service.TextGenerator
	if cfg.AIEnabled() {
		generator = service.NewGeminiClient(service.GeminiConfig{
			APIKey:  cfg.GeminiAPIKey,
			Model:   cfg.GeminiModel,
			BaseURL: cfg.GeminiBaseURL,
			Timeout: cfg.AITimeout,
		})
	} else {
		logger.New().Warn("GEMINI_API_KEY is not set, AI coach requests will return 503")
	}

	// Initialize services
	teamService := service.NewTeamService(teamRepo, statsCache, validator)
	gameService := service.NewGameService(gameRepo, teamRepo, statsCache, validator)
	statsService := service.NewStatsService(teamRepo, gameRepo, statsCache)
	coachService := service.NewCoachService(teamRepo, gameRepo, generator, validator)

	// Initialize handlers
	checks := map[string]handlers.HealthCheck{"database": handlers.DatabaseCheck(db)}
	if redisClient != nil {
		checks["redis"] = func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		}
	}
	healthHandler := handlers.NewHealthHandler(Version, checks)
	teamHandler := handlers.NewTeamHandler(teamService, gameService)
	gameHandler := handlers.NewGameHandler(gameService)
	statsHandler := handlers.NewStatsHandler(statsService)
	coachHandler := handlers.NewCoachHandler(coachService)

	// Health check routes (no auth required)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Viewers may read, only coaches may write or ask the AI coach
	coachOnly := func(c *gin.Context) { c.Next() }

	v1 := router.Group("/api/v1")
	if cfg.AuthEnabled {
		authMiddleware := auth.NewAuthMiddleware(auth.NewTokenService(cfg.JWTSecret))
		v1.Use(authMiddleware.RequireAuth())
		coachOnly = authMiddleware.RequireRole(auth.RoleCoach)
	} else {
		logger.New().Warn("AUTH_ENABLED is false, API routes are unauthenticated")
	}

	{
		teams := v1.Group("/teams")
		{
			teams.GET("", teamHandler.ListTeams)
			teams.POST("", coachOnly, teamHandler.CreateTeam)
			teams.GET("/:id", teamHandler.GetTeam)
			teams.PUT("/:id", coachOnly, teamHandler.UpdateTeam)
			teams.DELETE("/:id", coachOnly, teamHandler.DeleteTeam)
			teams.GET("/:id/games", teamHandler.ListTeamGames)
			teams.POST("/:id/players", coachOnly, teamHandler.AddPlayer)
			teams.PUT("/:id/players/:playerId", coachOnly, teamHandler.UpdatePlayer)
			teams.DELETE("/:id/players/:playerId", coachOnly, teamHandler.RemovePlayer)
		}

		games := v1.Group("/games")
		{
			games.POST("", coachOnly, gameHandler.CreateGame)
			games.GET("/team/:teamId", gameHandler.ListGamesByTeam)
			games.GET("/:id", gameHandler.GetGame)
			games.PUT("/:id", coachOnly, gameHandler.UpdateGameStats)
			games.DELETE("/:id", coachOnly, gameHandler.DeleteGame)
		}

		stats := v1.Group("/stats")
		{
			stats.GET("/:teamId/player/:name", statsHandler.GetPlayerStats)
			stats.GET("/:teamId/season", statsHandler.GetSeasonTotals)
		}

		ai := v1.Group("/ai")
		{
			ai.POST("/analyze", coachOnly, coachHandler.Analyze)
		}
	}

	// Handle 404 for undefined routes
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(checks map[string]handlers.HealthCheck) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(Version, checks)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
