package main

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/campusinova/innovation-platform/internal/config"
	"github.com/campusinova/innovation-platform/internal/database"
	"github.com/campusinova/innovation-platform/internal/handlers"
	"github.com/campusinova/innovation-platform/internal/logger"
	"github.com/campusinova/innovation-platform/internal/middleware"
	"github.com/campusinova/innovation-platform/internal/models"
	"github.com/campusinova/innovation-platform/internal/repository"
	"github.com/campusinova/innovation-platform/internal/services"
	"github.com/campusinova/innovation-platform/internal/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logger.Init(cfg.GinMode)
	gin.SetMode(cfg.GinMode)

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}

	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("Failed to run migrations")
	}
	if err := database.AddIndexes(db); err != nil {
		log.Fatal().Err(err).Msg("Failed to create indexes")
	}

	if cfg.SeedSampleData {
		database.Seed(db)
	}

	// The cache is best-effort; the platform runs without it.
	var cache *redis.Client
	if cache, err = database.ConnectRedis(cfg); err != nil {
		log.Warn().Err(err).Msg("Redis unavailable, matching analysis will not be cached")
		cache = nil
	}

	tokens := utils.NewJWTManager(cfg.JWTSecret, time.Duration(cfg.TokenTTLHours)*time.Hour)

	// Repositories
	userRepo := repository.NewUserRepository(db)
	challengeRepo := repository.NewChallengeRepository(db)
	solutionRepo := repository.NewSolutionRepository(db)
	voteRepo := repository.NewVoteRepository(db)

	// Services
	authService := services.NewAuthService(userRepo, tokens)
	challengeService := services.NewChallengeService(challengeRepo)
	solutionService := services.NewSolutionService(solutionRepo, challengeRepo, voteRepo)
	userService := services.NewUserService(userRepo)
	statsService := services.NewStatsService(userRepo, challengeRepo, solutionRepo, voteRepo)
	matchingService := services.NewMatchingService(userRepo, cache)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	challengeHandler := handlers.NewChallengeHandler(challengeService)
	solutionHandler := handlers.NewSolutionHandler(solutionService)
	userHandler := handlers.NewUserHandler(userService)
	statsHandler := handlers.NewStatsHandler(statsService, db)
	matchingHandler := handlers.NewMatchingHandler(matchingService)
	adminHandler := handlers.NewAdminHandler(userService, challengeService, solutionService, statsService)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"*"},
		ExposeHeaders:   []string{"*"},
		MaxAge:          12 * time.Hour,
	}))
	r.Use(middleware.ErrorHandler())

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message":     "Campus Innovation Platform API",
			"description": "Connecting business challenges with academic innovation",
			"health":      "/api/health",
		})
	})

	requireAuth := middleware.RequireAuth(tokens, userRepo)
	requireAdmin := middleware.RequireTypes(models.UserTypeAdmin)

	api := r.Group("/api")
	{
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)
		api.GET("/profile", requireAuth, authHandler.Profile)

		api.POST("/challenges", requireAuth,
			middleware.RequireTypes(models.UserTypeProfessor, models.UserTypeCompany),
			challengeHandler.Create)
		api.GET("/challenges", challengeHandler.List)
		api.GET("/challenges/:id", challengeHandler.Get)
		api.GET("/challenges/:id/solutions", solutionHandler.ListByChallenge)

		api.POST("/solutions", requireAuth, solutionHandler.Submit)
		api.GET("/solutions", solutionHandler.List)
		api.POST("/solutions/:id/vote", requireAuth, solutionHandler.Vote)
		api.GET("/solutions/:id/votes", solutionHandler.Votes)

		api.GET("/leaderboard", userHandler.Leaderboard)
		api.GET("/users", userHandler.List)
		api.GET("/users/:id", userHandler.Get)

		api.GET("/stats", statsHandler.Stats)
		api.GET("/matching-analysis", matchingHandler.Analysis)
		api.GET("/health", statsHandler.Health)

		admin := api.Group("/admin", requireAuth, requireAdmin)
		{
			admin.GET("/users", adminHandler.Users)
			admin.GET("/challenges", adminHandler.Challenges)
			admin.GET("/solutions", adminHandler.Solutions)
			admin.GET("/detailed-stats", adminHandler.DetailedStats)
		}
	}

	addr := ":" + cfg.Server.Port
	log.Info().Str("addr", addr).Msg("Server starting")
	if err := r.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}
