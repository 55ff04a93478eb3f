package handlers

import (
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/campusinova/innovation-platform/internal/dto"
	"github.com/campusinova/innovation-platform/internal/middleware"
	"github.com/campusinova/innovation-platform/internal/models"
	"github.com/campusinova/innovation-platform/internal/repository"
	"github.com/campusinova/innovation-platform/internal/services"
	"github.com/campusinova/innovation-platform/internal/utils"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

type testEnv struct {
	db     *gorm.DB
	router *gin.Engine
	tokens *utils.JWTManager

	authService      *services.AuthService
	challengeService *services.ChallengeService
	solutionService  *services.SolutionService

	userRepo repository.UserRepository
}

// setupTestEnv wires the full handler stack over an in-memory database,
// mirroring the route table in cmd/server.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Challenge{},
		&models.Solution{},
		&models.Vote{},
	)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	tokens := utils.NewJWTManager("test-secret", time.Hour)

	userRepo := repository.NewUserRepository(db)
	challengeRepo := repository.NewChallengeRepository(db)
	solutionRepo := repository.NewSolutionRepository(db)
	voteRepo := repository.NewVoteRepository(db)

	authService := services.NewAuthService(userRepo, tokens)
	challengeService := services.NewChallengeService(challengeRepo)
	solutionService := services.NewSolutionService(solutionRepo, challengeRepo, voteRepo)
	userService := services.NewUserService(userRepo)
	statsService := services.NewStatsService(userRepo, challengeRepo, solutionRepo, voteRepo)
	matchingService := services.NewMatchingService(userRepo, nil)

	authHandler := NewAuthHandler(authService)
	challengeHandler := NewChallengeHandler(challengeService)
	solutionHandler := NewSolutionHandler(solutionService)
	userHandler := NewUserHandler(userService)
	statsHandler := NewStatsHandler(statsService, db)
	matchingHandler := NewMatchingHandler(matchingService)
	adminHandler := NewAdminHandler(userService, challengeService, solutionService, statsService)

	r := gin.New()
	r.Use(middleware.ErrorHandler())

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

	return &testEnv{
		db:               db,
		router:           r,
		tokens:           tokens,
		authService:      authService,
		challengeService: challengeService,
		solutionService:  solutionService,
		userRepo:         userRepo,
	}
}

// registerUser creates a user through the auth service.
func (env *testEnv) registerUser(t *testing.T, name, email string, userType models.UserType, expectations *string) *models.User {
	t.Helper()

	user, err := env.authService.Register(dto.RegisterRequest{
		Name:              name,
		Email:             email,
		Password:          "supersecret",
		Type:              userType,
		ShareExpectations: expectations != nil,
		Expectations:      expectations,
	})
	require.NoError(t, err)
	return user
}

// bearer returns an Authorization header value for the user.
func (env *testEnv) bearer(t *testing.T, user *models.User) string {
	t.Helper()

	token, err := env.tokens.Generate(user)
	require.NoError(t, err)
	return "Bearer " + token
}

func strPtr(s string) *string { return &s }
