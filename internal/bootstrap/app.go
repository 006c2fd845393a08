package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"edurise-backend/internal/analytics"
	googleauth "edurise-backend/internal/auth"
	"edurise-backend/internal/courses"
	"edurise-backend/internal/interactions"
	"edurise-backend/internal/recommendations"
	"edurise-backend/internal/shared/config"
	"edurise-backend/internal/shared/server"
	"edurise-backend/internal/shared/storage/db"
	"edurise-backend/internal/users"
)

// App holds shared dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB

	CoursesRepo      courses.Repo
	InteractionsRepo interactions.Repo
	UsersRepo        users.Repo

	CoursesService         *courses.Service
	RecommendationsService *recommendations.Service
	InteractionsService    *interactions.Service
	AnalyticsService       *analytics.Service
	UsersService           *users.Service

	CoursesHandler         *courses.Handler
	RecommendationsHandler *recommendations.Handler
	InteractionsHandler    *interactions.Handler
	AnalyticsHandler       *analytics.Handler
	UsersHandler           *users.Handler
	GoogleAuth             *googleauth.GoogleService
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
	}
	buildServices(app)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:                app.Config,
		CourseHandler:         app.CoursesHandler,
		RecommendationHandler: app.RecommendationsHandler,
		InteractionHandler:    app.InteractionsHandler,
		AnalyticsHandler:      app.AnalyticsHandler,
		UserHandler:           app.UsersHandler,
		GoogleAuth:            app.GoogleAuth,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return sqlDB, nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}

func buildServices(app *App) {
	var courseRepo courses.Repo
	var interactionRepo interactions.Repo
	var userRepo users.Repo
	var analyticsSource analytics.Source

	if app.DB != nil {
		courseRepo = &courses.PGRepo{DB: app.DB}
		interactionRepo = &interactions.PGRepo{DB: app.DB}
		userRepo = &users.PGRepo{DB: app.DB}
		analyticsSource = &analytics.PGSource{DB: app.DB}
	} else {
		courseRepo = courses.NewMemoryRepo()
		memInteractions := interactions.NewMemoryRepo()
		interactionRepo = memInteractions
		userRepo = users.NewMemoryRepo()
		analyticsSource = &analytics.RepoSource{Repo: memInteractions}
	}

	engineCfg := recommendations.ConfigFromEnv(recommendations.DefaultConfig())
	engine := recommendations.NewEngine(engineCfg)

	courseSvc := &courses.Service{Repo: courseRepo}
	recSvc := recommendations.NewService(courseRepo, engine)
	interactionSvc := interactions.NewService(interactionRepo)
	analyticsSvc := analytics.NewService(analyticsSource)
	userSvc := users.NewService(userRepo)

	googleAuthSvc := googleauth.NewGoogleService(
		app.Config.GoogleClientID,
		app.Config.GoogleClientSecret,
		app.Config.GoogleRedirectURL,
		app.Config.UIRedirectURL,
		userSvc,
	)

	app.CoursesRepo = courseRepo
	app.InteractionsRepo = interactionRepo
	app.UsersRepo = userRepo
	app.CoursesService = courseSvc
	app.RecommendationsService = recSvc
	app.InteractionsService = interactionSvc
	app.AnalyticsService = analyticsSvc
	app.UsersService = userSvc
	app.CoursesHandler = courses.NewHandler(courseSvc)
	app.RecommendationsHandler = recommendations.NewHandler(recSvc)
	app.InteractionsHandler = interactions.NewHandler(interactionSvc)
	app.AnalyticsHandler = analytics.NewHandler(analyticsSvc)
	app.UsersHandler = users.NewHandler(userSvc)
	app.GoogleAuth = googleAuthSvc
}
