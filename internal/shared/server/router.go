package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"edurise-backend/internal/analytics"
	googleauth "edurise-backend/internal/auth"
	"edurise-backend/internal/courses"
	"edurise-backend/internal/interactions"
	"edurise-backend/internal/recommendations"
	"edurise-backend/internal/shared/config"
	"edurise-backend/internal/shared/metrics"
	"edurise-backend/internal/shared/server/middleware"
	"edurise-backend/internal/shared/server/respond"
	"edurise-backend/internal/users"
)

// RouterDeps carries the wired handlers the router mounts.
type RouterDeps struct {
	Config                config.Config
	CourseHandler         *courses.Handler
	RecommendationHandler *recommendations.Handler
	InteractionHandler    *interactions.Handler
	AnalyticsHandler      *analytics.Handler
	UserHandler           *users.Handler
	GoogleAuth            *googleauth.GoogleService
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	if deps.GoogleAuth != nil {
		deps.GoogleAuth.RegisterRoutes(api)
	}

	api.Use(
		middleware.Auth(deps.Config.Env),
		middleware.RateLimit(middleware.RateLimitConfig{
			DefaultGroup: "DEFAULT",
			GroupFor: func(c *gin.Context) string {
				if c.Request.Method == http.MethodGet && c.FullPath() == "/api/v1/recommendations" {
					return "RECOMMENDATIONS"
				}
				return "DEFAULT"
			},
			Rules: map[string]middleware.RateLimitRule{
				"DEFAULT":         {Rate: 5, Burst: 20},
				"RECOMMENDATIONS": {Rate: 10, Burst: 30},
			},
		}),
	)

	if deps.CourseHandler != nil {
		deps.CourseHandler.RegisterRoutes(api)
	}
	if deps.RecommendationHandler != nil {
		deps.RecommendationHandler.RegisterRoutes(api)
	}
	if deps.InteractionHandler != nil {
		deps.InteractionHandler.RegisterRoutes(api)
	}
	if deps.AnalyticsHandler != nil {
		deps.AnalyticsHandler.RegisterRoutes(api)
	}
	if deps.UserHandler != nil {
		deps.UserHandler.RegisterRoutes(api)
	}

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
