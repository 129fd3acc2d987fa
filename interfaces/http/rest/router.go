package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"postboard/infrastructure/di"
	"postboard/interfaces/http/rest/handlers"
	"postboard/interfaces/http/rest/middleware"
	"postboard/pkg/common"
)

// Router creates and configures the HTTP router
type Router struct {
	container *di.Container
	logger    *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(container *di.Container) *Router {
	return &Router{
		container: container,
		logger:    container.Logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	c := rt.container
	cfg := c.Config
	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))
	if cfg.EnableMetrics {
		router.Use(middleware.Metrics(c.Metrics))
	}

	if cfg.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   cfg.AllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID", "Retry-After"},
			AllowCredentials: false,
			MaxAge:           300,
		}))
	}

	router.Use(c.ErrorHandler.Middleware)

	// Health check
	router.Get("/health", rt.healthCheck)
	if cfg.EnableMetrics {
		router.Method(http.MethodGet, "/metrics", c.Metrics.Handler())
	}

	router.Route("/api", func(r chi.Router) {
		r.Use(middleware.RateLimit(c.RateLimiter, c.ErrorHandler, rt.logger))

		authHandler := handlers.NewAuthHandler(c.AuthService, c.ErrorHandler, rt.logger)
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
		})

		r.Route("/posts", func(r chi.Router) {
			r.Use(middleware.Authenticate(c.JWT, c.ErrorHandler, rt.logger))

			postHandler := handlers.NewPostHandler(
				c.PostService,
				c.CommandBus,
				c.QueryBus,
				c.ErrorHandler,
				handlers.PageSizes{Default: cfg.DefaultPageSize, Max: cfg.MaxPageSize},
				rt.logger,
			)
			r.Post("/", postHandler.CreatePost)
			r.Get("/", postHandler.ListPosts)
			r.Get("/{postID}", postHandler.GetPost)
			r.Post("/{postID}/like", postHandler.LikePost)
			r.Delete("/{postID}/like", postHandler.UnlikePost)
		})
	})

	return router
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, _ *http.Request) {
	common.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
