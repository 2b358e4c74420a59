package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/nwchen/chathub/internal/api/handler"
	custommiddleware "github.com/nwchen/chathub/internal/api/middleware"
	"github.com/nwchen/chathub/internal/config"
	"github.com/nwchen/chathub/internal/repository/mongo"
	"github.com/nwchen/chathub/internal/repository/redis"
	"github.com/nwchen/chathub/internal/service"
)

// NewRouter creates and configures the HTTP router. limiter may be nil when
// rate limiting is disabled.
func NewRouter(cfg *config.Config, conversations *service.ConversationService, store *mongo.Client, limiter *redis.RateLimiter) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(custommiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(cfg.Server.RequestTimeout))

	// CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{custommiddleware.RequestIDHeader},
		MaxAge:         300,
	}))

	if limiter != nil {
		rateLimit := custommiddleware.NewRateLimitMiddleware(limiter)
		r.Use(rateLimit.Limit)
	}

	sessionHandler := handler.NewSessionHandler(conversations)
	chatHandler := handler.NewChatHandler(conversations)

	r.Route("/api/v1", func(r chi.Router) {
		// Health check
		r.Get("/health", handler.HealthCheck)
		r.Get("/ready", handler.ReadyCheck(store))

		// Completion providers
		r.Get("/providers", chatHandler.Providers)

		// Session routes
		r.Route("/sessions", func(r chi.Router) {
			r.Get("/", sessionHandler.List)

			r.Route("/{sessionID}", func(r chi.Router) {
				r.Get("/", sessionHandler.Get)
				r.Put("/", sessionHandler.UpdateTitle)
				r.Delete("/", sessionHandler.Delete)

				r.Put("/messages", chatHandler.PostMessage)
			})
		})

		// User-scoped session routes
		r.Route("/users/{userID}/sessions", func(r chi.Router) {
			r.Get("/", sessionHandler.ListByUser)
			r.Post("/", sessionHandler.Create)
		})
	})

	return r
}
