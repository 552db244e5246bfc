package routes

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/user-contracts/internal/config"
	"github.com/ahmetcoskunkizilkaya/user-contracts/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/user-contracts/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/user-contracts/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authService *services.AuthService,
	graphqlHandler *handlers.GraphQLHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api")
	api.Get("/health", healthHandler.Check)

	limit := limiter.New(limiter.Config{
		Max:               cfg.RateLimitPerMin,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	})

	// Bearer parsing only; each protected resolver enforces login itself.
	app.Post("/graphql", limit, middleware.BearerAuth(authService), graphqlHandler.Serve)

	if cfg.GraphQLPlayground {
		app.Get("/graphql", handlers.Playground("/graphql"))
	}
}
