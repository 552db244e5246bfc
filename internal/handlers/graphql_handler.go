package handlers

import (
	"log/slog"
	"strings"
	"time"

	"github.com/99designs/gqlgen/graphql/playground"
	"github.com/ahmetcoskunkizilkaya/user-contracts/internal/dto"
	"github.com/ahmetcoskunkizilkaya/user-contracts/internal/identity"
	"github.com/ahmetcoskunkizilkaya/user-contracts/internal/logging"
	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/graph-gophers/graphql-go"
)

type GraphQLHandler struct {
	schema *graphql.Schema
}

func NewGraphQLHandler(schema *graphql.Schema) *GraphQLHandler {
	return &GraphQLHandler{schema: schema}
}

// Serve executes one GraphQL request. Resolver failures are reported in the
// response errors array with status 200; only unreadable requests get a 400.
func (h *GraphQLHandler) Serve(c *fiber.Ctx) error {
	var req dto.GraphQLRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if strings.TrimSpace(req.Query) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "query is required",
		})
	}

	ctx := c.UserContext()
	if id, ok := c.Locals("requestid").(string); ok {
		ctx = logging.WithRequestID(ctx, id)
	}
	if caller, ok := identity.FromLocals(c); ok {
		ctx = identity.WithCaller(ctx, caller)
	}
	if hub := sentryfiber.GetHubFromContext(c); hub != nil {
		ctx = sentry.SetHubOnContext(ctx, hub)
	}

	start := time.Now()
	resp := h.schema.Exec(ctx, req.Query, req.OperationName, req.Variables)
	slog.InfoContext(ctx, "graphql request",
		"operation", req.OperationName,
		"errors", len(resp.Errors),
		"latency_ms", float64(time.Since(start).Microseconds())/1000,
	)

	return c.JSON(resp)
}

// Playground serves the interactive GraphQL IDE pointed at endpoint.
func Playground(endpoint string) fiber.Handler {
	return adaptor.HTTPHandlerFunc(playground.Handler("User Contracts", endpoint))
}
