package identity

import (
	"context"

	"github.com/ahmetcoskunkizilkaya/user-contracts/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// LocalsKey is where the JWT middleware stores the parsed token.
const LocalsKey = "user"

// Caller is the authenticated user behind a request.
type Caller struct {
	UserID   uuid.UUID
	Username string
}

type ctxKey struct{}

func WithCaller(ctx context.Context, caller *Caller) context.Context {
	return context.WithValue(ctx, ctxKey{}, caller)
}

func FromContext(ctx context.Context) (*Caller, bool) {
	caller, ok := ctx.Value(ctxKey{}).(*Caller)
	return caller, ok && caller != nil
}

// FromLocals extracts the caller from a verified access token in Fiber
// context locals.
func FromLocals(c *fiber.Ctx) (*Caller, bool) {
	token, ok := c.Locals(LocalsKey).(*jwt.Token)
	if !ok || token == nil || !token.Valid {
		return nil, false
	}

	claims, ok := token.Claims.(*services.AccessClaims)
	if !ok || services.ValidateClaims(claims) != nil {
		return nil, false
	}

	return &Caller{
		UserID:   uuid.MustParse(claims.Subject),
		Username: claims.Username,
	}, true
}
