package middleware

import (
	"github.com/ahmetcoskunkizilkaya/user-contracts/internal/identity"
	"github.com/ahmetcoskunkizilkaya/user-contracts/internal/services"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
)

// BearerAuth parses an "Authorization: Bearer <token>" header when one is
// present. A valid access token is stored in locals under identity.LocalsKey;
// requests without one, or with an invalid one, continue anonymously and are
// refused by the protected resolvers themselves.
func BearerAuth(auth *services.AuthService) fiber.Handler {
	return jwtware.New(jwtware.Config{
		KeyFunc:     auth.KeyFunc,
		Claims:      &services.AccessClaims{},
		ContextKey:  identity.LocalsKey,
		TokenLookup: "header:" + fiber.HeaderAuthorization,
		AuthScheme:  "Bearer",
		Filter: func(c *fiber.Ctx) bool {
			return c.Get(fiber.HeaderAuthorization) == ""
		},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			c.Locals(identity.LocalsKey, nil)
			return c.Next()
		},
	})
}
