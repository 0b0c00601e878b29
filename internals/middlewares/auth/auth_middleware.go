// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	authService "ptiadmin_backend/internals/features/users/auth/service"
	helper "ptiadmin_backend/internals/helpers"
)

type AuthJWTOpts struct {
	Tokens              *authService.TokenService
	AllowCookieFallback bool // use the access_token cookie when there is no Bearer header
	Log                 *zap.Logger
}

// AuthJWT rejects requests without a valid access token and stores the
// claims in Locals.
func AuthJWT(o AuthJWTOpts) fiber.Handler {
	if o.Tokens == nil {
		panic("AuthJWT: Tokens is required")
	}
	log := o.Log
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("auth")

	return func(c *fiber.Ctx) error {
		raw, err := extractBearerToken(c, o.AllowCookieFallback)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
		}

		claims, err := o.Tokens.Parse(raw)
		if err != nil {
			log.Debug("token rejected", zap.String("path", c.Path()), zap.Error(err))
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - Invalid or expired token")
		}

		storeClaimsToLocals(c, claims)
		return c.Next()
	}
}
