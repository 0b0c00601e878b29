// internals/middlewares/auth/claim_utils.go
package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	authService "ptiadmin_backend/internals/features/users/auth/service"
)

const (
	LocUserName = "user_name"
	LocRole     = "userRole"
	LocClaims   = "jwt_claims"
)

var (
	errNoToken     = errors.New("unauthorized - No token provided")
	errTokenFormat = errors.New("unauthorized - Invalid token format")
)

// extractBearerToken reads the Authorization header, falling back to the
// access_token cookie when allowed.
func extractBearerToken(c *fiber.Ctx, cookie bool) (string, error) {
	auth := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if auth == "" && cookie {
		if tok := strings.TrimSpace(c.Cookies("access_token")); tok != "" {
			auth = "Bearer " + tok
		}
	}
	if auth == "" {
		return "", errNoToken
	}

	fields := strings.Fields(auth)
	if len(fields) < 2 || !strings.EqualFold(fields[0], "Bearer") {
		return "", errTokenFormat
	}
	tok := strings.Trim(strings.TrimSpace(fields[1]), "\"'")
	if tok == "" {
		return "", errTokenFormat
	}
	return tok, nil
}

func storeClaimsToLocals(c *fiber.Ctx, claims *authService.Claims) {
	c.Locals(LocClaims, claims)
	c.Locals(LocRole, claims.Role)
	c.Locals(LocUserName, claims.UserName)
}
