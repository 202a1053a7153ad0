package middleware

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v3"
)

// AdminKeyHeader is the header carrying the admin credential. The value
// is an opaque string; all validation happens here, server-side.
const AdminKeyHeader = "admin-key"

// RequireAdminKey gates a route group behind the configured admin key.
// With no key configured, admin routes are disabled entirely.
func RequireAdminKey(configuredKey string) fiber.Handler {
	return func(c fiber.Ctx) error {
		if configuredKey == "" {
			return ErrorResponse(c, fiber.StatusForbidden, "ADMIN_DISABLED", "Admin actions are not enabled on this server")
		}

		provided := c.Get(AdminKeyHeader)
		if provided == "" {
			return ErrorResponse(c, fiber.StatusUnauthorized, "MISSING_ADMIN_KEY", "admin-key header is required")
		}
		if subtle.ConstantTimeCompare([]byte(provided), []byte(configuredKey)) != 1 {
			return ErrorResponse(c, fiber.StatusForbidden, "INVALID_ADMIN_KEY", "Invalid admin key")
		}

		return c.Next()
	}
}
