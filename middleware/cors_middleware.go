package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	apperrors "resume-builder-backend/lib/utils/app-errors"
)

// CorsOriginGuard rejects browser requests from origins outside the allow-list.
// Requests without Origin (curl, mobile apps) and an empty allow-list pass.
func CorsOriginGuard(allowed []string) fiber.Handler {
	allowedSet := make(map[string]struct{}, len(allowed))
	for _, origin := range allowed {
		allowedSet[origin] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		origin := c.Get(fiber.HeaderOrigin)
		if origin == "" || len(allowedSet) == 0 {
			return c.Next()
		}
		if _, ok := allowedSet[origin]; ok {
			return c.Next()
		}
		return apperrors.NewForbidden("Not allowed by CORS")
	}
}

func Cors(allowed []string) fiber.Handler {
	cfg := cors.Config{
		AllowHeaders: "Content-Type, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}
	if len(allowed) == 0 {
		// credentials can not be combined with a wildcard origin
		cfg.AllowOrigins = "*"
	} else {
		cfg.AllowOrigins = strings.Join(allowed, ",")
		cfg.AllowCredentials = true
	}
	return cors.New(cfg)
}
