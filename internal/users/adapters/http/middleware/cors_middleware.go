package middleware

import (
	"slices"

	"github.com/gofiber/fiber/v3"
)

// NewCORSMiddleware создает промежуточное ПО CORS с явным списком
// разрешенных источников. Подстановочный "*" допускается, но тогда
// credentials не включаются: сочетание "*" с credentials небезопасно.
func NewCORSMiddleware(allowedOrigins []string) fiber.Handler {
	wildcard := slices.Contains(allowedOrigins, "*")

	return func(ctx fiber.Ctx) error {
		origin := ctx.Get(fiber.HeaderOrigin)

		switch {
		case wildcard:
			ctx.Set(fiber.HeaderAccessControlAllowOrigin, "*")
		case origin != "" && slices.Contains(allowedOrigins, origin):
			ctx.Set(fiber.HeaderAccessControlAllowOrigin, origin)
			ctx.Set(fiber.HeaderAccessControlAllowCredentials, "true")
			ctx.Set(fiber.HeaderVary, fiber.HeaderOrigin)
		}

		ctx.Set(fiber.HeaderAccessControlAllowMethods, "GET, POST, PUT, DELETE")
		ctx.Set(fiber.HeaderAccessControlAllowHeaders, "Content-Type, Authorization")

		if ctx.Method() == fiber.MethodOptions {
			return ctx.SendStatus(fiber.StatusNoContent)
		}

		return ctx.Next()
	}
}
