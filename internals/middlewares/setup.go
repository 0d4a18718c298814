package middlewares

import "github.com/gofiber/fiber/v2"

// SetupMiddlewares memasang middleware dasar dengan urutan yang benar:
// recovery paling luar, lalu request-id/logging, CORS, dan rate limiter.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(RequestLogger())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
}
