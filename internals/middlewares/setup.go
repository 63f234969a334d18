package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"hrms_backend/internals/configs"
	"hrms_backend/internals/middlewares/logger"
)

// SetupMiddlewares installs the global chain in order: recovery, request id/timeout, access log,
// CORS, rate limit.
func SetupMiddlewares(app *fiber.App, cfg configs.AppConfig) {
	app.Use(RecoveryMiddleware())
	app.Use(RequestContext(cfg.RequestTimeout))
	app.Use(logger.LoggerMiddleware(cfg.Timezone))
	app.Use(CorsMiddleware(cfg.CorsOrigins))
	app.Use(GlobalRateLimiter(cfg.RateLimitMax, cfg.RateLimitWindow))
}
