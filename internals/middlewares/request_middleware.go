package middlewares

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	helper "hrms_backend/internals/helpers"
)

const (
	HeaderRequestID = "X-Request-ID"
	LocRequestID    = "reqid"
)

// RequestContext tags each request with an id (reusing X-Request-ID when sent), bounds its
// user context by timeout and logs method, url, status and duration.
func RequestContext(timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(HeaderRequestID)
		if id == "" {
			id = utils.UUIDv4()
		}
		c.Set(HeaderRequestID, id)
		c.Locals(LocRequestID, id)
		start := time.Now()

		if timeout > 0 {
			ctx, cancel := context.WithTimeout(c.UserContext(), timeout)
			defer cancel()
			c.SetUserContext(ctx)
		}

		err := c.Next()
		status := c.Response().StatusCode()
		if err != nil {
			// the app ErrorHandler has not run yet
			status = helper.StatusOf(err)
		}
		log.Printf("[REQ] id=%s %s %s status=%d dur=%s", id, c.Method(), c.OriginalURL(), status, time.Since(start))
		return err
	}
}
