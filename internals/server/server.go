// Package server builds the fiber app and runs it until the context is cancelled.
package server

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"gorm.io/gorm"

	"hrms_backend/internals/configs"
	helper "hrms_backend/internals/helpers"
	"hrms_backend/internals/helpers/dbtime"
	middlewares "hrms_backend/internals/middlewares"
	routes "hrms_backend/internals/route"
)

const shutdownTimeout = 5 * time.Second

// NewApp wires middlewares and routes. clock decides "today" for the dashboard.
func NewApp(cfg *configs.Config, db *gorm.DB, clock dbtime.Clock) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "HRMS Lite",
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		UnescapePath:          true,
		ErrorHandler:          helper.ErrorHandler,
		ReadTimeout:           15 * time.Second,
		WriteTimeout:          30 * time.Second,
		IdleTimeout:           90 * time.Second,
	})

	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())
	middlewares.SetupMiddlewares(app, cfg.App)

	routes.SetupRoutes(app, db, cfg.App, clock)
	return app
}

// Run listens on cfg.Port and shuts down gracefully once ctx is done.
func Run(ctx context.Context, cfg *configs.Config, app *fiber.App) error {
	errCh := make(chan error, 1)
	go func() {
		log.Printf("[INFO] Listening on :%s", cfg.Port)
		errCh <- app.Listen("0.0.0.0:" + cfg.Port)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Println("[INFO] Shutting down...")
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := app.ShutdownWithContext(sctx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return nil
}
