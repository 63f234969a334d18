// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hrms_backend/internals/configs"
	attendanceRoute "hrms_backend/internals/features/hr/attendance/route"
	dashboardRoute "hrms_backend/internals/features/hr/dashboard/route"
	employeeRoute "hrms_backend/internals/features/hr/employees/route"
	"hrms_backend/internals/helpers/dbtime"
	"hrms_backend/internals/middlewares/hrauth"
)

var startTime = time.Now()

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg configs.AppConfig, clock dbtime.Clock) {
	startTime = time.Now()

	log.Println("[INFO] Setting up BaseRoutes...")
	BaseRoutes(app, db)

	if cfg.JWTSecret != "" {
		log.Println("[INFO] /api requires a bearer token")
	}
	api := app.Group("/api", hrauth.AuthJWT(hrauth.AuthJWTOpts{
		Secret:              cfg.JWTSecret,
		AllowCookieFallback: true,
	}))

	log.Println("[INFO] Setting up EmployeeRoutes...")
	employeeRoute.EmployeeRoutes(api, db, clock)

	log.Println("[INFO] Setting up AttendanceRoutes...")
	attendanceRoute.AttendanceRoutes(api, db)

	log.Println("[INFO] Setting up DashboardRoutes...")
	dashboardRoute.DashboardRoutes(api, db, clock)

	app.Use(func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Not Found")
	})
}
