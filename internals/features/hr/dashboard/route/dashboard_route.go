package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dashboardController "hrms_backend/internals/features/hr/dashboard/controller"
	dashboardService "hrms_backend/internals/features/hr/dashboard/service"
	"hrms_backend/internals/helpers/dbtime"
)

func DashboardRoutes(router fiber.Router, db *gorm.DB, clock dbtime.Clock) {
	ctrl := dashboardController.NewDashboardController(dashboardService.NewDashboardService(db, clock))
	router.Get("/dashboard", ctrl.Summary)
}
