package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceController "hrms_backend/internals/features/hr/attendance/controller"
	attendanceService "hrms_backend/internals/features/hr/attendance/service"
)

func AttendanceRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := attendanceController.NewAttendanceController(attendanceService.NewAttendanceService(db))

	attendance := router.Group("/attendance")
	attendance.Get("/", ctrl.List)
	attendance.Post("/", ctrl.Mark)
}
