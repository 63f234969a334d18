package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	employeeController "hrms_backend/internals/features/hr/employees/controller"
	employeeService "hrms_backend/internals/features/hr/employees/service"
	"hrms_backend/internals/helpers/dbtime"
)

func EmployeeRoutes(router fiber.Router, db *gorm.DB, clock dbtime.Clock) {
	ctrl := employeeController.NewEmployeeController(employeeService.NewEmployeeService(db, clock))

	employees := router.Group("/employees")
	employees.Get("/", ctrl.List)
	employees.Post("/", ctrl.Create)
	employees.Get("/:employee_id", ctrl.GetByID)
	employees.Delete("/:employee_id", ctrl.Delete)
}
