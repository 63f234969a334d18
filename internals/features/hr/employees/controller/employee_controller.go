package controller

import (
	"github.com/gofiber/fiber/v2"

	"hrms_backend/internals/features/hr/employees/dto"
	"hrms_backend/internals/features/hr/employees/service"
	helper "hrms_backend/internals/helpers"
)

type EmployeeController struct {
	Svc *service.EmployeeService
}

func NewEmployeeController(svc *service.EmployeeService) *EmployeeController {
	return &EmployeeController{Svc: svc}
}

// GET /api/employees
func (h *EmployeeController) List(c *fiber.Ctx) error {
	rows, err := h.Svc.List(c.UserContext())
	if err != nil {
		return err
	}
	return helper.JsonOK(c, dto.FromModels(rows))
}

// GET /api/employees/:employee_id
func (h *EmployeeController) GetByID(c *fiber.Ctx) error {
	m, err := h.Svc.Get(c.UserContext(), c.Params("employee_id"))
	if err != nil {
		return err
	}
	return helper.JsonOK(c, dto.FromModel(m))
}

// POST /api/employees
func (h *EmployeeController) Create(c *fiber.Ctx) error {
	var req dto.CreateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.NewValidationError("invalid payload: "+err.Error(), nil)
	}

	m, err := h.Svc.Create(c.UserContext(), req)
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, dto.FromModel(m))
}

// DELETE /api/employees/:employee_id
func (h *EmployeeController) Delete(c *fiber.Ctx) error {
	if err := h.Svc.Delete(c.UserContext(), c.Params("employee_id")); err != nil {
		return err
	}
	return helper.JsonNoContent(c)
}
