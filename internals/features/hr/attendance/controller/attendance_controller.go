package controller

import (
	"github.com/gofiber/fiber/v2"

	"hrms_backend/internals/features/hr/attendance/dto"
	"hrms_backend/internals/features/hr/attendance/service"
	helper "hrms_backend/internals/helpers"
)

type AttendanceController struct {
	Svc *service.AttendanceService
}

func NewAttendanceController(svc *service.AttendanceService) *AttendanceController {
	return &AttendanceController{Svc: svc}
}

// GET /api/attendance?employee_id=&date_filter=
func (h *AttendanceController) List(c *fiber.Ctx) error {
	var q dto.ListAttendanceQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.NewValidationError("invalid query: "+err.Error(), nil)
	}
	f, err := service.ParseFilter(q)
	if err != nil {
		return err
	}

	rows, err := h.Svc.List(c.UserContext(), f)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, dto.FromModels(rows))
}

// POST /api/attendance
func (h *AttendanceController) Mark(c *fiber.Ctx) error {
	var req dto.MarkAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.NewValidationError("invalid payload: "+err.Error(), nil)
	}

	m, err := h.Svc.Mark(c.UserContext(), req)
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, dto.FromModel(m))
}
