package controller

import (
	"github.com/gofiber/fiber/v2"

	"hrms_backend/internals/features/hr/dashboard/service"
	helper "hrms_backend/internals/helpers"
)

type DashboardController struct {
	Svc *service.DashboardService
}

func NewDashboardController(svc *service.DashboardService) *DashboardController {
	return &DashboardController{Svc: svc}
}

// GET /api/dashboard
func (h *DashboardController) Summary(c *fiber.Ctx) error {
	sum, err := h.Svc.Summary(c.UserContext())
	if err != nil {
		return err
	}
	return helper.JsonOK(c, sum)
}
