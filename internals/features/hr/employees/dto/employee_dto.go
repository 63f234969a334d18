// internals/features/hr/employees/dto/employee_dto.go
package dto

import (
	"strings"
	"time"

	model "hrms_backend/internals/features/hr/employees/model"
)

/* =========================
   REQUEST
   ========================= */

type CreateEmployeeRequest struct {
	EmployeeID string `json:"employee_id" validate:"notblank,max=64"`
	FullName   string `json:"full_name"   validate:"notblank,max=255"`
	Email      string `json:"email"       validate:"required,hrms_email,max=255"`
	Department string `json:"department"  validate:"notblank,max=120"`
}

// Normalize trims the free-text fields. Email is matched as sent.
func (r *CreateEmployeeRequest) Normalize() {
	r.EmployeeID = strings.TrimSpace(r.EmployeeID)
	r.FullName = strings.TrimSpace(r.FullName)
	r.Department = strings.TrimSpace(r.Department)
}

func (r CreateEmployeeRequest) ToModel(createdAt time.Time) model.EmployeeModel {
	return model.EmployeeModel{
		EmployeeID: r.EmployeeID,
		FullName:   r.FullName,
		Email:      r.Email,
		Department: r.Department,
		CreatedAt:  createdAt,
	}
}

/* =========================
   RESPONSE
   ========================= */

type EmployeeResponse struct {
	EmployeeID string    `json:"employee_id"`
	FullName   string    `json:"full_name"`
	Email      string    `json:"email"`
	Department string    `json:"department"`
	CreatedAt  time.Time `json:"created_at"`
}

func FromModel(m model.EmployeeModel) EmployeeResponse {
	return EmployeeResponse{
		EmployeeID: m.EmployeeID,
		FullName:   m.FullName,
		Email:      m.Email,
		Department: m.Department,
		CreatedAt:  m.CreatedAt,
	}
}

func FromModels(rows []model.EmployeeModel) []EmployeeResponse {
	out := make([]EmployeeResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromModel(r))
	}
	return out
}
