// internals/features/hr/attendance/dto/attendance_dto.go
package dto

import (
	"strings"

	"gorm.io/datatypes"

	model "hrms_backend/internals/features/hr/attendance/model"
	"hrms_backend/internals/helpers/dbtime"
)

/* =========================
   REQUEST
   ========================= */

type MarkAttendanceRequest struct {
	EmployeeID string `json:"employee_id" validate:"notblank,max=64"`
	Date       string `json:"date"        validate:"required,datetime=2006-01-02"`
	Status     string `json:"status"      validate:"required,oneof=Present Absent"`
}

func (r *MarkAttendanceRequest) Normalize() {
	r.EmployeeID = strings.TrimSpace(r.EmployeeID)
	r.Date = strings.TrimSpace(r.Date)
	r.Status = strings.TrimSpace(r.Status)
}

// Query: GET /api/attendance?employee_id=&date_filter=
type ListAttendanceQuery struct {
	EmployeeID string `query:"employee_id"`
	DateFilter string `query:"date_filter"`
}

// Filter is the parsed form of ListAttendanceQuery; nil fields are not applied.
type Filter struct {
	EmployeeID *string
	Date       *datatypes.Date
}

/* =========================
   RESPONSE
   ========================= */

type AttendanceResponse struct {
	ID         string                 `json:"id"`
	EmployeeID string                 `json:"employee_id"`
	Date       string                 `json:"date"`
	Status     model.AttendanceStatus `json:"status"`
}

func FromModel(m model.AttendanceModel) AttendanceResponse {
	return AttendanceResponse{
		ID:         m.AttendanceID,
		EmployeeID: m.AttendanceEmployeeID,
		Date:       dbtime.FormatDate(m.AttendanceDate),
		Status:     m.AttendanceStatus,
	}
}

func FromModels(rows []model.AttendanceModel) []AttendanceResponse {
	out := make([]AttendanceResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromModel(r))
	}
	return out
}
