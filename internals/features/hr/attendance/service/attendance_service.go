// internals/features/hr/attendance/service/attendance_service.go
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hrms_backend/internals/features/hr/attendance/dto"
	"hrms_backend/internals/features/hr/attendance/model"
	employeeModel "hrms_backend/internals/features/hr/employees/model"
	helper "hrms_backend/internals/helpers"
	"hrms_backend/internals/helpers/dbtime"
)

type AttendanceService struct {
	DB *gorm.DB
}

func NewAttendanceService(db *gorm.DB) *AttendanceService {
	return &AttendanceService{DB: db}
}

// ParseFilter turns query params into a Filter. Blank params mean "no filter".
func ParseFilter(q dto.ListAttendanceQuery) (dto.Filter, error) {
	var f dto.Filter
	if id := strings.TrimSpace(q.EmployeeID); id != "" {
		f.EmployeeID = &id
	}
	if raw := strings.TrimSpace(q.DateFilter); raw != "" {
		d, err := dbtime.ParseDate(raw)
		if err != nil {
			return dto.Filter{}, helper.NewValidationError(err.Error(), map[string][]string{
				"date_filter": {"must be a date formatted " + dbtime.DateLayout},
			})
		}
		f.Date = &d
	}
	return f, nil
}

// List returns the records matching f, latest date first.
func (s *AttendanceService) List(ctx context.Context, f dto.Filter) ([]model.AttendanceModel, error) {
	q := s.DB.WithContext(ctx).Model(&model.AttendanceModel{})
	if f.EmployeeID != nil {
		q = q.Where("employee_id = ?", *f.EmployeeID)
	}
	if f.Date != nil {
		q = q.Where("date = ?", *f.Date)
	}

	var rows []model.AttendanceModel
	if err := q.Order("date DESC").Order("employee_id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}
	return rows, nil
}

// Mark upserts the status for (employee_id, date). An existing row keeps its id and gets
// the new status; otherwise a row with a fresh id is inserted. 404 when the employee is unknown.
func (s *AttendanceService) Mark(ctx context.Context, req dto.MarkAttendanceRequest) (model.AttendanceModel, error) {
	req.Normalize()
	if err := helper.ValidateStruct(req); err != nil {
		return model.AttendanceModel{}, err
	}
	date, err := dbtime.ParseDate(req.Date)
	if err != nil {
		return model.AttendanceModel{}, helper.NewValidationError(err.Error(), nil)
	}
	status := model.AttendanceStatus(req.Status)

	var out model.AttendanceModel
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&employeeModel.EmployeeModel{}).
			Where("employee_id = ?", req.EmployeeID).
			Count(&n).Error; err != nil {
			return fmt.Errorf("lookup employee: %w", err)
		}
		if n == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Employee not found")
		}

		row := model.AttendanceModel{
			AttendanceID:         uuid.NewString(),
			AttendanceEmployeeID: req.EmployeeID,
			AttendanceDate:       date,
			AttendanceStatus:     status,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "employee_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"status", "updated_at"}),
		}).Create(&row).Error; err != nil {
			return fmt.Errorf("upsert attendance: %w", err)
		}

		// re-read: on conflict the stored id is the first insert's, not row's
		if err := tx.Where("employee_id = ? AND date = ?", req.EmployeeID, date).
			First(&out).Error; err != nil {
			return fmt.Errorf("reload attendance: %w", err)
		}
		return nil
	})
	if err != nil {
		return model.AttendanceModel{}, err
	}
	return out, nil
}
