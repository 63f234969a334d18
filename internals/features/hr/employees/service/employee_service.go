// internals/features/hr/employees/service/employee_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceModel "hrms_backend/internals/features/hr/attendance/model"
	"hrms_backend/internals/features/hr/employees/dto"
	"hrms_backend/internals/features/hr/employees/model"
	helper "hrms_backend/internals/helpers"
	"hrms_backend/internals/helpers/dbtime"
)

const msgEmployeeNotFound = "Employee not found"

type EmployeeService struct {
	DB  *gorm.DB
	Now dbtime.Clock
}

func NewEmployeeService(db *gorm.DB, clock dbtime.Clock) *EmployeeService {
	if clock == nil {
		clock = time.Now
	}
	return &EmployeeService{DB: db, Now: clock}
}

// List returns every employee, newest first.
func (s *EmployeeService) List(ctx context.Context) ([]model.EmployeeModel, error) {
	var rows []model.EmployeeModel
	if err := s.DB.WithContext(ctx).
		Order("created_at DESC").
		Order("employee_id ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	return rows, nil
}

func (s *EmployeeService) Get(ctx context.Context, employeeID string) (model.EmployeeModel, error) {
	var m model.EmployeeModel
	err := s.DB.WithContext(ctx).First(&m, "employee_id = ?", strings.TrimSpace(employeeID)).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return model.EmployeeModel{}, fiber.NewError(fiber.StatusNotFound, msgEmployeeNotFound)
	case err != nil:
		return model.EmployeeModel{}, fmt.Errorf("get employee: %w", err)
	}
	return m, nil
}

// Create validates req, rejects a taken employee_id or email with 409 and inserts the record.
// The checks and the insert share one transaction; the primary key and the email unique index
// catch anything that slips past the checks.
func (s *EmployeeService) Create(ctx context.Context, req dto.CreateEmployeeRequest) (model.EmployeeModel, error) {
	req.Normalize()
	if err := helper.ValidateStruct(req); err != nil {
		return model.EmployeeModel{}, err
	}

	var created model.EmployeeModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		taken, err := employeeExists(tx, "employee_id = ?", req.EmployeeID)
		if err != nil {
			return err
		}
		if taken {
			return fiber.NewError(fiber.StatusConflict, fmt.Sprintf("Employee ID '%s' already exists", req.EmployeeID))
		}

		taken, err = employeeExists(tx, "email = ?", req.Email)
		if err != nil {
			return err
		}
		if taken {
			return fiber.NewError(fiber.StatusConflict, fmt.Sprintf("Email '%s' is already registered", req.Email))
		}

		m := req.ToModel(s.Now().UTC().Truncate(time.Microsecond))
		if err := tx.Create(&m).Error; err != nil {
			if helper.IsUniqueViolation(err) {
				return fiber.NewError(fiber.StatusConflict, "Employee ID or email already exists")
			}
			return fmt.Errorf("create employee: %w", err)
		}
		created = m
		return nil
	})
	if err != nil {
		return model.EmployeeModel{}, err
	}
	return created, nil
}

// Delete removes the employee and all of its attendance rows atomically.
func (s *EmployeeService) Delete(ctx context.Context, employeeID string) error {
	employeeID = strings.TrimSpace(employeeID)

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		found, err := employeeExists(tx, "employee_id = ?", employeeID)
		if err != nil {
			return err
		}
		if !found {
			return fiber.NewError(fiber.StatusNotFound, msgEmployeeNotFound)
		}

		if err := tx.Where("employee_id = ?", employeeID).
			Delete(&attendanceModel.AttendanceModel{}).Error; err != nil {
			return fmt.Errorf("delete attendance of %s: %w", employeeID, err)
		}
		if err := tx.Where("employee_id = ?", employeeID).
			Delete(&model.EmployeeModel{}).Error; err != nil {
			return fmt.Errorf("delete employee %s: %w", employeeID, err)
		}
		return nil
	})
}

func employeeExists(tx *gorm.DB, query string, args ...any) (bool, error) {
	var n int64
	if err := tx.Model(&model.EmployeeModel{}).Where(query, args...).Count(&n).Error; err != nil {
		return false, fmt.Errorf("lookup employee: %w", err)
	}
	return n > 0, nil
}
