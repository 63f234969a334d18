// internals/features/hr/dashboard/service/dashboard_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	attendanceModel "hrms_backend/internals/features/hr/attendance/model"
	"hrms_backend/internals/features/hr/dashboard/dto"
	employeeModel "hrms_backend/internals/features/hr/employees/model"
	"hrms_backend/internals/helpers/dbtime"
)

type DashboardService struct {
	DB  *gorm.DB
	Now dbtime.Clock
}

func NewDashboardService(db *gorm.DB, clock dbtime.Clock) *DashboardService {
	if clock == nil {
		clock = time.Now
	}
	return &DashboardService{DB: db, Now: clock}
}

type statusCount struct {
	Status attendanceModel.AttendanceStatus
	N      int64
}

// Summary is computed from scratch on every call. All reads share one transaction so the
// totals describe a single snapshot.
func (s *DashboardService) Summary(ctx context.Context) (dto.DashboardSummary, error) {
	today := dbtime.Today(s.Now)
	out := dto.DashboardSummary{Departments: []dto.DepartmentCount{}}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&employeeModel.EmployeeModel{}).Count(&out.TotalEmployees).Error; err != nil {
			return fmt.Errorf("count employees: %w", err)
		}

		var byStatus []statusCount
		if err := tx.Model(&attendanceModel.AttendanceModel{}).
			Select("status, COUNT(*) AS n").
			Where("date = ?", today).
			Group("status").
			Scan(&byStatus).Error; err != nil {
			return fmt.Errorf("count attendance today: %w", err)
		}
		for _, sc := range byStatus {
			switch sc.Status {
			case attendanceModel.AttendancePresent:
				out.PresentToday = sc.N
			case attendanceModel.AttendanceAbsent:
				out.AbsentToday = sc.N
			}
		}

		if err := tx.Model(&employeeModel.EmployeeModel{}).
			Select("department AS name, COUNT(*) AS count").
			Group("department").
			Order("department ASC").
			Scan(&out.Departments).Error; err != nil {
			return fmt.Errorf("count departments: %w", err)
		}
		return nil
	})
	if err != nil {
		return dto.DashboardSummary{}, err
	}
	if out.Departments == nil {
		out.Departments = []dto.DepartmentCount{}
	}
	return out, nil
}
