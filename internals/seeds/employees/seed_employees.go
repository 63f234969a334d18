package employees

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/bytedance/sonic"
	"gorm.io/gorm"

	"hrms_backend/internals/features/hr/employees/dto"
	"hrms_backend/internals/features/hr/employees/model"
	"hrms_backend/internals/features/hr/employees/service"
	helper "hrms_backend/internals/helpers"
	"hrms_backend/internals/helpers/dbtime"
)

type Result struct {
	Inserted int
	Skipped  int
}

// SeedEmployeesFromJSON inserts the employees listed in filePath (an array of create payloads).
// Ids already stored are skipped; rows failing validation or hitting a conflict are logged and skipped.
func SeedEmployeesFromJSON(ctx context.Context, db *gorm.DB, clock dbtime.Clock, filePath string) (Result, error) {
	log.Println("[INFO] Reading employee seed file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		return Result{}, fmt.Errorf("read seed file: %w", err)
	}

	var seeds []dto.CreateEmployeeRequest
	if err := sonic.Unmarshal(file, &seeds); err != nil {
		return Result{}, fmt.Errorf("decode seed file: %w", err)
	}

	var existingIDs []string
	if err := db.WithContext(ctx).Model(&model.EmployeeModel{}).
		Pluck("employee_id", &existingIDs).Error; err != nil {
		return Result{}, fmt.Errorf("load existing ids: %w", err)
	}
	existing := make(map[string]bool, len(existingIDs))
	for _, id := range existingIDs {
		existing[id] = true
	}

	svc := service.NewEmployeeService(db, clock)
	var res Result
	for _, s := range seeds {
		s.Normalize()
		if existing[s.EmployeeID] {
			log.Printf("[INFO] Employee '%s' already exists, skipped", s.EmployeeID)
			res.Skipped++
			continue
		}

		if _, err := svc.Create(ctx, s); err != nil {
			if helper.StatusOf(err) >= 500 {
				return res, err
			}
			log.Printf("[WARN] Employee '%s' skipped: %v", s.EmployeeID, err)
			res.Skipped++
			continue
		}
		existing[s.EmployeeID] = true
		res.Inserted++
	}

	log.Printf("[INFO] Employee seed done: %d inserted, %d skipped", res.Inserted, res.Skipped)
	return res, nil
}
