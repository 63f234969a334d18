package seeds

import (
	"context"

	"gorm.io/gorm"

	"hrms_backend/internals/helpers/dbtime"
	employees "hrms_backend/internals/seeds/employees"
)

const DefaultEmployeesFile = "internals/seeds/employees/data_employees.json"

// RunAllSeeds loads the demo employees from file (DefaultEmployeesFile when empty).
func RunAllSeeds(ctx context.Context, db *gorm.DB, clock dbtime.Clock, file string) error {
	if file == "" {
		file = DefaultEmployeesFile
	}
	_, err := employees.SeedEmployeesFromJSON(ctx, db, clock, file)
	return err
}
