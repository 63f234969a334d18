package database

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"hrms_backend/internals/configs"
	attendanceModel "hrms_backend/internals/features/hr/attendance/model"
	employeeModel "hrms_backend/internals/features/hr/employees/model"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// ResolveDSN picks the gorm driver for a DATABASE_URL and normalises the DSN for it.
//
//	postgres://… | postgresql://… | "host=… user=…"  → postgres
//	sqlite:///relative.db | sqlite:////abs.db       → sqlite file
//	anything else                                   → sqlite path as-is
func ResolveDSN(raw string) (driver, dsn string, err error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", "", errors.New("empty DATABASE_URL")
	}

	lower := strings.ToLower(raw)
	switch {
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"):
		return DriverPostgres, raw, nil
	case strings.Contains(lower, "host=") && strings.Contains(lower, "dbname="):
		return DriverPostgres, raw, nil
	case strings.HasPrefix(lower, "sqlite://"):
		path := strings.TrimPrefix(raw[len("sqlite://"):], "/")
		if path == "" {
			return "", "", fmt.Errorf("sqlite url %q has no path", raw)
		}
		return DriverSQLite, path, nil
	default:
		return DriverSQLite, raw, nil
	}
}

// Open connects to the store behind cfg.DatabaseURL and tunes its pool.
func Open(cfg *configs.Config) (*gorm.DB, error) {
	driver, dsn, err := ResolveDSN(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	var dialector gorm.Dialector
	switch driver {
	case DriverPostgres:
		dialector = postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true, // PgBouncer (transaction pooling)
		})
	default:
		if !strings.Contains(dsn, "?") {
			dsn += "?_busy_timeout=5000"
		}
		dialector = sqlite.Open(dsn)
	}

	log.Printf("[INFO] connecting to %s database...", driver)
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         configs.NewGormLogger(cfg.Pool),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", driver, err)
	}

	if err := TunePool(db, driver, cfg.Pool); err != nil {
		return nil, err
	}
	log.Println("[INFO] DB connected.")
	return db, nil
}

func TunePool(db *gorm.DB, driver string, p configs.PoolConfig) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("pool tune: %w", err)
	}
	if driver == DriverSQLite {
		// one long-lived connection: sqlite has a single writer and :memory: dies with its connection
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetConnMaxIdleTime(0)
		sqlDB.SetConnMaxLifetime(0)
		return nil
	}
	sqlDB.SetMaxOpenConns(p.MaxOpenConns)
	sqlDB.SetMaxIdleConns(p.MaxIdleConns)
	sqlDB.SetConnMaxIdleTime(p.ConnMaxIdleTime)
	sqlDB.SetConnMaxLifetime(p.ConnMaxLifetime)
	return nil
}

// AutoMigrate creates the employees and attendance tables with their indexes when absent.
func AutoMigrate(db *gorm.DB) error {
	log.Println("[INFO] running schema bootstrap...")
	if err := db.AutoMigrate(
		&employeeModel.EmployeeModel{},
		&attendanceModel.AttendanceModel{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	log.Println("[INFO] schema ready")
	return nil
}

func Ping(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
