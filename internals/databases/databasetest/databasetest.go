// Package databasetest opens throwaway in-memory stores for package tests.
package databasetest

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"gorm.io/gorm"

	"hrms_backend/internals/configs"
	database "hrms_backend/internals/databases"
)

var seq atomic.Int64

// Open returns a migrated, empty sqlite database private to t.
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	url := fmt.Sprintf("file:hrms_test_%d?mode=memory&cache=shared", seq.Add(1))

	db, err := database.Open(&configs.Config{
		DatabaseURL: url,
		Pool:        configs.PoolConfig{LogLevel: "silent", SlowThreshold: time.Second},
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = database.Close(db) })

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

// FixedClock returns a clock that reports t and then advances one second per call.
func FixedClock(t time.Time) func() time.Time {
	var n atomic.Int64
	return func() time.Time {
		return t.Add(time.Duration(n.Add(1)-1) * time.Second)
	}
}
