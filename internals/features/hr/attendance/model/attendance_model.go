package model

import (
	"database/sql/driver"
	"fmt"
	"time"

	"gorm.io/datatypes"
)

type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "Present"
	AttendanceAbsent  AttendanceStatus = "Absent"
)

func (s AttendanceStatus) Valid() bool {
	return s == AttendancePresent || s == AttendanceAbsent
}

func (s AttendanceStatus) Value() (driver.Value, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid attendance status %q", string(s))
	}
	return string(s), nil
}

func (s *AttendanceStatus) Scan(v any) error {
	var raw string
	switch x := v.(type) {
	case string:
		raw = x
	case []byte:
		raw = string(x)
	default:
		return fmt.Errorf("attendance status: unsupported Scan type %T", v)
	}
	st := AttendanceStatus(raw)
	if !st.Valid() {
		return fmt.Errorf("invalid attendance status %q", raw)
	}
	*s = st
	return nil
}

type AttendanceModel struct {
	AttendanceID string `gorm:"column:id;type:varchar(36);primaryKey" json:"id"`

	// one row per (employee, date)
	AttendanceEmployeeID string           `gorm:"column:employee_id;type:varchar(64);not null;uniqueIndex:uq_attendance_employee_date,priority:1;index:idx_attendance_employee" json:"employee_id"`
	AttendanceDate       datatypes.Date   `gorm:"column:date;not null;uniqueIndex:uq_attendance_employee_date,priority:2;index:idx_attendance_date" json:"date"`
	AttendanceStatus     AttendanceStatus `gorm:"column:status;type:varchar(16);not null" json:"status"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}

func (AttendanceModel) TableName() string {
	return "attendance"
}
