package model

import "time"

type EmployeeModel struct {
	EmployeeID string `gorm:"column:employee_id;type:varchar(64);primaryKey" json:"employee_id"`
	FullName   string `gorm:"column:full_name;type:varchar(255);not null" json:"full_name"`
	Email      string `gorm:"column:email;type:varchar(255);not null;uniqueIndex:uq_employees_email" json:"email"`
	Department string `gorm:"column:department;type:varchar(120);not null;index:idx_employees_department" json:"department"`

	CreatedAt time.Time `gorm:"column:created_at;not null;autoCreateTime;index:idx_employees_created_at" json:"created_at"`
}

func (EmployeeModel) TableName() string {
	return "employees"
}
