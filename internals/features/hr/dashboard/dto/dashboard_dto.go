package dto

type DepartmentCount struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// GET /api/dashboard
type DashboardSummary struct {
	TotalEmployees int64             `json:"total_employees"`
	PresentToday   int64             `json:"present_today"`
	AbsentToday    int64             `json:"absent_today"`
	Departments    []DepartmentCount `json:"departments"`
}
