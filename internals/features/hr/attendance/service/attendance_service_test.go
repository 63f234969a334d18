package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"hrms_backend/internals/databases/databasetest"
	"hrms_backend/internals/features/hr/attendance/dto"
	"hrms_backend/internals/features/hr/attendance/model"
	employeeModel "hrms_backend/internals/features/hr/employees/model"
	helper "hrms_backend/internals/helpers"
	"hrms_backend/internals/helpers/dbtime"
)

func setup(t *testing.T, employeeIDs ...string) (*AttendanceService, *gorm.DB) {
	t.Helper()
	db := databasetest.Open(t)
	for i, id := range employeeIDs {
		require.NoError(t, db.Create(&employeeModel.EmployeeModel{
			EmployeeID: id,
			FullName:   "Employee " + id,
			Email:      id + "@corp.io",
			Department: "Ops",
			CreatedAt:  time.Date(2024, 1, 1, 0, 0, i, 0, time.UTC),
		}).Error)
	}
	return NewAttendanceService(db), db
}

func mark(id, date, status string) dto.MarkAttendanceRequest {
	return dto.MarkAttendanceRequest{EmployeeID: id, Date: date, Status: status}
}

func countPair(t *testing.T, db *gorm.DB, id, date string) int64 {
	t.Helper()
	d, err := dbtime.ParseDate(date)
	require.NoError(t, err)
	var n int64
	require.NoError(t, db.Model(&model.AttendanceModel{}).
		Where("employee_id = ? AND date = ?", id, d).Count(&n).Error)
	return n
}

func TestMarkInsertsThenUpdatesInPlace(t *testing.T) {
	svc, db := setup(t, "E1")
	ctx := context.Background()

	first, err := svc.Mark(ctx, mark("E1", "2024-01-01", "Present"))
	require.NoError(t, err)
	assert.NotEmpty(t, first.AttendanceID)
	assert.Equal(t, model.AttendancePresent, first.AttendanceStatus)
	assert.Equal(t, "2024-01-01", dbtime.FormatDate(first.AttendanceDate))

	second, err := svc.Mark(ctx, mark("E1", "2024-01-01", "Absent"))
	require.NoError(t, err)
	assert.Equal(t, first.AttendanceID, second.AttendanceID)
	assert.Equal(t, model.AttendanceAbsent, second.AttendanceStatus)

	assert.EqualValues(t, 1, countPair(t, db, "E1", "2024-01-01"))

	rows, err := svc.List(ctx, dto.Filter{})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, model.AttendanceAbsent, rows[0].AttendanceStatus)
	assert.Equal(t, first.AttendanceID, rows[0].AttendanceID)
}

func TestMarkDifferentDatesCreateRows(t *testing.T) {
	svc, _ := setup(t, "E1")
	ctx := context.Background()

	a, err := svc.Mark(ctx, mark("E1", "2024-01-01", "Present"))
	require.NoError(t, err)
	b, err := svc.Mark(ctx, mark("E1", "2024-01-02", "Present"))
	require.NoError(t, err)
	assert.NotEqual(t, a.AttendanceID, b.AttendanceID)
}

func TestMarkUnknownEmployee(t *testing.T) {
	svc, db := setup(t)

	_, err := svc.Mark(context.Background(), mark("ghost", "2024-01-01", "Present"))
	var fe *fiber.Error
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, fiber.StatusNotFound, fe.Code)
	assert.Equal(t, "Employee not found", fe.Message)

	var n int64
	require.NoError(t, db.Model(&model.AttendanceModel{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestMarkValidation(t *testing.T) {
	svc, db := setup(t, "E1")

	cases := map[string]dto.MarkAttendanceRequest{
		"blank employee": mark("  ", "2024-01-01", "Present"),
		"missing date":   mark("E1", "", "Present"),
		"bad date":       mark("E1", "2024-02-30", "Present"),
		"wrong layout":   mark("E1", "01/02/2024", "Present"),
		"bad status":     mark("E1", "2024-01-01", "Late"),
		"lower status":   mark("E1", "2024-01-01", "present"),
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Mark(context.Background(), c)
			var ve *helper.ValidationError
			assert.True(t, errors.As(err, &ve), "got %v", err)
		})
	}

	var n int64
	require.NoError(t, db.Model(&model.AttendanceModel{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestListFiltersAndOrder(t *testing.T) {
	svc, _ := setup(t, "E1", "E2")
	ctx := context.Background()

	for _, m := range []dto.MarkAttendanceRequest{
		mark("E1", "2024-01-01", "Present"),
		mark("E1", "2024-01-03", "Absent"),
		mark("E2", "2024-01-02", "Present"),
		mark("E2", "2024-01-03", "Present"),
	} {
		_, err := svc.Mark(ctx, m)
		require.NoError(t, err)
	}

	all, err := svc.List(ctx, dto.Filter{})
	require.NoError(t, err)
	require.Len(t, all, 4)
	dates := make([]string, 0, len(all))
	for _, r := range all {
		dates = append(dates, dbtime.FormatDate(r.AttendanceDate))
	}
	assert.Equal(t, []string{"2024-01-03", "2024-01-03", "2024-01-02", "2024-01-01"}, dates)

	f, err := ParseFilter(dto.ListAttendanceQuery{EmployeeID: "E1"})
	require.NoError(t, err)
	byEmp, err := svc.List(ctx, f)
	require.NoError(t, err)
	require.Len(t, byEmp, 2)
	assert.Equal(t, "2024-01-03", dbtime.FormatDate(byEmp[0].AttendanceDate))

	f, err = ParseFilter(dto.ListAttendanceQuery{DateFilter: "2024-01-03"})
	require.NoError(t, err)
	byDate, err := svc.List(ctx, f)
	require.NoError(t, err)
	assert.Len(t, byDate, 2)

	f, err = ParseFilter(dto.ListAttendanceQuery{EmployeeID: "E2", DateFilter: "2024-01-02"})
	require.NoError(t, err)
	both, err := svc.List(ctx, f)
	require.NoError(t, err)
	require.Len(t, both, 1)
	assert.Equal(t, model.AttendancePresent, both[0].AttendanceStatus)

	f, err = ParseFilter(dto.ListAttendanceQuery{EmployeeID: "E9"})
	require.NoError(t, err)
	none, err := svc.List(ctx, f)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestParseFilter(t *testing.T) {
	f, err := ParseFilter(dto.ListAttendanceQuery{EmployeeID: "  ", DateFilter: ""})
	require.NoError(t, err)
	assert.Nil(t, f.EmployeeID)
	assert.Nil(t, f.Date)

	_, err = ParseFilter(dto.ListAttendanceQuery{DateFilter: "not-a-date"})
	var ve *helper.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Contains(t, ve.Fields, "date_filter")
}
