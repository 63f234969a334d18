// file: internals/helpers/dbtime/time_helper.go
package dbtime

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/datatypes"
)

const DateLayout = "2006-01-02"

// Clock returns "now". Services take one so tests can pin the calendar day.
type Clock func() time.Time

// SystemClock reads the wall clock in loc (nil → time.Local).
func SystemClock(loc *time.Location) Clock {
	if loc == nil {
		loc = time.Local
	}
	return func() time.Time { return time.Now().In(loc) }
}

// DateOf drops the time part of t, keeping t's calendar day, and stores it as UTC midnight.
// Every date written or compared goes through here so the stored representation is uniform.
func DateOf(t time.Time) datatypes.Date {
	y, m, d := t.Date()
	return datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

// Today is the calendar day of clock().
func Today(clock Clock) datatypes.Date {
	return DateOf(clock())
}

// ParseDate accepts "YYYY-MM-DD" only.
func ParseDate(s string) (datatypes.Date, error) {
	s = strings.TrimSpace(s)
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return datatypes.Date{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return DateOf(t), nil
}

func FormatDate(d datatypes.Date) string {
	return time.Time(d).Format(DateLayout)
}
