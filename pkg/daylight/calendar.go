package daylight

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

var monthDays = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// DaysInMonth returns the length of month (1-12) in a non-leap year, or 0
// for an invalid month.
func DaysInMonth(month int) int {
	if month < 1 || month > 12 {
		return 0
	}
	return monthDays[month-1]
}

// DayOfYear returns the 0-based day of the year for month and day in a
// non-leap year. January 1st is 0 and December 31st is 364.
func DayOfYear(month, day int) (int, error) {
	if month < 1 || month > 12 {
		return 0, fmt.Errorf("%w: month must be between 1 and 12, got %d", ErrInvalidCalendarDate, month)
	}
	maxDay := monthDays[month-1]
	if day < 1 || day > maxDay {
		return 0, fmt.Errorf("%w: day must be between 1 and %d for month %d, got %d", ErrInvalidCalendarDate, maxDay, month, day)
	}

	t := day - 1
	for m := 0; m < month-1; m++ {
		t += monthDays[m]
	}
	return t, nil
}

// DayOfYearFromTime maps a calendar date onto the non-leap day count. In
// leap years February 29th folds onto February 28th and later days shift
// back by one, keeping the result in [0,365).
func DayOfYearFromTime(t time.Time) int {
	_, month, day := t.Date()
	if month == time.February && day == 29 {
		day = 28
	}
	doy, _ := DayOfYear(int(month), day)
	return doy
}

// DateOf is the inverse of DayOfYear. Days outside [0,365) wrap.
func DateOf(dayOfYear int) (month, day int) {
	d := ((dayOfYear % DaysPerYear) + DaysPerYear) % DaysPerYear
	for m, n := range monthDays {
		if d < n {
			return m + 1, d + 1
		}
		d -= n
	}
	return 12, 31
}

// FormatDay renders a day of the year as "Jan 2".
func FormatDay(dayOfYear int) string {
	m, d := DateOf(dayOfYear)
	return fmt.Sprintf("%s %d", time.Month(m).String()[:3], d)
}

// ParseMonthDay parses "MM-DD" (or "M-D") into a 0-based day of the year.
func ParseMonthDay(s string) (int, error) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: expected MM-DD, got %q", ErrInvalidCalendarDate, s)
	}
	month, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("%w: bad month in %q", ErrInvalidCalendarDate, s)
	}
	day, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("%w: bad day in %q", ErrInvalidCalendarDate, s)
	}
	return DayOfYear(month, day)
}

// KeyDate is a named day of the year used to annotate yearly series.
type KeyDate struct {
	Day   int    `json:"day"`
	Label string `json:"label"`
}

// KeyDates are the equinoxes and solstices in a non-leap year.
var KeyDates = []KeyDate{
	{79, "Mar 20-21 (Spring Equinox)"},
	{172, "Jun 21-22 (Summer Solstice)"},
	{265, "Sep 22-23 (Autumn Equinox)"},
	{355, "Dec 21-22 (Winter Solstice)"},
}
