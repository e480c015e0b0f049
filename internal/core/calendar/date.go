package calendar

import (
	"fmt"
	"time"

	apperrors "github.com/qualitania/availability-service/internal/core/errors"
)

// Date is a calendar day with no time-of-day component. All calendar
// arithmetic in the engine operates on this triple, never on a timestamp,
// so a value can never shift across a day boundary through time zone
// conversion.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate builds a Date from its components without validation.
// Use ParseDate for untrusted input.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// DateOf extracts the calendar day a time.Time falls on in its own
// location. This is the only sanctioned conversion from timestamps into
// the engine.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// dateLayouts are the accepted textual forms, tried in order. For forms
// that carry a time component, only the literal date part is kept: the
// string "2025-08-14T00:00:00-05:00" names the day 2025-08-14 no matter
// which zone produced it.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ParseDate is the normalization boundary for date input. Anything that
// does not name a valid calendar day fails with ErrInvalidDateRange.
func ParseDate(s string) (Date, error) {
	if s == "" {
		return Date{}, fmt.Errorf("%w: empty date", apperrors.ErrInvalidDateRange)
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return DateOf(t), nil
		}
	}
	return Date{}, fmt.Errorf("%w: %q", apperrors.ErrInvalidDateRange, s)
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// Time returns the day at UTC midnight. Used only at the edges (JSON,
// SQL) where a time.Time is unavoidable.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// Weekday returns the day of week. The UTC anchor is irrelevant here:
// the triple identifies the day, the weekday follows from it alone.
func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// AddDays returns the date n calendar days later (earlier for negative
// n), normalized across month and year boundaries.
func (d Date) AddDays(n int) Date {
	return DateOf(d.Time().AddDate(0, 0, n))
}

// Compare orders two dates: -1 if d is earlier than other, 0 if equal,
// +1 if later.
func (d Date) Compare(other Date) int {
	switch {
	case d.Year != other.Year:
		return cmpInt(d.Year, other.Year)
	case d.Month != other.Month:
		return cmpInt(int(d.Month), int(other.Month))
	default:
		return cmpInt(d.Day, other.Day)
	}
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Before reports whether d is earlier than other.
func (d Date) Before(other Date) bool { return d.Compare(other) < 0 }

// After reports whether d is later than other.
func (d Date) After(other Date) bool { return d.Compare(other) > 0 }

// Equal reports whether both values name the same calendar day.
func (d Date) Equal(other Date) bool { return d.Compare(other) == 0 }

// SameMonth reports whether both dates fall in the same (year, month).
func (d Date) SameMonth(other Date) bool {
	return d.Year == other.Year && d.Month == other.Month
}

// String formats the date as ISO 8601 (YYYY-MM-DD).
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// MarshalJSON encodes the date as an ISO 8601 string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON decodes an ISO 8601 date string, accepting the same
// forms as ParseDate.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("%w: %s", apperrors.ErrInvalidDateRange, s)
	}
	parsed, err := ParseDate(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
