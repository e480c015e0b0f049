package utils

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/qualitania/availability-service/internal/core/calendar"
)

// ToString converts a domain's primitive string to a pgtype.Text.
// An empty string is considered invalid (NULL).
func ToString(s string) pgtype.Text {
	return pgtype.Text{
		String: s,
		Valid:  s != "",
	}
}

// FromString converts a pgtype.Text to a domain's primitive string.
// A NULL value is converted to an empty string ("").
func FromString(t pgtype.Text) string {
	if !t.Valid {
		return ""
	}
	return t.String
}

// ToDate converts a calendar day to a pgtype.Date.
func ToDate(d calendar.Date) pgtype.Date {
	return pgtype.Date{
		Time:  d.Time(),
		Valid: true,
	}
}

// ToNullDate converts an optional calendar day to a pgtype.Date.
func ToNullDate(d *calendar.Date) pgtype.Date {
	if d == nil {
		return pgtype.Date{Valid: false}
	}
	return ToDate(*d)
}

// FromDate converts a pgtype.Date to a calendar day. The stored value
// is a plain date, so no timezone normalization is involved.
func FromDate(d pgtype.Date) calendar.Date {
	return calendar.DateOf(d.Time)
}

// FromNullDate converts a pgtype.Date to an optional calendar day.
func FromNullDate(d pgtype.Date) *calendar.Date {
	if !d.Valid {
		return nil
	}
	value := FromDate(d)
	return &value
}

// FromNullFloat converts a pgtype.Float8 to an optional float64.
func FromNullFloat(f pgtype.Float8) *float64 {
	if !f.Valid {
		return nil
	}
	value := f.Float64
	return &value
}

// FromTimestamp converts a pgtype.Timestamptz to a time.Time.
func FromTimestamp(ts pgtype.Timestamptz) time.Time {
	return ts.Time
}
