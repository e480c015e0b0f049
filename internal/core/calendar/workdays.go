package calendar

import "time"

// IsWorkingDay reports whether the date is a working day: not a
// Saturday, not a Sunday and not an observed public holiday. Pure with
// respect to the (year, month, day) triple.
func (c *Calendar) IsWorkingDay(d Date) bool {
	weekday := d.Weekday()
	if weekday == time.Saturday || weekday == time.Sunday {
		return false
	}
	_, holiday := c.IsHoliday(d)
	return !holiday
}

// WorkingDaysBetween counts working days in the closed interval
// [start, end]. A start after end is an empty range, not an error.
func (c *Calendar) WorkingDaysBetween(start, end Date) int {
	count := 0
	for d := start; !d.After(end); d = d.AddDays(1) {
		if c.IsWorkingDay(d) {
			count++
		}
	}
	return count
}

// WorkingDatesBetween collects the working days in [start, end] in
// ascending order.
func (c *Calendar) WorkingDatesBetween(start, end Date) []Date {
	var dates []Date
	for d := start; !d.After(end); d = d.AddDays(1) {
		if c.IsWorkingDay(d) {
			dates = append(dates, d)
		}
	}
	return dates
}
