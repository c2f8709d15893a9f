// Package finance contains the revenue/expense aggregation use cases.
package finance

import (
	"time"
)

// MonthStart returns the first day of the month containing the given date,
// at UTC midnight.
func MonthStart(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// MonthEnd returns the last day of the month containing the given date.
func MonthEnd(date time.Time) time.Time {
	return MonthStart(date).AddDate(0, 1, -1)
}

// MonthBounds returns the first and last day of the month containing the
// given date.
func MonthBounds(date time.Time) (start, end time.Time) {
	start = MonthStart(date)
	return start, start.AddDate(0, 1, -1)
}

// SameMonth reports whether two dates fall in the same calendar month.
// Targets are a single-month concept, so multi-month queries never surface
// them.
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// MonthsBetween returns the first-of-month dates of every calendar month from
// the month containing `from` through the month containing `through`,
// inclusive. An empty slice is returned when `through` precedes `from`.
func MonthsBetween(from, through time.Time) []time.Time {
	var months []time.Time
	current := MonthStart(from)
	last := MonthStart(through)
	for !current.After(last) {
		months = append(months, current)
		current = current.AddDate(0, 1, 0)
	}
	return months
}

// YearBounds returns January 1 and December 31 of the given year.
func YearBounds(year int) (start, end time.Time) {
	start = time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end = time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	return start, end
}
