// Package expiry computes warranty expiry dates and matches them against
// calendar days and inclusive windows.
//
// All values are calendar dates represented as midnight UTC. Month addition
// clamps to the last day of the target month, so 2024-01-31 plus one month is
// 2024-02-29. PostgreSQL's date + interval arithmetic follows the same rule,
// which keeps in-process checks and store queries in agreement.
package expiry

import "time"

// Date returns the calendar day of t as observed in loc.
func Date(t time.Time, loc *time.Location) time.Time {
	if loc != nil {
		t = t.In(loc)
	}
	y, m, d := t.Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// AddDays shifts a calendar date by n days.
func AddDays(day time.Time, n int) time.Time {
	y, m, d := day.Date()

	return time.Date(y, m, d+n, 0, 0, 0, 0, time.UTC)
}

// ExpiryDate adds lengthMonths calendar months to the purchase date.
// A zero length returns the purchase date itself.
func ExpiryDate(purchaseDate time.Time, lengthMonths int) time.Time {
	y, m, d := purchaseDate.Date()

	// Day 1 of the target month never overflows; clamp d afterwards.
	first := time.Date(y, m+time.Month(lengthMonths), 1, 0, 0, 0, 0, time.UTC)
	if last := daysIn(first.Year(), first.Month()); d > last {
		d = last
	}

	return time.Date(first.Year(), first.Month(), d, 0, 0, 0, 0, time.UTC)
}

// IsExpiringOn reports whether the warranty expires on the given day.
func IsExpiringOn(purchaseDate time.Time, lengthMonths int, day time.Time) bool {
	return sameDay(ExpiryDate(purchaseDate, lengthMonths), day)
}

// IsExpiringWithin reports whether the expiry falls in [from, to], both ends
// inclusive at day granularity.
func IsExpiringWithin(purchaseDate time.Time, lengthMonths int, from, to time.Time) bool {
	exp := ExpiryDate(purchaseDate, lengthMonths)

	return !exp.Before(truncate(from)) && !exp.After(truncate(to))
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func truncate(t time.Time) time.Time {
	y, m, d := t.Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sameDay(a, b time.Time) bool {
	return truncate(a).Equal(truncate(b))
}
