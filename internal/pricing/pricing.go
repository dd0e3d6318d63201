// Package pricing computes rental durations and costs. All money values are
// whole MNT integers; nothing here touches floating point.
package pricing

import "time"

const hoursPerDay = 24

// RentalDays returns the inclusive day count of a rental: both the start and
// the end date are charged, so a same-day rental is 1 day. The result is
// floored at 1; callers must reject end < start before calling.
func RentalDays(start, end time.Time) int32 {
	days := int32(end.Sub(start).Hours()/hoursPerDay) + 1
	if days < 1 {
		return 1
	}
	return days
}

// RentalCost returns days * dailyPrice * qty. The inputs must be positive;
// negative values are a caller bug, not a runtime condition.
func RentalCost(days int32, dailyPrice int64, qty int32) int64 {
	return int64(days) * dailyPrice * int64(qty)
}
