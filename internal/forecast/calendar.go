package forecast

import "time"

// NextBusinessDay returns the first weekday strictly after t. Exchange
// holidays are not modelled; the data source already leaves gaps for them.
func NextBusinessDay(t time.Time) time.Time {
	next := t.AddDate(0, 0, 1)
	for next.Weekday() == time.Saturday || next.Weekday() == time.Sunday {
		next = next.AddDate(0, 0, 1)
	}
	return next
}
