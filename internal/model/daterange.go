package model

import "time"

// DateRange is an inclusive range of calendar dates.
// A zero Start or End leaves that side unbounded.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether the calendar date of t lies within the range.
func (r DateRange) Contains(t time.Time) bool {
	d := Day(t)
	if !r.Start.IsZero() && d.Before(Day(r.Start)) {
		return false
	}
	if !r.End.IsZero() && d.After(Day(r.End)) {
		return false
	}
	return true
}

// IsZero reports whether neither bound is set.
func (r DateRange) IsZero() bool {
	return r.Start.IsZero() && r.End.IsZero()
}

// Empty reports whether no date can satisfy the range.
func (r DateRange) Empty() bool {
	return !r.Start.IsZero() && !r.End.IsZero() && Day(r.Start).After(Day(r.End))
}
