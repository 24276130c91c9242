// Package model defines the core domain types for calcli.
//
// An Event is one scheduled occurrence on a calendar: a name, a start and
// end date-time, and a few descriptive fields. Event times are naive local
// date-times. They are stored and compared as-is and never converted
// between zones; a calendar's timezone is an attribute of the calendar,
// not of the arithmetic.
//
// A Rule (recurrence.go) describes a weekly repetition pattern. Rules are
// transient: they exist only while expanding into a flat sequence of
// ordinary Events, which are what calendars actually hold.
package model

import "time"

// Event is a single scheduled occurrence. Events are mutated in place by
// the edit operations; everything else treats them as values.
type Event struct {
	Name        string
	Start       time.Time
	End         time.Time
	Description string
	Location    string
	Public      bool
}

// Conflict reports whether two events overlap. Boundaries are inclusive:
// an event ending at 10:00 conflicts with one starting at 10:00.
func Conflict(a, b *Event) bool {
	return !(b.End.Before(a.Start) || b.Start.After(a.End))
}

// IsAllDay reports whether the event follows the all-day convention:
// start at 00:00 and end at 23:59 on the same calendar date. This is a
// heuristic over the times, not a separate event kind.
func (e *Event) IsAllDay() bool {
	return e.Start.Hour() == 0 && e.Start.Minute() == 0 &&
		e.End.Hour() == 23 && e.End.Minute() == 59 &&
		SameDate(e.Start, e.End)
}

// Duration returns the span between start and end.
func (e *Event) Duration() time.Duration {
	return e.End.Sub(e.Start)
}

// SameDate reports whether two date-times fall on the same calendar date.
func SameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// AtTimeOfDay combines the calendar date of d with the time-of-day of t.
func AtTimeOfDay(d, t time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), t.Hour(), t.Minute(), 0, 0, d.Location())
}

// StartOfDay returns 00:00 on the calendar date of d.
func StartOfDay(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
}

// EndOfDay returns 23:59 on the calendar date of d, the all-day end time.
func EndOfDay(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 23, 59, 0, 0, d.Location())
}
