// Package calendar holds the event collections: Calendar owns the events
// of one named, zoned calendar; Registry keys calendars by unique name.
//
// Lookups are linear scans over the insertion-ordered event slice. The
// collection is small and unindexed on purpose: insertion order is kept
// only so exports iterate deterministically.
package calendar

import (
	"time"

	"github.com/daviddao/calcli/pkg/model"
)

// Calendar is a named, zoned collection of events.
type Calendar struct {
	name   string
	tz     *time.Location
	events []*model.Event
}

// New constructs a calendar with the given name and timezone.
func New(name string, tz *time.Location) *Calendar {
	return &Calendar{name: name, tz: tz}
}

// Name returns the calendar name.
func (c *Calendar) Name() string { return c.name }

// Timezone returns the calendar's timezone.
func (c *Calendar) Timezone() *time.Location { return c.tz }

// SetTimezone replaces the calendar's timezone from an IANA identifier.
// An unrecognized identifier is a ValidationError.
func (c *Calendar) SetTimezone(id string) error {
	loc, err := time.LoadLocation(id)
	if err != nil {
		return model.Validationf("unknown timezone: %s", id)
	}
	c.tz = loc
	return nil
}

// EditProperty edits a calendar property. Renames done here do not touch
// any Registry key; Registry.Edit is the re-keying entry point.
func (c *Calendar) EditProperty(p model.CalendarProperty, value string) error {
	switch p {
	case model.CalendarName:
		c.name = value
		return nil
	case model.CalendarTimezone:
		return c.SetTimezone(value)
	default:
		return model.Validationf("unknown calendar property")
	}
}

// Add appends an event to the calendar. With autoDecline set, the whole
// insertion is rejected with a ConflictError if the event overlaps any
// existing one (boundaries inclusive); without it, overlaps are allowed.
func (c *Calendar) Add(e *model.Event, autoDecline bool) error {
	if autoDecline {
		for _, existing := range c.events {
			if model.Conflict(existing, e) {
				return &model.ConflictError{Name: e.Name}
			}
		}
	}
	c.events = append(c.events, e)
	return nil
}

// Events returns the calendar's events in insertion order.
func (c *Calendar) Events() []*model.Event { return c.events }

// EventsOn returns the events whose start falls on the given date.
func (c *Calendar) EventsOn(date time.Time) []*model.Event {
	var result []*model.Event
	for _, e := range c.events {
		if model.SameDate(e.Start, date) {
			result = append(result, e)
		}
	}
	return result
}

// EventsBetween returns the events overlapping [start, end], boundaries
// inclusive, matching the shape of the conflict predicate.
func (c *Calendar) EventsBetween(start, end time.Time) []*model.Event {
	var result []*model.Event
	for _, e := range c.events {
		if !e.Start.After(end) && !e.End.Before(start) {
			result = append(result, e)
		}
	}
	return result
}

// IsBusy reports whether some event covers the instant, both ends
// inclusive.
func (c *Calendar) IsBusy(t time.Time) bool {
	for _, e := range c.events {
		if !t.Before(e.Start) && !t.After(e.End) {
			return true
		}
	}
	return false
}

// EditSingle mutates the first event matching the exact (name, start,
// end) triple and reports whether one was found.
func (c *Calendar) EditSingle(p model.EventProperty, name string, start, end time.Time, value string) bool {
	for _, e := range c.events {
		if e.Name == name && e.Start.Equal(start) && e.End.Equal(end) {
			p.Apply(e, value)
			return true
		}
	}
	return false
}

// EditFrom mutates every event with the given name whose start is at or
// after the threshold. Returns the number mutated.
func (c *Calendar) EditFrom(p model.EventProperty, name string, start time.Time, value string) int {
	count := 0
	for _, e := range c.events {
		if e.Name == name && !e.Start.Before(start) {
			p.Apply(e, value)
			count++
		}
	}
	return count
}

// EditAll mutates every event with the given name, regardless of time.
// Returns the number mutated.
func (c *Calendar) EditAll(p model.EventProperty, name string, value string) int {
	count := 0
	for _, e := range c.events {
		if e.Name == name {
			p.Apply(e, value)
			count++
		}
	}
	return count
}

// FindByNameAndStart returns the first event matching name and start, or
// nil when there is none.
func (c *Calendar) FindByNameAndStart(name string, start time.Time) *model.Event {
	for _, e := range c.events {
		if e.Name == name && e.Start.Equal(start) {
			return e
		}
	}
	return nil
}
