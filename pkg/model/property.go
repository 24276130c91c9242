package model

import "strings"

// EventProperty identifies an editable event field. Property names arrive
// as free tokens from the command line; parsing them into an enum up
// front means an unknown name fails once, consistently, instead of being
// silently ignored somewhere down the dispatch chain.
type EventProperty int

const (
	EventName EventProperty = iota
	EventDescription
	EventLocation
	EventIsPublic
)

// ParseEventProperty maps a property token to its EventProperty.
// Matching is case-insensitive; unknown names are a ValidationError.
func ParseEventProperty(s string) (EventProperty, error) {
	switch strings.ToLower(s) {
	case "name":
		return EventName, nil
	case "description":
		return EventDescription, nil
	case "location":
		return EventLocation, nil
	case "ispublic":
		return EventIsPublic, nil
	default:
		return 0, Validationf("unknown event property: %s", s)
	}
}

// Apply sets the property on e from its string form. The ispublic value
// is lenient: anything that is not "true" (case-insensitive) is false.
func (p EventProperty) Apply(e *Event, value string) {
	switch p {
	case EventName:
		e.Name = value
	case EventDescription:
		e.Description = value
	case EventLocation:
		e.Location = value
	case EventIsPublic:
		e.Public = strings.EqualFold(value, "true")
	}
}

// CalendarProperty identifies an editable calendar field.
type CalendarProperty int

const (
	CalendarName CalendarProperty = iota
	CalendarTimezone
)

// ParseCalendarProperty maps a property token to its CalendarProperty.
func ParseCalendarProperty(s string) (CalendarProperty, error) {
	switch strings.ToLower(s) {
	case "name":
		return CalendarName, nil
	case "timezone":
		return CalendarTimezone, nil
	default:
		return 0, Validationf("unknown calendar property: %s", s)
	}
}
