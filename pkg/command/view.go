package command

import (
	"fmt"
	"strings"

	"github.com/daviddao/calcli/pkg/model"
)

const clockLayout = "15:04"

// formatEventsOn renders the events of one date for display. All-day
// events are labeled instead of showing the 00:00/23:59 pair.
func formatEventsOn(date string, events []*model.Event) string {
	if len(events) == 0 {
		return "No events on " + date
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Events on %s:\n", date)
	for _, e := range events {
		if e.IsAllDay() {
			fmt.Fprintf(&sb, " - %s All Day Event", e.Name)
		} else {
			fmt.Fprintf(&sb, " - %s (%s to %s)", e.Name,
				e.Start.Format(clockLayout), e.End.Format(clockLayout))
		}
		if e.Location != "" {
			fmt.Fprintf(&sb, " at %s", e.Location)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// formatEventsBetween renders the events of a date-time range.
func formatEventsBetween(start, end string, events []*model.Event) string {
	if len(events) == 0 {
		return fmt.Sprintf("No events between %s and %s", start, end)
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Events from %s to %s:\n", start, end)
	for _, e := range events {
		fmt.Fprintf(&sb, " - %s (%s to %s)", e.Name,
			e.Start.Format(clockLayout), e.End.Format(clockLayout))
		if e.Location != "" {
			fmt.Fprintf(&sb, " at %s", e.Location)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// formatBusyStatus renders the show-status result.
func formatBusyStatus(dateTime string, busy bool) string {
	status := "Available"
	if busy {
		status = "Busy"
	}
	return fmt.Sprintf("Status at %s: %s", dateTime, status)
}
