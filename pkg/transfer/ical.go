package transfer

import (
	"fmt"
	"os"
	"path/filepath"

	ical "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	"github.com/daviddao/calcli/pkg/calendar"
)

// Event times are naive local date-times, so DTSTART/DTEND are written
// in floating local format (no zone designator).
const icalLayout = "20060102T150405"

// ICalExporter writes a calendar as an iCalendar (RFC 5545) file.
type ICalExporter struct{}

// Export writes one VEVENT per calendar event, in insertion order, and
// returns the absolute output path.
func (ICalExporter) Export(cal *calendar.Calendar, filename string) (string, error) {
	absPath, err := filepath.Abs(filename)
	if err != nil {
		return "", fmt.Errorf("resolve path %q: %w", filename, err)
	}

	ic := ical.NewCalendar()
	ic.SetMethod(ical.MethodPublish)
	for _, e := range cal.Events() {
		ve := ic.AddEvent(uuid.NewString())
		ve.SetProperty(ical.ComponentPropertySummary, e.Name)
		ve.SetProperty(ical.ComponentPropertyDtStart, e.Start.Format(icalLayout))
		ve.SetProperty(ical.ComponentPropertyDtEnd, e.End.Format(icalLayout))
		if e.Description != "" {
			ve.SetProperty(ical.ComponentPropertyDescription, e.Description)
		}
		if e.Location != "" {
			ve.SetProperty(ical.ComponentPropertyLocation, e.Location)
		}
		class := "PUBLIC"
		if !e.Public {
			class = "PRIVATE"
		}
		ve.SetProperty(ical.ComponentPropertyClass, class)
	}

	if err := os.WriteFile(filename, []byte(ic.Serialize()), 0o644); err != nil {
		return "", fmt.Errorf("write %q: %w", filename, err)
	}
	return absPath, nil
}
