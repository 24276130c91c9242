// Package transfer holds the file-boundary collaborators: CSV export
// and import in the Google Calendar CSV shape, and iCalendar export.
// The core treats these as synchronous calls returning a path or a
// count; nothing here feeds back into domain state except import's
// plain (non-conflict-checked) event insertions.
package transfer

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/daviddao/calcli/pkg/calendar"
	"github.com/daviddao/calcli/pkg/model"
)

// The Google Calendar CSV row: 9 quoted, comma-separated fields.
const csvHeader = `"Subject","Start Date","Start Time","End Date","End Time","All Day Event","Description","Location","Private"`

const (
	csvDateLayout = "01/02/2006"
	csvTimeLayout = "15:04"
)

// CSVExporter writes a calendar as Google Calendar CSV.
type CSVExporter struct{}

// Export writes every event of the calendar, in insertion order, and
// returns the absolute output path. All-day rows (per the 00:00/23:59
// heuristic) carry empty time fields.
func (CSVExporter) Export(cal *calendar.Calendar, filename string) (string, error) {
	absPath, err := filepath.Abs(filename)
	if err != nil {
		return "", fmt.Errorf("resolve path %q: %w", filename, err)
	}
	f, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("create %q: %w", filename, err)
	}
	defer f.Close()

	if _, err := fmt.Fprintln(f, csvHeader); err != nil {
		return "", fmt.Errorf("write header: %w", err)
	}
	for _, e := range cal.Events() {
		startTime := e.Start.Format(csvTimeLayout)
		endTime := e.End.Format(csvTimeLayout)
		allDay := "False"
		if e.IsAllDay() {
			allDay = "True"
			startTime = ""
			endTime = ""
		}
		isPrivate := "False"
		if !e.Public {
			isPrivate = "True"
		}
		_, err := fmt.Fprintf(f, "\"%s\",\"%s\",\"%s\",\"%s\",\"%s\",\"%s\",\"%s\",\"%s\",\"%s\"\n",
			e.Name,
			e.Start.Format(csvDateLayout), startTime,
			e.End.Format(csvDateLayout), endTime,
			allDay, e.Description, e.Location, isPrivate)
		if err != nil {
			return "", fmt.Errorf("write row: %w", err)
		}
	}
	return absPath, nil
}

// CSVImporter reads Google Calendar CSV rows into a calendar.
type CSVImporter struct{}

// Import adds one event per data row (the header row is skipped) and
// returns the number added. Rows with fewer than 9 fields are skipped.
// All-day rows get the 00:00/23:59 convention regardless of their time
// fields. Every event is added with autoDecline off: imports never
// conflict-check.
func (CSVImporter) Import(cal *calendar.Calendar, filename string) (int, error) {
	f, err := os.Open(filename)
	if err != nil {
		return 0, fmt.Errorf("open %q: %w", filename, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return 0, fmt.Errorf("read %q: %w", filename, err)
	}

	count := 0
	for i, rec := range records {
		if i == 0 || len(rec) < 9 {
			continue
		}
		e, err := eventFromRow(rec)
		if err != nil {
			return count, fmt.Errorf("row %d: %w", i+1, err)
		}
		if err := cal.Add(e, false); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

func eventFromRow(rec []string) (*model.Event, error) {
	subject := rec[0]
	startDate, err := time.Parse(csvDateLayout, rec[1])
	if err != nil {
		return nil, fmt.Errorf("bad start date %q", rec[1])
	}
	endDate, err := time.Parse(csvDateLayout, rec[3])
	if err != nil {
		return nil, fmt.Errorf("bad end date %q", rec[3])
	}
	allDay := strings.EqualFold(rec[5], "True")

	start, end := model.StartOfDay(startDate), model.EndOfDay(endDate)
	if !allDay {
		start, err = atClock(startDate, rec[2])
		if err != nil {
			return nil, err
		}
		end, err = atClock(endDate, rec[4])
		if err != nil {
			return nil, err
		}
	}
	return &model.Event{
		Name:        subject,
		Start:       start,
		End:         end,
		Description: rec[6],
		Location:    rec[7],
		Public:      !strings.EqualFold(rec[8], "True"),
	}, nil
}

func atClock(date time.Time, clock string) (time.Time, error) {
	t, err := time.Parse(csvTimeLayout, clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("bad time %q", clock)
	}
	return model.AtTimeOfDay(date, t), nil
}
