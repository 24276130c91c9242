// Package controller translates string-typed command arguments into
// typed operations against the calendar registry. It owns the session's
// single piece of mutable state: the active calendar the current
// operations apply to.
package controller

import (
	"time"

	"github.com/daviddao/calcli/pkg/calendar"
	"github.com/daviddao/calcli/pkg/model"
)

// The two fixed datetime layouts of the command surface.
const (
	LayoutDateTime = "2006-01-02T15:04"
	LayoutDate     = "2006-01-02"
)

// Exporter writes a calendar to a file and returns the absolute path.
type Exporter interface {
	Export(cal *calendar.Calendar, filename string) (string, error)
}

// Importer reads events from a file into a calendar and returns the
// number of events added.
type Importer interface {
	Import(cal *calendar.Calendar, filename string) (int, error)
}

// Controller is the orchestrator: registry, active-calendar session
// state, and the import/export collaborators.
type Controller struct {
	registry *calendar.Registry
	active   *calendar.Calendar

	csvExporter  Exporter
	icalExporter Exporter
	importer     Importer
}

// New builds a controller around the given default calendar, which
// becomes the initial active calendar.
func New(defaultCal *calendar.Calendar, csvExp, icalExp Exporter, imp Importer) *Controller {
	r := calendar.NewRegistry()
	// The default calendar's name is ours to pick at startup; a clash is
	// impossible in an empty registry.
	_ = r.Add(defaultCal)
	return &Controller{
		registry:     r,
		active:       defaultCal,
		csvExporter:  csvExp,
		icalExporter: icalExp,
		importer:     imp,
	}
}

// ActiveCalendarName returns the name of the active calendar.
func (ct *Controller) ActiveCalendarName() string { return ct.active.Name() }

// CalendarNames returns all registered calendar names, sorted.
func (ct *Controller) CalendarNames() []string { return ct.registry.Names() }

// CreateCalendar creates a new calendar with the given name and
// timezone.
func (ct *Controller) CreateCalendar(name, timezone string) error {
	_, err := ct.registry.Create(name, timezone)
	return err
}

// EditCalendar edits a property (name or timezone) of the named
// calendar.
func (ct *Controller) EditCalendar(name, property, value string) error {
	p, err := model.ParseCalendarProperty(property)
	if err != nil {
		return err
	}
	return ct.registry.Edit(name, p, value)
}

// UseCalendar switches the active calendar by name.
func (ct *Controller) UseCalendar(name string) error {
	c, ok := ct.registry.Get(name)
	if !ok {
		return model.NotFoundf("calendar %s not found", name)
	}
	ct.active = c
	return nil
}

// CreateEvent creates a single timed event on the active calendar.
func (ct *Controller) CreateEvent(name, startStr, endStr string, autoDecline bool) error {
	start, end, err := ct.parseSpan(startStr, endStr)
	if err != nil {
		return err
	}
	e := &model.Event{Name: name, Start: start, End: end, Public: true}
	return ct.active.Add(e, autoDecline)
}

// CreateAllDayEvent creates a single all-day event (00:00 to 23:59) on
// the given date.
func (ct *Controller) CreateAllDayEvent(name, dateStr string, autoDecline bool) error {
	date, err := ct.parseDate(dateStr)
	if err != nil {
		return err
	}
	e := &model.Event{
		Name:   name,
		Start:  model.StartOfDay(date),
		End:    model.EndOfDay(date),
		Public: true,
	}
	return ct.active.Add(e, autoDecline)
}

// CreateRecurringEvent creates a recurring timed event with a fixed
// occurrence count. A negative count is a ValidationError; zero is a
// no-op.
func (ct *Controller) CreateRecurringEvent(name, startStr, endStr, weekdays string, occurrences int, autoDecline bool) error {
	if occurrences < 0 {
		return model.Validationf("occurrence count cannot be negative: %d", occurrences)
	}
	if occurrences == 0 {
		return nil
	}
	start, end, err := ct.parseSpan(startStr, endStr)
	if err != nil {
		return err
	}
	days, err := model.ParseWeekdays(weekdays)
	if err != nil {
		return err
	}
	rule := model.Rule{Weekdays: days, Occurrences: occurrences}
	return ct.expandAndAdd(rule, model.Event{Name: name, Start: start, End: end, Public: true}, autoDecline)
}

// CreateRecurringEventUntil creates a recurring timed event repeating
// until the given date-time boundary.
func (ct *Controller) CreateRecurringEventUntil(name, startStr, endStr, weekdays, untilStr string, autoDecline bool) error {
	start, end, err := ct.parseSpan(startStr, endStr)
	if err != nil {
		return err
	}
	until, err := ct.parseDateTime(untilStr)
	if err != nil {
		return err
	}
	days, err := model.ParseWeekdays(weekdays)
	if err != nil {
		return err
	}
	rule := model.Rule{Weekdays: days, Until: until}
	return ct.expandAndAdd(rule, model.Event{Name: name, Start: start, End: end, Public: true}, autoDecline)
}

// CreateRecurringAllDayEvent creates a recurring all-day event with a
// fixed occurrence count.
func (ct *Controller) CreateRecurringAllDayEvent(name, dateStr, weekdays string, occurrences int, autoDecline bool) error {
	if occurrences < 0 {
		return model.Validationf("occurrence count cannot be negative: %d", occurrences)
	}
	if occurrences == 0 {
		return nil
	}
	date, err := ct.parseDate(dateStr)
	if err != nil {
		return err
	}
	days, err := model.ParseWeekdays(weekdays)
	if err != nil {
		return err
	}
	rule := model.Rule{Weekdays: days, Occurrences: occurrences}
	template := model.Event{
		Name:   name,
		Start:  model.StartOfDay(date),
		End:    model.EndOfDay(date),
		Public: true,
	}
	return ct.expandAndAdd(rule, template, autoDecline)
}

// CreateRecurringAllDayEventUntil creates a recurring all-day event
// repeating until the given date (inclusive, boundary at 23:59).
func (ct *Controller) CreateRecurringAllDayEventUntil(name, dateStr, weekdays, untilDateStr string, autoDecline bool) error {
	date, err := ct.parseDate(dateStr)
	if err != nil {
		return err
	}
	untilDate, err := ct.parseDate(untilDateStr)
	if err != nil {
		return err
	}
	days, err := model.ParseWeekdays(weekdays)
	if err != nil {
		return err
	}
	rule := model.Rule{Weekdays: days, Until: model.EndOfDay(untilDate)}
	template := model.Event{
		Name:   name,
		Start:  model.StartOfDay(date),
		End:    model.EndOfDay(date),
		Public: true,
	}
	return ct.expandAndAdd(rule, template, autoDecline)
}

// expandAndAdd expands the rule and inserts each generated instance
// individually. Not transactional: a conflict aborts that instance only,
// and instances already inserted stay committed.
func (ct *Controller) expandAndAdd(rule model.Rule, template model.Event, autoDecline bool) error {
	instances, err := rule.Generate(template)
	if err != nil {
		return err
	}
	for i := range instances {
		if err := ct.active.Add(&instances[i], autoDecline); err != nil {
			return err
		}
	}
	return nil
}

// EditSingleEvent edits one event located by its exact (name, start,
// end) triple. No match is a NotFoundError.
func (ct *Controller) EditSingleEvent(property, name, startStr, endStr, value string) error {
	p, err := model.ParseEventProperty(property)
	if err != nil {
		return err
	}
	start, err := ct.parseDateTime(startStr)
	if err != nil {
		return err
	}
	end, err := ct.parseDateTime(endStr)
	if err != nil {
		return err
	}
	if !ct.active.EditSingle(p, name, start, end, value) {
		return model.NotFoundf("no matching event found for editing")
	}
	return nil
}

// EditEventsFrom edits every same-named event starting at or after the
// threshold. Zero matches is a NotFoundError.
func (ct *Controller) EditEventsFrom(property, name, startStr, value string) error {
	p, err := model.ParseEventProperty(property)
	if err != nil {
		return err
	}
	start, err := ct.parseDateTime(startStr)
	if err != nil {
		return err
	}
	if ct.active.EditFrom(p, name, start, value) == 0 {
		return model.NotFoundf("no matching events found")
	}
	return nil
}

// EditEvents edits every event with the given name. Zero matches is a
// NotFoundError.
func (ct *Controller) EditEvents(property, name, value string) error {
	p, err := model.ParseEventProperty(property)
	if err != nil {
		return err
	}
	if ct.active.EditAll(p, name, value) == 0 {
		return model.NotFoundf("no matching events found")
	}
	return nil
}

// CopyEvent copies a single event, located by (name, start) in the
// active calendar, into the target calendar at the new start time. The
// duration and all descriptive fields are preserved. Copies always
// conflict-check at the destination.
func (ct *Controller) CopyEvent(name, sourceDT, targetCalName, targetDT string) error {
	source, err := ct.parseDateTime(sourceDT)
	if err != nil {
		return err
	}
	e := ct.active.FindByNameAndStart(name, source)
	if e == nil {
		return model.NotFoundf("event %s not found at %s", name, sourceDT)
	}
	target, ok := ct.registry.Get(targetCalName)
	if !ok {
		return model.NotFoundf("target calendar %s not found", targetCalName)
	}
	targetStart, err := ct.parseDateTime(targetDT)
	if err != nil {
		return err
	}
	clone := &model.Event{
		Name:        e.Name,
		Start:       targetStart,
		End:         targetStart.Add(e.Duration()),
		Description: e.Description,
		Location:    e.Location,
		Public:      e.Public,
	}
	return target.Add(clone, true)
}

// CopyEventsOn copies every active-calendar event on the given date into
// the target calendar, shifting all of them by one offset so their
// relative spacing is preserved. The offset anchors the earliest source
// start to the target base time.
func (ct *Controller) CopyEventsOn(dateStr, targetCalName, targetDT string) error {
	date, err := ct.parseDate(dateStr)
	if err != nil {
		return err
	}
	events := ct.active.EventsOn(date)
	if len(events) == 0 {
		return model.NotFoundf("no events on %s to copy", dateStr)
	}
	targetBase, err := ct.parseDateTime(targetDT)
	if err != nil {
		return err
	}
	return ct.copyShifted(events, targetCalName, targetBase)
}

// CopyEventsBetween copies every event overlapping [startDate 00:00,
// endDate 23:59] into the target calendar, anchored to the target
// date's start of day, with the same offset-preserving algorithm.
func (ct *Controller) CopyEventsBetween(startDateStr, endDateStr, targetCalName, targetDateStr string) error {
	startDate, err := ct.parseDate(startDateStr)
	if err != nil {
		return err
	}
	endDate, err := ct.parseDate(endDateStr)
	if err != nil {
		return err
	}
	events := ct.active.EventsBetween(model.StartOfDay(startDate), model.EndOfDay(endDate))
	if len(events) == 0 {
		return model.NotFoundf("no events between %s and %s to copy", startDateStr, endDateStr)
	}
	targetDate, err := ct.parseDate(targetDateStr)
	if err != nil {
		return err
	}
	return ct.copyShifted(events, targetCalName, model.StartOfDay(targetDate))
}

func (ct *Controller) copyShifted(events []*model.Event, targetCalName string, targetBase time.Time) error {
	target, ok := ct.registry.Get(targetCalName)
	if !ok {
		return model.NotFoundf("target calendar %s not found", targetCalName)
	}
	earliest := events[0].Start
	for _, e := range events[1:] {
		if e.Start.Before(earliest) {
			earliest = e.Start
		}
	}
	offset := targetBase.Sub(earliest)
	for _, e := range events {
		clone := &model.Event{
			Name:        e.Name,
			Start:       e.Start.Add(offset),
			End:         e.End.Add(offset),
			Description: e.Description,
			Location:    e.Location,
			Public:      e.Public,
		}
		if err := target.Add(clone, true); err != nil {
			return err
		}
	}
	return nil
}

// EventsOn returns the active calendar's events on the given date.
func (ct *Controller) EventsOn(dateStr string) ([]*model.Event, error) {
	date, err := ct.parseDate(dateStr)
	if err != nil {
		return nil, err
	}
	return ct.active.EventsOn(date), nil
}

// EventsBetween returns the active calendar's events overlapping the
// given date-time range.
func (ct *Controller) EventsBetween(startStr, endStr string) ([]*model.Event, error) {
	start, err := ct.parseDateTime(startStr)
	if err != nil {
		return nil, err
	}
	end, err := ct.parseDateTime(endStr)
	if err != nil {
		return nil, err
	}
	return ct.active.EventsBetween(start, end), nil
}

// IsBusy reports whether the active calendar has an event covering the
// given instant.
func (ct *Controller) IsBusy(dateTimeStr string) (bool, error) {
	t, err := ct.parseDateTime(dateTimeStr)
	if err != nil {
		return false, err
	}
	return ct.active.IsBusy(t), nil
}

// Export writes the active calendar as CSV and returns the absolute
// output path.
func (ct *Controller) Export(filename string) (string, error) {
	return ct.csvExporter.Export(ct.active, filename)
}

// ExportICal writes the active calendar as iCalendar and returns the
// absolute output path.
func (ct *Controller) ExportICal(filename string) (string, error) {
	return ct.icalExporter.Export(ct.active, filename)
}

// Import reads events from a CSV file into the active calendar and
// returns the number of events added.
func (ct *Controller) Import(filename string) (int, error) {
	return ct.importer.Import(ct.active, filename)
}

func (ct *Controller) parseDateTime(s string) (time.Time, error) {
	t, err := time.Parse(LayoutDateTime, s)
	if err != nil {
		return time.Time{}, model.Validationf("invalid date-time: %s", s)
	}
	return t, nil
}

func (ct *Controller) parseDate(s string) (time.Time, error) {
	t, err := time.Parse(LayoutDate, s)
	if err != nil {
		return time.Time{}, model.Validationf("invalid date: %s", s)
	}
	return t, nil
}

// parseSpan parses a start/end date-time pair and rejects a span that
// ends before it starts.
func (ct *Controller) parseSpan(startStr, endStr string) (time.Time, time.Time, error) {
	start, err := ct.parseDateTime(startStr)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := ct.parseDateTime(endStr)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, model.Validationf("event end %s is before start %s", endStr, startStr)
	}
	return start, end, nil
}
