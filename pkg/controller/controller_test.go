package controller

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daviddao/calcli/pkg/calendar"
	"github.com/daviddao/calcli/pkg/model"
	"github.com/daviddao/calcli/pkg/transfer"
)

func newTestController() *Controller {
	return New(calendar.New("Default Calendar", time.UTC),
		transfer.CSVExporter{}, transfer.ICalExporter{}, transfer.CSVImporter{})
}

func TestCreateEventAndQuery(t *testing.T) {
	ct := newTestController()
	require.NoError(t, ct.CreateEvent("Meeting", "2025-04-01T10:00", "2025-04-01T11:00", false))

	events, err := ct.EventsOn("2025-04-01")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Meeting", events[0].Name)
	assert.True(t, events[0].Public)

	events, err = ct.EventsOn("2025-04-02")
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestCreateEventRejectsBadDateTime(t *testing.T) {
	ct := newTestController()
	err := ct.CreateEvent("Meeting", "2025-04-01 10:00", "2025-04-01T11:00", false)
	var verr *model.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Error(), "2025-04-01 10:00")
}

func TestCreateEventRejectsEndBeforeStart(t *testing.T) {
	ct := newTestController()
	err := ct.CreateEvent("Meeting", "2025-04-01T11:00", "2025-04-01T10:00", false)
	var verr *model.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestCreateAllDayEvent(t *testing.T) {
	ct := newTestController()
	require.NoError(t, ct.CreateAllDayEvent("Holiday", "2025-04-01", false))

	events, err := ct.EventsOn("2025-04-01")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.True(t, events[0].IsAllDay())
}

func TestCreateRecurringEvent(t *testing.T) {
	ct := newTestController()
	// 2025-04-01 is a Tuesday.
	require.NoError(t, ct.CreateRecurringEvent("Standup",
		"2025-04-01T10:00", "2025-04-01T10:15", "T", 2, false))

	for _, day := range []string{"2025-04-01", "2025-04-08"} {
		events, err := ct.EventsOn(day)
		require.NoError(t, err)
		require.Len(t, events, 1, day)
		assert.Equal(t, "Standup", events[0].Name)
	}
	events, err := ct.EventsOn("2025-04-15")
	require.NoError(t, err)
	assert.Empty(t, events, "only two occurrences requested")
}

func TestCreateRecurringEventNegativeCount(t *testing.T) {
	ct := newTestController()
	err := ct.CreateRecurringEvent("Standup",
		"2025-04-01T10:00", "2025-04-01T10:15", "T", -1, false)
	var verr *model.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestCreateRecurringEventZeroCountIsNoOp(t *testing.T) {
	ct := newTestController()
	require.NoError(t, ct.CreateRecurringEvent("Standup",
		"2025-04-01T10:00", "2025-04-01T10:15", "T", 0, false))
	events, err := ct.EventsOn("2025-04-01")
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestCreateRecurringEventPartialCommitOnConflict(t *testing.T) {
	ct := newTestController()
	// Block the second occurrence slot.
	require.NoError(t, ct.CreateEvent("Blocker", "2025-04-08T10:00", "2025-04-08T11:00", false))

	err := ct.CreateRecurringEvent("Standup",
		"2025-04-01T10:00", "2025-04-01T10:15", "T", 2, true)
	var cerr *model.ConflictError
	require.ErrorAs(t, err, &cerr)

	// Not transactional: the first instance stays committed.
	events, qerr := ct.EventsOn("2025-04-01")
	require.NoError(t, qerr)
	require.Len(t, events, 1)
	assert.Equal(t, "Standup", events[0].Name)
}

func TestCreateRecurringEventUntil(t *testing.T) {
	ct := newTestController()
	require.NoError(t, ct.CreateRecurringEventUntil("Standup",
		"2025-04-01T10:00", "2025-04-01T10:15", "TR", "2025-04-08T23:59", false))

	// Tuesdays and Thursdays through 04-08: 04-01, 04-03, 04-08.
	for _, day := range []string{"2025-04-01", "2025-04-03", "2025-04-08"} {
		events, err := ct.EventsOn(day)
		require.NoError(t, err)
		assert.Len(t, events, 1, day)
	}
	events, err := ct.EventsOn("2025-04-10")
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestCreateRecurringAllDayEventUntilDate(t *testing.T) {
	ct := newTestController()
	require.NoError(t, ct.CreateRecurringAllDayEventUntil("Gym",
		"2025-04-01", "TR", "2025-04-03", false))

	for _, day := range []string{"2025-04-01", "2025-04-03"} {
		events, err := ct.EventsOn(day)
		require.NoError(t, err)
		require.Len(t, events, 1, day)
		assert.True(t, events[0].IsAllDay())
	}
}

func TestShowStatus(t *testing.T) {
	ct := newTestController()
	require.NoError(t, ct.CreateEvent("Meeting", "2025-04-08T13:00", "2025-04-08T14:00", false))

	busy, err := ct.IsBusy("2025-04-08T13:30")
	require.NoError(t, err)
	assert.True(t, busy)

	busy, err = ct.IsBusy("2025-04-08T11:00")
	require.NoError(t, err)
	assert.False(t, busy)
}

func TestEditDispatch(t *testing.T) {
	ct := newTestController()
	require.NoError(t, ct.CreateEvent("Meeting", "2025-04-01T10:00", "2025-04-01T11:00", false))

	require.NoError(t, ct.EditSingleEvent("location", "Meeting",
		"2025-04-01T10:00", "2025-04-01T11:00", "room 2"))
	events, _ := ct.EventsOn("2025-04-01")
	assert.Equal(t, "room 2", events[0].Location)

	require.NoError(t, ct.EditEvents("description", "Meeting", "weekly"))
	assert.Equal(t, "weekly", events[0].Description)

	require.NoError(t, ct.EditEventsFrom("name", "Meeting", "2025-04-01T10:00", "Sync"))
	assert.Equal(t, "Sync", events[0].Name)
}

func TestEditZeroMatchesIsNotFound(t *testing.T) {
	ct := newTestController()
	var nerr *model.NotFoundError

	err := ct.EditSingleEvent("name", "Ghost", "2025-04-01T10:00", "2025-04-01T11:00", "x")
	require.ErrorAs(t, err, &nerr)

	err = ct.EditEvents("name", "Ghost", "x")
	require.ErrorAs(t, err, &nerr)

	err = ct.EditEventsFrom("name", "Ghost", "2025-04-01T10:00", "x")
	require.ErrorAs(t, err, &nerr)
}

func TestEditUnknownPropertyIsValidationError(t *testing.T) {
	ct := newTestController()
	require.NoError(t, ct.CreateEvent("Meeting", "2025-04-01T10:00", "2025-04-01T11:00", false))

	err := ct.EditEvents("color", "Meeting", "red")
	var verr *model.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestUseCalendar(t *testing.T) {
	ct := newTestController()
	require.NoError(t, ct.CreateCalendar("Work", "America/New_York"))
	require.NoError(t, ct.CreateEvent("Home thing", "2025-04-01T10:00", "2025-04-01T11:00", false))

	require.NoError(t, ct.UseCalendar("Work"))
	assert.Equal(t, "Work", ct.ActiveCalendarName())

	events, err := ct.EventsOn("2025-04-01")
	require.NoError(t, err)
	assert.Empty(t, events, "queries follow the active calendar")

	var nerr *model.NotFoundError
	require.ErrorAs(t, ct.UseCalendar("Ghost"), &nerr)
}

func TestEditCalendarRename(t *testing.T) {
	ct := newTestController()
	require.NoError(t, ct.CreateCalendar("Work", "UTC"))
	require.NoError(t, ct.EditCalendar("Work", "name", "Office"))
	assert.Contains(t, ct.CalendarNames(), "Office")

	err := ct.EditCalendar("Office", "owner", "me")
	var verr *model.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestCopyEventPreservesDuration(t *testing.T) {
	ct := newTestController()
	require.NoError(t, ct.CreateCalendar("Work", "UTC"))
	require.NoError(t, ct.CreateEvent("Review", "2025-04-01T10:00", "2025-04-01T11:30", false))
	events, _ := ct.EventsOn("2025-04-01")
	events[0].Description = "quarterly"
	events[0].Location = "room 9"

	require.NoError(t, ct.CopyEvent("Review", "2025-04-01T10:00", "Work", "2025-05-06T14:00"))

	require.NoError(t, ct.UseCalendar("Work"))
	copied, err := ct.EventsOn("2025-05-06")
	require.NoError(t, err)
	require.Len(t, copied, 1)
	assert.Equal(t, "Review", copied[0].Name)
	assert.Equal(t, 90*time.Minute, copied[0].Duration())
	assert.Equal(t, "quarterly", copied[0].Description)
	assert.Equal(t, "room 9", copied[0].Location)
}

func TestCopyEventAlwaysConflictChecksTarget(t *testing.T) {
	ct := newTestController()
	require.NoError(t, ct.CreateCalendar("Work", "UTC"))
	// Source event was created without autoDecline; the copy still
	// conflict-checks at the destination.
	require.NoError(t, ct.CreateEvent("Review", "2025-04-01T10:00", "2025-04-01T11:00", false))

	require.NoError(t, ct.UseCalendar("Work"))
	require.NoError(t, ct.CreateEvent("Busy", "2025-05-06T14:00", "2025-05-06T15:00", false))
	require.NoError(t, ct.UseCalendar("Default Calendar"))

	err := ct.CopyEvent("Review", "2025-04-01T10:00", "Work", "2025-05-06T14:30")
	var cerr *model.ConflictError
	require.ErrorAs(t, err, &cerr)
}

func TestCopyEventNotFound(t *testing.T) {
	ct := newTestController()
	require.NoError(t, ct.CreateCalendar("Work", "UTC"))
	var nerr *model.NotFoundError

	err := ct.CopyEvent("Ghost", "2025-04-01T10:00", "Work", "2025-05-06T14:00")
	require.ErrorAs(t, err, &nerr)

	require.NoError(t, ct.CreateEvent("Review", "2025-04-01T10:00", "2025-04-01T11:00", false))
	err = ct.CopyEvent("Review", "2025-04-01T10:00", "Ghost", "2025-05-06T14:00")
	require.ErrorAs(t, err, &nerr)
}

func TestCopyEventsOnPreservesSpacing(t *testing.T) {
	ct := newTestController()
	require.NoError(t, ct.CreateCalendar("Work", "UTC"))
	require.NoError(t, ct.CreateEvent("First", "2025-04-01T09:00", "2025-04-01T10:00", false))
	require.NoError(t, ct.CreateEvent("Second", "2025-04-01T13:00", "2025-04-01T14:00", false))

	// Earliest start (09:00) anchors to the target base (11:00): +2h.
	require.NoError(t, ct.CopyEventsOn("2025-04-01", "Work", "2025-04-01T11:00"))

	require.NoError(t, ct.UseCalendar("Work"))
	copied, err := ct.EventsOn("2025-04-01")
	require.NoError(t, err)
	require.Len(t, copied, 2)

	byName := map[string]time.Time{}
	for _, e := range copied {
		byName[e.Name] = e.Start
	}
	first, second := byName["First"], byName["Second"]
	assert.Equal(t, 11, first.Hour())
	assert.Equal(t, 4*time.Hour, second.Sub(first), "relative spacing preserved")
}

func TestCopyEventsOnEmptyDateIsNotFound(t *testing.T) {
	ct := newTestController()
	require.NoError(t, ct.CreateCalendar("Work", "UTC"))
	err := ct.CopyEventsOn("2025-04-01", "Work", "2025-04-02T09:00")
	var nerr *model.NotFoundError
	require.ErrorAs(t, err, &nerr)
}

func TestCopyEventsBetween(t *testing.T) {
	ct := newTestController()
	require.NoError(t, ct.CreateCalendar("Work", "UTC"))
	require.NoError(t, ct.CreateEvent("Mon", "2025-04-07T09:00", "2025-04-07T10:00", false))
	require.NoError(t, ct.CreateEvent("Wed", "2025-04-09T15:00", "2025-04-09T16:00", false))
	require.NoError(t, ct.CreateEvent("Outside", "2025-04-20T09:00", "2025-04-20T10:00", false))

	// Target anchor is the start of day: Mon lands at 2025-05-05T00:00.
	require.NoError(t, ct.CopyEventsBetween("2025-04-07", "2025-04-09", "Work", "2025-05-05"))

	require.NoError(t, ct.UseCalendar("Work"))
	mon, err := ct.EventsOn("2025-05-05")
	require.NoError(t, err)
	require.Len(t, mon, 1)
	assert.Equal(t, "Mon", mon[0].Name)
	assert.Equal(t, 0, mon[0].Start.Hour())

	wed, err := ct.EventsOn("2025-05-07")
	require.NoError(t, err)
	require.Len(t, wed, 1)
	assert.Equal(t, "Wed", wed[0].Name)
	assert.Equal(t, 6, wed[0].Start.Hour(), "09:00 source shifted by -9h offset keeps the +2d6h gap")

	none, err := ct.EventsOn("2025-05-18")
	require.NoError(t, err)
	assert.Empty(t, none, "events outside the range are not copied")
}

func TestEventsBetweenQuery(t *testing.T) {
	ct := newTestController()
	require.NoError(t, ct.CreateEvent("Meeting", "2025-04-01T10:00", "2025-04-01T11:00", false))

	events, err := ct.EventsBetween("2025-04-01T00:00", "2025-04-01T23:59")
	require.NoError(t, err)
	assert.Len(t, events, 1)

	_, err = ct.EventsBetween("bogus", "2025-04-01T23:59")
	var verr *model.ValidationError
	require.ErrorAs(t, err, &verr)
}
