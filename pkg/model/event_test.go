package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dt(t *testing.T, s string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02T15:04", s)
	require.NoError(t, err)
	return parsed
}

func timedEvent(t *testing.T, name, start, end string) *Event {
	t.Helper()
	return &Event{Name: name, Start: dt(t, start), End: dt(t, end)}
}

func TestConflict(t *testing.T) {
	tests := []struct {
		name     string
		a, b     [2]string
		conflict bool
	}{
		{
			name:     "full_overlap",
			a:        [2]string{"2025-04-01T10:00", "2025-04-01T11:00"},
			b:        [2]string{"2025-04-01T10:30", "2025-04-01T10:45"},
			conflict: true,
		},
		{
			name:     "partial_overlap",
			a:        [2]string{"2025-04-01T10:00", "2025-04-01T11:00"},
			b:        [2]string{"2025-04-01T10:30", "2025-04-01T11:30"},
			conflict: true,
		},
		{
			name:     "touching_boundary_counts_as_conflict",
			a:        [2]string{"2025-04-01T10:00", "2025-04-01T11:00"},
			b:        [2]string{"2025-04-01T11:00", "2025-04-01T12:00"},
			conflict: true,
		},
		{
			name:     "disjoint_after",
			a:        [2]string{"2025-04-01T10:00", "2025-04-01T11:00"},
			b:        [2]string{"2025-04-01T11:01", "2025-04-01T12:00"},
			conflict: false,
		},
		{
			name:     "disjoint_before",
			a:        [2]string{"2025-04-01T10:00", "2025-04-01T11:00"},
			b:        [2]string{"2025-04-01T08:00", "2025-04-01T09:59"},
			conflict: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := timedEvent(t, "a", tt.a[0], tt.a[1])
			b := timedEvent(t, "b", tt.b[0], tt.b[1])
			assert.Equal(t, tt.conflict, Conflict(a, b))
			assert.Equal(t, tt.conflict, Conflict(b, a), "conflict should be symmetric")
		})
	}
}

func TestIsAllDay(t *testing.T) {
	assert.True(t, timedEvent(t, "e", "2025-04-01T00:00", "2025-04-01T23:59").IsAllDay())
	assert.False(t, timedEvent(t, "e", "2025-04-01T00:00", "2025-04-01T23:58").IsAllDay())
	assert.False(t, timedEvent(t, "e", "2025-04-01T10:00", "2025-04-01T23:59").IsAllDay())
	// Spanning midnight with the right clock times is not all-day.
	assert.False(t, timedEvent(t, "e", "2025-04-01T00:00", "2025-04-02T23:59").IsAllDay())
}

func TestDuration(t *testing.T) {
	e := timedEvent(t, "e", "2025-04-01T10:00", "2025-04-01T11:30")
	assert.Equal(t, 90*time.Minute, e.Duration())
}

func TestParseEventProperty(t *testing.T) {
	for _, s := range []string{"name", "Name", "DESCRIPTION", "location", "isPublic"} {
		_, err := ParseEventProperty(s)
		assert.NoError(t, err, s)
	}
	_, err := ParseEventProperty("color")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestEventPropertyApply(t *testing.T) {
	e := timedEvent(t, "old", "2025-04-01T10:00", "2025-04-01T11:00")

	EventName.Apply(e, "new")
	assert.Equal(t, "new", e.Name)

	EventDescription.Apply(e, "desc")
	assert.Equal(t, "desc", e.Description)

	EventLocation.Apply(e, "room 4")
	assert.Equal(t, "room 4", e.Location)

	// ispublic is lenient: exactly "true" (any case) is true, all else false.
	EventIsPublic.Apply(e, "TRUE")
	assert.True(t, e.Public)
	EventIsPublic.Apply(e, "yes")
	assert.False(t, e.Public)
}

func TestParseCalendarProperty(t *testing.T) {
	_, err := ParseCalendarProperty("Timezone")
	assert.NoError(t, err)
	_, err = ParseCalendarProperty("name")
	assert.NoError(t, err)

	_, err = ParseCalendarProperty("owner")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}
