package transfer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestICalExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.ics")
	got, err := ICalExporter{}.Export(sampleCalendar(t), path)
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(got))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)

	assert.Contains(t, text, "BEGIN:VCALENDAR")
	assert.Contains(t, text, "METHOD:PUBLISH")
	assert.Equal(t, 2, strings.Count(text, "BEGIN:VEVENT"))

	assert.Contains(t, text, "SUMMARY:Meeting")
	assert.Contains(t, text, "DTSTART:20250401T100000")
	assert.Contains(t, text, "DTEND:20250401T110000")
	assert.Contains(t, text, "DESCRIPTION:quarterly review")
	assert.Contains(t, text, "LOCATION:room 7")
	assert.Contains(t, text, "CLASS:PUBLIC")

	assert.Contains(t, text, "SUMMARY:Holiday")
	assert.Contains(t, text, "CLASS:PRIVATE")
}

func TestICalExportOmitsEmptyOptionalFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.ics")
	_, err := ICalExporter{}.Export(sampleCalendar(t), path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	// Only the first event has a description and location.
	assert.Equal(t, 1, strings.Count(string(data), "DESCRIPTION:"))
	assert.Equal(t, 1, strings.Count(string(data), "LOCATION:"))
}
