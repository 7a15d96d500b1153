package content

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
events:
  - id: "e1"
    title: Open Day
    date: 2025-05-02
    location: Main Hall
    category: academic
news:
  - id: "n1"
    title: Older
    date: 2025-01-01
  - id: "n2"
    title: Newer
    date: 2025-02-01
calendar:
  - date: 2025-02-10
    title: Second
  - date: 2025-01-20
    title: First
  - date: 2025-02-01
    title: Also February
`

func writeFile(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "content.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestCatalog_Lookups(t *testing.T) {
	c := Default()

	e, err := c.EventByID("1")
	require.NoError(t, err)
	assert.Equal(t, "Annual Science Fair", e.Title)

	_, err = c.EventByID("999")
	assert.ErrorIs(t, err, ErrNotFound)

	n, err := c.NewsByID("2")
	require.NoError(t, err)
	assert.Equal(t, "New Library Wing Opens", n.Title)

	_, err = c.NewsByID("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCatalog_LatestNews(t *testing.T) {
	c := Default()
	latest := c.LatestNews(2)
	require.Len(t, latest, 2)
	assert.Equal(t, "3", latest[0].ID)
	assert.Equal(t, "1", latest[1].ID)

	assert.Len(t, c.LatestNews(0), len(c.News))
	// the catalog itself is untouched
	assert.Equal(t, "1", c.News[0].ID)
}

func TestCatalog_EventsByDateAndUpcoming(t *testing.T) {
	c := Default()

	all := c.EventsByDate("")
	for i := 1; i < len(all); i++ {
		assert.False(t, all[i].Date.Before(all[i-1].Date))
	}

	studentLife := c.EventsByDate("student-life")
	require.Len(t, studentLife, 2)
	assert.Equal(t, "Club Fair", studentLife[0].Title)

	later := time.Date(2030, time.January, 1, 0, 0, 0, 0, time.UTC)
	fixed := c.UpcomingEvents(later, 3)
	require.Len(t, fixed, 3, "the built-in list does not age out")
	assert.Equal(t, "Parent-Teacher Conferences", fixed[0].Title)

	c.Fixed = false
	upcoming := c.UpcomingEvents(time.Date(2025, time.April, 10, 15, 0, 0, 0, time.UTC), 2)
	require.Len(t, upcoming, 2)
	assert.Equal(t, "Spring Concert", upcoming[0].Title, "events on the same day count as upcoming")
	assert.Equal(t, "Club Fair", upcoming[1].Title)
	assert.Empty(t, c.UpcomingEvents(later, 3))
}

func TestCatalog_GroupByMonth(t *testing.T) {
	c, err := Decode(strings.NewReader(sampleYAML))
	require.NoError(t, err)

	months := c.GroupByMonth()
	require.Len(t, months, 2)
	assert.Equal(t, time.January, months[0].Start.Month())
	assert.Equal(t, []string{"First"}, titles(months[0].Entries))
	assert.Equal(t, []string{"Also February", "Second"}, titles(months[1].Entries))
}

func titles(entries []CalendarEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Title
	}
	return out
}

func TestDecode_RejectsUnknownFields(t *testing.T) {
	_, err := Decode(strings.NewReader("events:\n  - id: x\n    titel: typo\n"))
	assert.Error(t, err)
}

func TestDecode_Empty(t *testing.T) {
	c, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, c.Events)
}

func TestEncodeDecode_DefaultCatalog(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, Default()))

	c, err := Decode(&buf)
	require.NoError(t, err)
	assert.Len(t, c.Events, len(Default().Events))
	assert.True(t, c.Calendar[0].Date.Equal(Default().Calendar[0].Date))
}

func TestFileSource_ReloadSwapsCatalog(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, sampleYAML)

	src, err := NewFileSource(path)
	require.NoError(t, err)

	before, err := src.Catalog(context.Background())
	require.NoError(t, err)
	require.Len(t, before.Events, 1)

	writeFile(t, dir, strings.Replace(sampleYAML, "Open Day", "Open Evening", 1))
	require.NoError(t, src.Reload())

	after, err := src.Catalog(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Open Evening", after.Events[0].Title)
	assert.Equal(t, "Open Day", before.Events[0].Title, "old snapshot is never mutated")
	assert.False(t, src.LoadedAt().IsZero())
}

func TestFileSource_FailedReloadKeepsPrevious(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, sampleYAML)

	src, err := NewFileSource(path)
	require.NoError(t, err)

	writeFile(t, dir, "events: [this is: not: valid")
	assert.Error(t, src.Reload())

	c, err := src.Catalog(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Open Day", c.Events[0].Title)
}

func TestNewFileSource_MissingFile(t *testing.T) {
	_, err := NewFileSource(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestStaticSource(t *testing.T) {
	c, err := NewStatic().Catalog(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, c.Events)
	assert.NotEmpty(t, c.Leaders)
}
