package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClass(t *testing.T) {
	tests := []struct {
		name    string
		classes []string
		want    string
	}{
		{name: "later wins", classes: []string{"h-32 w-full", "h-48 rounded-md"}, want: "w-full h-48 rounded-md"},
		{name: "empty part", classes: []string{"", "p-4"}, want: "p-4"},
		{name: "duplicates", classes: []string{"p-4 text-sm", "p-4"}, want: "p-4 text-sm"},
		{name: "responsive", classes: []string{"grid gap-6 sm:grid-cols-2 lg:grid-cols-3", "lg:grid-cols-4"}, want: "grid gap-6 sm:grid-cols-2 lg:grid-cols-4"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for range 20 {
				assert.Equal(t, tt.want, Class(tt.classes...))
			}
		})
	}
}

func TestFormat(t *testing.T) {
	d := time.Date(2025, time.March, 7, 15, 4, 0, 0, time.UTC)
	assert.Equal(t, "Mar 7, 2025", FormatDate(d))
	assert.Equal(t, "Friday, March 7, 2025", FormatDateLong(d))
	assert.Equal(t, "March 2025", FormatMonth(d))
	assert.Equal(t, "7", FormatDay(d))
	assert.Equal(t, "2025-03-07", FormatISODate(d))
	assert.Equal(t, "3", FormatBadge(3))
	assert.Equal(t, "99+", FormatBadge(120))
}
