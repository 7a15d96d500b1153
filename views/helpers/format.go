package helpers

import (
	"fmt"
	"time"
)

// FormatInt formats an integer as a string
func FormatInt(n int) string {
	return fmt.Sprintf("%d", n)
}

// FormatBadge formats a notification count, capping large values at "99+"
func FormatBadge(n int) string {
	if n > 99 {
		return "99+"
	}
	return FormatInt(n)
}

// FormatDate formats a time.Time as "Jan 2, 2006"
func FormatDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

// FormatDateLong formats a time.Time as "Monday, January 2, 2006"
func FormatDateLong(t time.Time) string {
	return t.Format("Monday, January 2, 2006")
}

// FormatDateTime formats a time.Time as "Jan 2, 2006 3:04 PM"
func FormatDateTime(t time.Time) string {
	return t.Format("Jan 2, 2006 3:04 PM")
}

// FormatMonth formats a time.Time as "January 2006"
func FormatMonth(t time.Time) string {
	return t.Format("January 2006")
}

// FormatDay returns the day of month, used in calendar badges
func FormatDay(t time.Time) string {
	return t.Format("2")
}

// FormatISODate formats a time.Time for datetime attributes
func FormatISODate(t time.Time) string {
	return t.Format("2006-01-02")
}
