package discord

import (
	"time"

	"fmpa/pkg/tz"
)

// FormatEventDateTime renders t in Paris time, e.g. "04/05/2026 à 08:00".
func FormatEventDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(tz.Paris).Format("02/01/2006 à 15:04")
}

// FormatEventRange renders a start/end pair, collapsing the date when both
// fall on the same Paris day.
func FormatEventRange(start, end time.Time) string {
	if start.IsZero() {
		return ""
	}
	if end.IsZero() {
		return FormatEventDateTime(start)
	}
	s, e := start.In(tz.Paris), end.In(tz.Paris)
	if s.Year() == e.Year() && s.YearDay() == e.YearDay() {
		return s.Format("02/01/2006") + " de " + s.Format("15:04") + " à " + e.Format("15:04")
	}
	return FormatEventDateTime(start) + " → " + FormatEventDateTime(end)
}
