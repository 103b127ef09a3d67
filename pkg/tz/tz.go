package tz

import "time"

// Paris is the Europe/Paris location (CET/CEST with automatic DST).
var Paris *time.Location

// Layout is the French day/month/year layout used on exported documents.
const Layout = "02/01/2006 15:04"

func init() {
	var err error
	Paris, err = time.LoadLocation("Europe/Paris")
	if err != nil {
		panic("tz: load Europe/Paris: " + err.Error())
	}
}

// Format renders t in Paris local time.
func Format(t time.Time) string {
	return t.In(Paris).Format(Layout)
}

// FormatPtr is Format for optional times; nil renders as "".
func FormatPtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return Format(*t)
}
