package dashboard

import "time"

// DisplayLayout renders timestamps the way an en-US browser locale string does
const DisplayLayout = "1/2/2006, 3:04:05 PM"

// TimeFormatter converts gateway epoch milliseconds to display strings
type TimeFormatter struct {
	Location *time.Location
}

// NewTimeFormatter returns a formatter bound to loc, falling back to UTC when loc is nil
func NewTimeFormatter(loc *time.Location) TimeFormatter {
	if loc == nil {
		loc = time.UTC
	}
	return TimeFormatter{Location: loc}
}

// FormatMillis returns fallback for non-positive values, otherwise the local display string
func (f TimeFormatter) FormatMillis(ms int64, fallback string) string {
	if ms <= 0 {
		return fallback
	}
	loc := f.Location
	if loc == nil {
		loc = time.UTC
	}
	return time.UnixMilli(ms).In(loc).Format(DisplayLayout)
}
