package utils

import (
	"fmt"
	"strings"
	"time"
)

// ParseEntryTimestamp combines a toll ledger entry's DD-MM-YYYY date and
// HH:MM[:SS] time strings into a single time.Time.
func ParseEntryTimestamp(date, clock string) (time.Time, error) {
	parts := strings.Split(date, "-")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("invalid entry date %q", date)
	}
	iso := fmt.Sprintf("%s-%s-%s", parts[2], parts[1], parts[0])

	for _, layout := range []string{"2006-01-02T15:04:05", "2006-01-02T15:04"} {
		if ts, err := time.Parse(layout, iso+"T"+clock); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid entry timestamp %q %q", date, clock)
}

// FormatEntryTimestamp renders an entry timestamp the way the dashboard
// shows it, e.g. "Monday, March 3, 2025, 02:15 PM". Unparseable input
// falls back to the raw date and time so a bad record never breaks the
// listing.
func FormatEntryTimestamp(date, clock string) string {
	ts, err := ParseEntryTimestamp(date, clock)
	if err != nil {
		return date + " " + clock
	}
	return ts.Format("Monday, January 2, 2006, 03:04 PM")
}
