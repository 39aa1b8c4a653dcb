package dates

import (
	"time"
)

// EasternZone is the IANA zone Notion due dates are expressed in.
const EasternZone = "America/New_York"

// wallClock is the layout Notion expects for a zoned date start:
// seconds precision, no offset (the zone travels separately).
const wallClock = "2006-01-02T15:04:05"

// ToEastern converts a Canvas UTC timestamp (RFC 3339, usually with a
// trailing "Z") into an Eastern wall-clock string. The boolean is false
// when the input is empty or unparseable; callers omit the due date
// entirely in that case.
func ToEastern(iso string) (string, bool) {
	if iso == "" {
		return "", false
	}

	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return "", false
	}

	loc, err := time.LoadLocation(EasternZone)
	if err != nil {
		return "", false
	}

	return t.In(loc).Format(wallClock), true
}
