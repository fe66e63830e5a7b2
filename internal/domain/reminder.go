package domain

import (
	"strings"
	"time"
)

// Reminder is a study reminder: a time of day plus a weekly repeat mask.
type Reminder struct {
	ID         int
	UserID     int64
	Hour       int    // 0-23
	Minute     int    // 0-59
	RepeatDays string // 7 characters Mon..Sun, '1' = repeat on that day
	Enabled    bool
	CreatedAt  time.Time
}

// Repeats reports whether any weekday is set in the repeat mask.
func (r Reminder) Repeats() bool {
	return strings.Contains(r.RepeatDays, "1")
}

// NextFire computes the next future trigger instant after now.
//
// A one-time reminder (no repeat day set) fires today if its time is still
// ahead, otherwise tomorrow. A repeating reminder fires on the first set
// weekday scanning 0..6 days ahead; today only counts while the trigger
// time has not passed yet. The resolver is pure: the caller re-invokes it
// after every delivery to schedule the following one.
func (r Reminder) NextFire(now time.Time) time.Time {
	candidate := time.Date(now.Year(), now.Month(), now.Day(), r.Hour, r.Minute, 0, 0, now.Location())

	if !r.Repeats() {
		if candidate.After(now) {
			return candidate
		}
		return candidate.AddDate(0, 0, 1)
	}

	// Monday-based weekday index to match the mask layout.
	weekday := (int(now.Weekday()) + 6) % 7

	for offset := 0; offset <= 6; offset++ {
		if offset == 0 && !candidate.After(now) {
			continue
		}
		idx := (weekday + offset) % 7
		if idx < len(r.RepeatDays) && r.RepeatDays[idx] == '1' {
			return candidate.AddDate(0, 0, offset)
		}
	}

	// Out of scan range (a lone set day whose time passed today lands on
	// offset 7); schedule one day ahead rather than fail.
	return candidate.AddDate(0, 0, 1)
}

// DisplayString returns a user-friendly description like "20:00 Mon, Wed".
func (r Reminder) DisplayString() string {
	names := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

	var days []string
	for i := 0; i < len(r.RepeatDays) && i < 7; i++ {
		if r.RepeatDays[i] == '1' {
			days = append(days, names[i])
		}
	}

	t := time.Date(0, 1, 1, r.Hour, r.Minute, 0, 0, time.UTC).Format("15:04")
	if len(days) == 0 {
		return t + " once"
	}
	if len(days) == 7 {
		return t + " every day"
	}
	return t + " " + strings.Join(days, ", ")
}
