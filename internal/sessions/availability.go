package sessions

import (
	"strconv"
	"strings"
	"time"

	"github.com/TutorLink/TL-Backend/internal/auth"
)

// Default working window used when the tutor has no stored hours for the day.
const (
	DefaultWorkStart = 9  // 09:00
	DefaultWorkEnd   = 17 // 17:00
)

// parseHHMM returns minutes since midnight, or -1 when the value doesn't
// look like HH:MM.
func parseHHMM(v string) int {
	parts := strings.SplitN(v, ":", 2)
	if len(parts) != 2 {
		return -1
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return -1
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return -1
	}
	return h*60 + m
}

// windowHours resolves the tutor's stored window for one weekday into
// whole-hour slot bounds: the first slot starts no earlier than the window
// opens, the last slot ends no later than it closes. Falls back to the
// 09:00-17:00 default when the stored window is absent or malformed.
func windowHours(win auth.DayWindow) (startHour, endHour int) {
	start := parseHHMM(win.Start)
	end := parseHHMM(win.End)
	if start < 0 || end < 0 || start >= end {
		return DefaultWorkStart, DefaultWorkEnd
	}

	startHour = (start + 59) / 60 // round up to the next hour boundary
	endHour = end / 60            // round down
	if startHour >= endHour {
		return DefaultWorkStart, DefaultWorkEnd
	}
	return startHour, endHour
}

// WeekdayKey maps a date to the lowercase weekday key used in
// auth.WeeklyAvailability.
func WeekdayKey(date time.Time) string {
	return strings.ToLower(date.Weekday().String())
}

// AvailableSlots generates the hour-aligned slot start times on the given
// date that do not intersect any of the tutor's existing sessions.
// The existing slice must already exclude cancelled sessions. Result is
// ascending.
func AvailableSlots(date time.Time, win auth.DayWindow, existing []Session) []time.Time {
	startHour, endHour := windowHours(win)

	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())

	slots := []time.Time{}
	for hour := startHour; hour < endHour; hour++ {
		slotStart := day.Add(time.Duration(hour) * time.Hour)

		booked := false
		for _, s := range existing {
			if Overlaps(slotStart, 60, s.Date, s.Duration) {
				booked = true
				break
			}
		}
		if !booked {
			slots = append(slots, slotStart)
		}
	}
	return slots
}
