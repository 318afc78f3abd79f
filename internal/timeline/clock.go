package timeline

import (
	"fmt"
	"strconv"
	"strings"
)

// minutesPerDay bounds every time-of-day value handled by the engine.
const minutesPerDay = 24 * 60

// ParseClock parses a 24-hour "HH:MM" string into minutes since midnight.
func ParseClock(s string) (int, error) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid hour in %q: %w", s, err)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid minute in %q: %w", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("time %q out of range", s)
	}
	return h*60 + m, nil
}

// FormatClock24 renders minutes since midnight as a 24-hour "HH:MM" string.
func FormatClock24(min int) string {
	return fmt.Sprintf("%02d:%02d", min/60, min%60)
}

// FormatClock12 renders minutes since midnight in 12-hour clock form with
// an AM/PM suffix. Midnight is "12:00 AM", noon is "12:00 PM". The day-end
// sentinel 1440 renders as midnight.
func FormatClock12(min int) string {
	min %= minutesPerDay
	h24, m := min/60, min%60
	ampm := "AM"
	if h24 >= 12 {
		ampm = "PM"
	}
	h := h24 % 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%02d:%02d %s", h, m, ampm)
}

// HourLabel returns the gridline label for an hour of the day (0-23).
func HourLabel(h24 int) string {
	return FormatClock12(h24 * 60)
}

// HourLabels returns the 24 hour-gridline labels, "12:00 AM" through
// "11:00 PM".
func HourLabels() []string {
	labels := make([]string, 24)
	for h := range labels {
		labels[h] = HourLabel(h)
	}
	return labels
}
