// Package timeutil parses user supplied times of day and renders countdowns in Vietnamese.
package timeutil

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var ErrInvalidFormat = errors.New("time must be HH:MM")

var reTimeOfDay = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)

// ParseTimeOfDay accepts "H:MM" or "HH:MM" with hour 0-23 and minute 0-59.
func ParseTimeOfDay(text string) (hour, minute int, err error) {
	matches := reTimeOfDay.FindStringSubmatch(strings.TrimSpace(text))
	if matches == nil {
		return 0, 0, fmt.Errorf("%q: %w", text, ErrInvalidFormat)
	}
	hour, _ = strconv.Atoi(matches[1])
	minute, _ = strconv.Atoi(matches[2])
	if hour > 23 || minute > 59 {
		return 0, 0, fmt.Errorf("%q is out of range: %w", text, ErrInvalidFormat)
	}
	return hour, minute, nil
}

const (
	unitDay    = "ngày"
	unitHour   = "giờ"
	unitMinute = "phút"
	unitSecond = "giây"
)

// FormatDurationShort renders seconds as "H giờ M phút S giây", leaving out zero hours and minutes.
func FormatDurationShort(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := seconds % 3600 / 60
	s := seconds % 60

	parts := make([]string, 0, 3)
	if h != 0 {
		parts = append(parts, fmt.Sprintf("%d %s", h, unitHour))
	}
	if m != 0 {
		parts = append(parts, fmt.Sprintf("%d %s", m, unitMinute))
	}
	parts = append(parts, fmt.Sprintf("%d %s", s, unitSecond))
	return strings.Join(parts, " ")
}

// FormatDurationLong renders seconds as "D ngày H giờ M phút S giây", zero segments included.
func FormatDurationLong(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	d := seconds / 86400
	h := seconds % 86400 / 3600
	m := seconds % 3600 / 60
	s := seconds % 60
	return fmt.Sprintf("%d %s %d %s %d %s %d %s", d, unitDay, h, unitHour, m, unitMinute, s, unitSecond)
}
