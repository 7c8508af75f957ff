package timeutil

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDayAcceptsEveryValidTime(t *testing.T) {
	for h := 0; h < 24; h++ {
		for m := 0; m < 60; m++ {
			texts := []string{fmt.Sprintf("%02d:%02d", h, m)}
			if h < 10 {
				texts = append(texts, fmt.Sprintf("%d:%02d", h, m))
			}
			for _, text := range texts {
				hour, minute, err := ParseTimeOfDay(text)
				require.NoError(t, err, text)
				assert.Equal(t, h, hour, text)
				assert.Equal(t, m, minute, text)
			}
		}
	}
}

func TestParseTimeOfDayTrimsSurroundingSpace(t *testing.T) {
	hour, minute, err := ParseTimeOfDay("  7:05\n")
	require.NoError(t, err)
	assert.Equal(t, 7, hour)
	assert.Equal(t, 5, minute)
}

func TestParseTimeOfDayRejects(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "empty", text: ""},
		{name: "no separator", text: "1430"},
		{name: "two separators", text: "14:30:00"},
		{name: "other separator", text: "14.30"},
		{name: "non numeric hour", text: "ab:30"},
		{name: "non numeric minute", text: "14:3x"},
		{name: "hour out of range", text: "24:00"},
		{name: "minute out of range", text: "12:60"},
		{name: "negative hour", text: "-1:00"},
		{name: "space inside field", text: "14: 30"},
		{name: "signed minute", text: "14:+3"},
		{name: "three digit hour", text: "100:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParseTimeOfDay(tt.text)
			assert.ErrorIs(t, err, ErrInvalidFormat)
		})
	}
}

func TestFormatDurationShort(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{seconds: 0, want: "0 giây"},
		{seconds: -5, want: "0 giây"},
		{seconds: 59, want: "59 giây"},
		{seconds: 60, want: "1 phút 0 giây"},
		{seconds: 3600, want: "1 giờ 0 giây"},
		{seconds: 3661, want: "1 giờ 1 phút 1 giây"},
		{seconds: 90061, want: "25 giờ 1 phút 1 giây"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDurationShort(tt.seconds), "seconds=%d", tt.seconds)
	}
}

func TestFormatDurationLong(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{seconds: 0, want: "0 ngày 0 giờ 0 phút 0 giây"},
		{seconds: -100, want: "0 ngày 0 giờ 0 phút 0 giây"},
		{seconds: 90061, want: "1 ngày 1 giờ 1 phút 1 giây"},
		{seconds: 86400 * 300, want: "300 ngày 0 giờ 0 phút 0 giây"},
		{seconds: 3599, want: "0 ngày 0 giờ 59 phút 59 giây"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDurationLong(tt.seconds), "seconds=%d", tt.seconds)
	}
}
