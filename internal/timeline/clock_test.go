package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{name: "midnight", input: "00:00", want: 0},
		{name: "morning", input: "09:30", want: 570},
		{name: "noon", input: "12:00", want: 720},
		{name: "last minute", input: "23:59", want: 1439},
		{name: "surrounding whitespace", input: " 08:15 ", want: 495},
		{name: "hour out of range", input: "24:00", wantErr: true},
		{name: "minute out of range", input: "10:60", wantErr: true},
		{name: "negative hour", input: "-1:00", wantErr: true},
		{name: "missing colon", input: "0930", wantErr: true},
		{name: "not a number", input: "ab:cd", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseClock(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatClock24(t *testing.T) {
	assert.Equal(t, "00:00", FormatClock24(0))
	assert.Equal(t, "09:05", FormatClock24(545))
	assert.Equal(t, "23:59", FormatClock24(1439))
}

func TestFormatClock12(t *testing.T) {
	tests := []struct {
		name string
		min  int
		want string
	}{
		{name: "midnight", min: 0, want: "12:00 AM"},
		{name: "one am", min: 60, want: "01:00 AM"},
		{name: "late morning", min: 690, want: "11:30 AM"},
		{name: "noon", min: 720, want: "12:00 PM"},
		{name: "afternoon", min: 810, want: "01:30 PM"},
		{name: "eleven pm", min: 1380, want: "11:00 PM"},
		{name: "day end wraps to midnight", min: 1440, want: "12:00 AM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatClock12(tt.min))
		})
	}
}

func TestHourLabels(t *testing.T) {
	labels := HourLabels()

	assert.Len(t, labels, 24)
	assert.Equal(t, "12:00 AM", labels[0])
	assert.Equal(t, "11:00 AM", labels[11])
	assert.Equal(t, "12:00 PM", labels[12])
	assert.Equal(t, "11:00 PM", labels[23])
}
