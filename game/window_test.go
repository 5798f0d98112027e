package game

import (
	"testing"
	"time"

	"github.com/guess-tone/tone_api/model"
)

func TestCheckWindow(t *testing.T) {
	start := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)
	g := &model.Game{StartTime: start, EndTime: end}

	tests := []struct {
		name string
		now  time.Time
		want WindowState
	}{
		{"before start", start.Add(-time.Second), WindowNotStarted},
		{"exactly at start", start, WindowOk},
		{"inside window", start.Add(time.Hour), WindowOk},
		{"exactly at end", end, WindowOk},
		{"after end", end.Add(time.Second), WindowEnded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CheckWindow(g, tt.now); got != tt.want {
				t.Errorf("CheckWindow at %v = %v, want %v", tt.now, got, tt.want)
			}
		})
	}
}
