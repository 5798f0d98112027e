package game

import (
	"time"

	"github.com/guess-tone/tone_api/model"
)

// WindowState classifies an instant against a round's play window.
type WindowState int

const (
	WindowOk WindowState = iota
	WindowNotStarted
	WindowEnded
)

// CheckWindow gates every session-mutating action: NotStarted strictly before
// startTime, Ended strictly after endTime, Ok in between (boundaries
// inclusive). Read-only fetches are not gated.
func CheckWindow(g *model.Game, now time.Time) WindowState {
	if now.Before(g.StartTime) {
		return WindowNotStarted
	}
	if now.After(g.EndTime) {
		return WindowEnded
	}
	return WindowOk
}
