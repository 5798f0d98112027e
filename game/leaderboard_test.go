package game

import (
	"testing"
	"time"

	"github.com/guess-tone/tone_api/model"
)

func ts(offset time.Duration) *time.Time {
	t := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC).Add(offset)
	return &t
}

func TestRank(t *testing.T) {
	sessions := []model.GameSession{
		{UserID: 1, UserName: "untouched", Score: InitialScore},
		{UserID: 2, UserName: "low", Score: 700},
		{UserID: 3, UserName: "winner", Score: 1500, IsCompleted: true, CompletedAt: ts(5 * time.Minute)},
		{UserID: 4, UserName: "faster tie", Score: 900, IsCompleted: true, CompletedAt: ts(2 * time.Minute)},
		{UserID: 5, UserName: "slower tie", Score: 900, IsCompleted: true, CompletedAt: ts(8 * time.Minute)},
		{UserID: 6, UserName: "incomplete tie", Score: 900},
	}

	entries := Rank(sessions)

	wantOrder := []int64{3, 4, 5, 6, 2}
	if len(entries) != len(wantOrder) {
		t.Fatalf("entries = %d, want %d (untouched sessions must be dropped)", len(entries), len(wantOrder))
	}
	for i, want := range wantOrder {
		if entries[i].UserID != want {
			t.Errorf("position %d has user %d, want %d", i+1, entries[i].UserID, want)
		}
		if entries[i].Position != i+1 {
			t.Errorf("entry %d position = %d, want %d", i, entries[i].Position, i+1)
		}
	}
}

func TestRankKeepsCompletedUntouchedSessions(t *testing.T) {
	// Completing without a single wrong guess leaves the score above the
	// initial value, but a perfect no-bonus run is still a real result.
	sessions := []model.GameSession{
		{UserID: 1, Score: InitialScore, IsCompleted: true, CompletedAt: ts(time.Minute)},
	}

	entries := Rank(sessions)
	if len(entries) != 1 {
		t.Fatalf("completed session at initial score must rank, got %d entries", len(entries))
	}
}

func TestAggregatePlayers(t *testing.T) {
	sessions := []model.GameSession{
		{UserID: 1, UserName: "alpha", GameID: "g1", Score: 1200, IsCompleted: true, StartedAt: *ts(0)},
		{UserID: 1, UserName: "alpha", GameID: "g2", Score: 800, StartedAt: *ts(time.Hour)},
		{UserID: 2, UserName: "beta", GameID: "g1", Score: 1500, IsCompleted: true, StartedAt: *ts(0)},
		{UserID: 3, UserName: "idle", GameID: "g1", Score: InitialScore, StartedAt: *ts(0)},
	}

	stats := AggregatePlayers(sessions)

	if len(stats) != 2 {
		t.Fatalf("players = %d, want 2 (idle sessions dropped)", len(stats))
	}

	// beta: 1/1 completed beats alpha's 1/2.
	if stats[0].UserID != 2 {
		t.Errorf("first player = %d, want 2", stats[0].UserID)
	}
	if stats[0].CompletionRate != 100 {
		t.Errorf("beta completion rate = %d, want 100", stats[0].CompletionRate)
	}

	alpha := stats[1]
	if alpha.UserID != 1 {
		t.Fatalf("second player = %d, want 1", alpha.UserID)
	}
	if alpha.TotalGames != 2 || alpha.CompletedGames != 1 {
		t.Errorf("alpha games = %d/%d, want 1/2", alpha.CompletedGames, alpha.TotalGames)
	}
	if alpha.CompletionRate != 50 {
		t.Errorf("alpha completion rate = %d, want 50", alpha.CompletionRate)
	}
	if alpha.AverageScore != 1000 {
		t.Errorf("alpha average = %d, want 1000", alpha.AverageScore)
	}
	if alpha.BestScore != 1200 {
		t.Errorf("alpha best = %d, want 1200", alpha.BestScore)
	}
	if alpha.LastPlayed == nil || !alpha.LastPlayed.Equal(*ts(time.Hour)) {
		t.Errorf("alpha last played = %v, want %v", alpha.LastPlayed, ts(time.Hour))
	}
}

func TestAggregatePlayersTieBreaks(t *testing.T) {
	sessions := []model.GameSession{
		// Both complete every game; more games ranks first.
		{UserID: 1, UserName: "busy", Score: 1100, IsCompleted: true, StartedAt: *ts(0)},
		{UserID: 1, UserName: "busy", Score: 1100, IsCompleted: true, StartedAt: *ts(time.Hour)},
		{UserID: 2, UserName: "single", Score: 1600, IsCompleted: true, StartedAt: *ts(0)},
	}

	stats := AggregatePlayers(sessions)
	if stats[0].UserID != 1 {
		t.Errorf("more games should outrank higher average on equal completion rate, got user %d first", stats[0].UserID)
	}
}

func TestRoundDiv(t *testing.T) {
	tests := []struct {
		num, den, want int
	}{
		{0, 0, 0},
		{100, 3, 33},
		{200, 3, 67},
		{1, 2, 1},
	}

	for _, tt := range tests {
		if got := roundDiv(tt.num, tt.den); got != tt.want {
			t.Errorf("roundDiv(%d, %d) = %d, want %d", tt.num, tt.den, got, tt.want)
		}
	}
}
