package game

import (
	"sort"
	"time"

	"github.com/guess-tone/tone_api/model"
)

// Entry is one ranked row of a per-round leaderboard.
type Entry struct {
	UserID      int64      `json:"userId"`
	UserName    string     `json:"userName"`
	Score       int        `json:"score"`
	Position    int        `json:"position"`
	IsCompleted bool       `json:"isCompleted"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// PlayerStats is one player's aggregate across every round they touched.
type PlayerStats struct {
	UserID         int64      `json:"userId"`
	UserName       string     `json:"userName"`
	TotalGames     int        `json:"totalGames"`
	CompletedGames int        `json:"completedGames"`
	TotalScore     int        `json:"totalScore"`
	AverageScore   int        `json:"averageScore"`
	BestScore      int        `json:"bestScore"`
	CompletionRate int        `json:"completionRate"`
	LastPlayed     *time.Time `json:"lastPlayed,omitempty"`
}

// touched filters out sessions with no real progress: a session still at the
// initial score and not completed means the player started but never guessed.
func touched(s *model.GameSession) bool {
	return s.IsCompleted || s.Score != InitialScore
}

// Rank orders a round's sessions into leaderboard entries. Score is the
// primary key, descending. On score ties completed sessions rank before
// incomplete ones, and among completed sessions the earlier finish wins.
// Remaining ties keep their incoming order.
func Rank(sessions []model.GameSession) []Entry {
	entries := make([]Entry, 0, len(sessions))
	for i := range sessions {
		s := &sessions[i]
		if !touched(s) {
			continue
		}
		entries = append(entries, Entry{
			UserID:      s.UserID,
			UserName:    s.UserName,
			Score:       s.Score,
			IsCompleted: s.IsCompleted,
			CompletedAt: s.CompletedAt,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.IsCompleted != b.IsCompleted {
			return a.IsCompleted
		}
		if a.IsCompleted && b.IsCompleted && a.CompletedAt != nil && b.CompletedAt != nil {
			return a.CompletedAt.Before(*b.CompletedAt)
		}
		return false
	})

	for i := range entries {
		entries[i].Position = i + 1
	}
	return entries
}

// AggregatePlayers folds every touched session into per-player totals and
// orders them: completion rate desc, then games played desc, then average
// score desc, then best score desc.
func AggregatePlayers(sessions []model.GameSession) []PlayerStats {
	byUser := make(map[int64]*PlayerStats)
	var order []int64

	for i := range sessions {
		s := &sessions[i]
		if !touched(s) {
			continue
		}

		stats, ok := byUser[s.UserID]
		if !ok {
			stats = &PlayerStats{UserID: s.UserID, UserName: s.UserName}
			byUser[s.UserID] = stats
			order = append(order, s.UserID)
		}

		stats.TotalGames++
		if s.IsCompleted {
			stats.CompletedGames++
		}
		stats.TotalScore += s.Score
		if s.Score > stats.BestScore {
			stats.BestScore = s.Score
		}
		started := s.StartedAt
		if stats.LastPlayed == nil || started.After(*stats.LastPlayed) {
			stats.LastPlayed = &started
		}
	}

	result := make([]PlayerStats, 0, len(order))
	for _, id := range order {
		stats := byUser[id]
		stats.AverageScore = roundDiv(stats.TotalScore, stats.TotalGames)
		stats.CompletionRate = roundDiv(stats.CompletedGames*100, stats.TotalGames)
		result = append(result, *stats)
	}

	sort.SliceStable(result, func(i, j int) bool {
		a, b := result[i], result[j]
		if a.CompletionRate != b.CompletionRate {
			return a.CompletionRate > b.CompletionRate
		}
		if a.TotalGames != b.TotalGames {
			return a.TotalGames > b.TotalGames
		}
		if a.AverageScore != b.AverageScore {
			return a.AverageScore > b.AverageScore
		}
		return a.BestScore > b.BestScore
	})

	return result
}

func roundDiv(num, den int) int {
	if den == 0 {
		return 0
	}
	return int(float64(num)/float64(den) + 0.5)
}
