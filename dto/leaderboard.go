package dto

import "github.com/guess-tone/tone_api/game"

type GameLeaderboardResponse struct {
	Leaderboard  []game.Entry `json:"leaderboard"`
	TotalPlayers int          `json:"totalPlayers"`
}

// GlobalStats is the summary block shown above the cross-round leaderboard.
type GlobalStats struct {
	TotalPlayers      int `json:"totalPlayers"`
	TotalGames        int `json:"totalGames"`
	TotalSessions     int `json:"totalSessions"`
	CompletedSessions int `json:"completedSessions"`
	CompletionRate    int `json:"completionRate"`
	AverageScore      int `json:"averageScore"`
}

type GlobalLeaderboardResponse struct {
	Leaderboard []game.PlayerStats `json:"leaderboard"`
	Stats       GlobalStats        `json:"stats"`
}
