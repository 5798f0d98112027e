package services

import (
	"context"

	appContext "github.com/alphabatem/common/context"

	"github.com/guess-tone/tone_api/dto"
	"github.com/guess-tone/tone_api/game"
	"github.com/guess-tone/tone_api/shared"
)

// LeaderboardService derives standings from session snapshots; it never
// mutates them.
type LeaderboardService struct {
	appContext.DefaultService

	gameSvc  *GameService
	redisSvc *RedisService
}

const LEADERBOARD_SVC = "leaderboard_svc"

func (svc LeaderboardService) Id() string {
	return LEADERBOARD_SVC
}

func (svc *LeaderboardService) Configure(ctx *appContext.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *LeaderboardService) Start() error {
	svc.gameSvc = svc.Service(GAME_SVC).(*GameService)
	svc.redisSvc = svc.Service(REDIS_SVC).(*RedisService)
	return nil
}

// GameLeaderboard ranks one round's sessions. Round existence is checked
// against the index set, which is cheaper than loading the full record.
func (svc *LeaderboardService) GameLeaderboard(ctx context.Context, gameID string) (*dto.GameLeaderboardResponse, error) {
	known, err := svc.redisSvc.SIsMember(ctx, shared.GameIndexKey, gameID)
	if err != nil {
		return nil, err
	}
	if !known {
		return nil, shared.NewNotFoundError("Game not found", nil)
	}

	sessions, err := svc.gameSvc.GameSessions(ctx, gameID)
	if err != nil {
		return nil, err
	}

	entries := game.Rank(sessions)
	return &dto.GameLeaderboardResponse{
		Leaderboard:  entries,
		TotalPlayers: len(entries),
	}, nil
}

// GlobalLeaderboard aggregates per-player totals across every round still in
// the index. Sessions of deleted rounds are skipped.
func (svc *LeaderboardService) GlobalLeaderboard(ctx context.Context) (*dto.GlobalLeaderboardResponse, error) {
	gameIDs, err := svc.redisSvc.SMembers(ctx, shared.GameIndexKey)
	if err != nil {
		return nil, err
	}

	sessions, err := svc.gameSvc.AllSessions(ctx)
	if err != nil {
		return nil, err
	}

	known := make(map[string]bool, len(gameIDs))
	for _, id := range gameIDs {
		known[id] = true
	}

	live := sessions[:0]
	for _, s := range sessions {
		if known[s.GameID] {
			live = append(live, s)
		}
	}

	stats := dto.GlobalStats{TotalGames: len(gameIDs)}
	totalScore := 0
	for i := range live {
		if live[i].IsCompleted || live[i].Score != game.InitialScore {
			stats.TotalSessions++
			totalScore += live[i].Score
			if live[i].IsCompleted {
				stats.CompletedSessions++
			}
		}
	}
	if stats.TotalSessions > 0 {
		stats.CompletionRate = int(float64(stats.CompletedSessions)/float64(stats.TotalSessions)*100 + 0.5)
		stats.AverageScore = int(float64(totalScore)/float64(stats.TotalSessions) + 0.5)
	}

	players := game.AggregatePlayers(live)
	stats.TotalPlayers = len(players)

	return &dto.GlobalLeaderboardResponse{
		Leaderboard: players,
		Stats:       stats,
	}, nil
}
