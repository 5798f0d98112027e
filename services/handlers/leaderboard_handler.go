package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/guess-tone/tone_api/shared"
)

type LeaderboardHandler struct {
	leaderboardSvc LeaderboardServiceInterface
}

func NewLeaderboardHandler(leaderboardSvc LeaderboardServiceInterface) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboardSvc: leaderboardSvc}
}

// @Summary Get game leaderboard
// @Description Ranked standings for one round
// @Tags leaderboard
// @Accept json
// @Produce json
// @Param gameId path string true "Game ID"
// @Success 200 {object} shared.Response{data=dto.GameLeaderboardResponse}
// @Router /api/v1/games/{gameId}/leaderboard [get]
func (h *LeaderboardHandler) GetGameLeaderboard(c *fiber.Ctx) error {
	leaderboard, err := h.leaderboardSvc.GameLeaderboard(c.UserContext(), c.Params("gameId"))
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", leaderboard)
}

// @Summary Get global leaderboard
// @Description Per-player aggregates across every round
// @Tags leaderboard
// @Accept json
// @Produce json
// @Success 200 {object} shared.Response{data=dto.GlobalLeaderboardResponse}
// @Router /api/v1/leaderboard [get]
func (h *LeaderboardHandler) GetGlobalLeaderboard(c *fiber.Ctx) error {
	leaderboard, err := h.leaderboardSvc.GlobalLeaderboard(c.UserContext())
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", leaderboard)
}
