package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/guess-tone/tone_api/dto"
	"github.com/guess-tone/tone_api/shared"
)

type GameHandler struct {
	gameSvc GameServiceInterface
}

func NewGameHandler(gameSvc GameServiceInterface) *GameHandler {
	return &GameHandler{gameSvc: gameSvc}
}

// @Summary List games
// @Description List every round; rounds that have not started are sanitized
// @Tags games
// @Accept json
// @Produce json
// @Success 200 {object} shared.Response{data=dto.GameListResponse}
// @Router /api/v1/games [get]
func (h *GameHandler) ListGames(c *fiber.Ctx) error {
	games, err := h.gameSvc.ListGames(c.UserContext())
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", dto.GameListResponse{Games: games})
}

// @Summary Get game
// @Description Fetch one round by id
// @Tags games
// @Accept json
// @Produce json
// @Param gameId path string true "Game ID"
// @Success 200 {object} shared.Response{data=dto.GameResponse}
// @Router /api/v1/games/{gameId} [get]
func (h *GameHandler) GetGame(c *fiber.Ctx) error {
	g, err := h.gameSvc.GetGame(c.UserContext(), c.Params("gameId"))
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", dto.GameResponse{Game: *g})
}

// @Summary Start session
// @Description Create the caller's session for an active round, idempotently
// @Tags games
// @Accept json
// @Produce json
// @Param startRequest body dto.StartSessionRequest true "Player identity"
// @Success 200 {object} shared.Response{data=dto.StartSessionResponse}
// @Router /api/v1/games/start [post]
func (h *GameHandler) StartSession(c *fiber.Ctx) error {
	var req dto.StartSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.ResponseBadRequest(c, "Invalid request body")
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	resp, err := h.gameSvc.StartSession(c.UserContext(), req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", resp)
}

// @Summary Get session
// @Description Fetch the caller's session for a round; not gated by the play window
// @Tags games
// @Accept json
// @Produce json
// @Param gameId path string true "Game ID"
// @Param userId query int true "Player ID"
// @Success 200 {object} shared.Response{data=dto.SessionResponse}
// @Router /api/v1/games/{gameId}/session [get]
func (h *GameHandler) GetSession(c *fiber.Ctx) error {
	userID, err := strconv.ParseInt(c.Query("userId"), 10, 64)
	if err != nil {
		return shared.ResponseBadRequest(c, "userId is required")
	}

	session, err := h.gameSvc.GetSession(c.UserContext(), c.Params("gameId"), userID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", dto.SessionResponse{Session: *session})
}

// @Summary Apply session action
// @Description Guess a letter or reveal a hint for the caller's session
// @Tags games
// @Accept json
// @Produce json
// @Param gameId path string true "Game ID"
// @Param userId path int true "Player ID"
// @Param actionRequest body dto.SessionActionRequest true "Action"
// @Success 200 {object} shared.Response{data=dto.SessionActionResponse}
// @Router /api/v1/games/{gameId}/session/{userId} [put]
func (h *GameHandler) ApplyAction(c *fiber.Ctx) error {
	userID, err := strconv.ParseInt(c.Params("userId"), 10, 64)
	if err != nil {
		return shared.ResponseBadRequest(c, "userId must be numeric")
	}

	var req dto.SessionActionRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.ResponseBadRequest(c, "Invalid request body")
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	resp, err := h.gameSvc.ApplyAction(c.UserContext(), c.Params("gameId"), userID, req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", resp)
}

// @Summary Apply session action by session id
// @Description Variant of the action endpoint addressed by session id
// @Tags games
// @Accept json
// @Produce json
// @Param gameId path string true "Game ID"
// @Param sessionId path string true "Session ID"
// @Param actionRequest body dto.SessionActionRequest true "Action"
// @Success 200 {object} shared.Response{data=dto.SessionActionResponse}
// @Router /api/v1/games/{gameId}/session/by-id/{sessionId} [put]
func (h *GameHandler) ApplyActionBySession(c *fiber.Ctx) error {
	var req dto.SessionActionRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.ResponseBadRequest(c, "Invalid request body")
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	resp, err := h.gameSvc.ApplyActionBySession(c.UserContext(), c.Params("gameId"), c.Params("sessionId"), req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", resp)
}
