package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"github.com/guess-tone/tone_api/dto"
	"github.com/guess-tone/tone_api/shared"
)

// ScoreHandler relays click mini-game results to the Telegram scoreboard.
// Telegram is the store of record; nothing is persisted locally.
type ScoreHandler struct {
	telegramSvc TelegramServiceInterface
}

func NewScoreHandler(telegramSvc TelegramServiceInterface) *ScoreHandler {
	return &ScoreHandler{telegramSvc: telegramSvc}
}

// @Summary Submit click-game score
// @Description Write a score to the Telegram scoreboard and return the updated high scores
// @Tags scores
// @Accept json
// @Produce json
// @Param scoreSubmission body dto.ScoreSubmission true "Score submission"
// @Success 200 {object} shared.Response{data=dto.ScoreResponse}
// @Router /api/v1/scores [post]
func (h *ScoreHandler) SubmitScore(c *fiber.Ctx) error {
	var sub dto.ScoreSubmission
	if err := c.BodyParser(&sub); err != nil {
		return shared.ResponseBadRequest(c, "Invalid request body")
	}

	if err := sub.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}
	if !sub.HasTarget() {
		return shared.ResponseBadRequest(c, "Either inlineMessageId or both chatId and messageId are required")
	}

	ctx := c.UserContext()
	if err := h.telegramSvc.SetGameScore(ctx, sub); err != nil {
		return err
	}

	scores, err := h.telegramSvc.GetGameHighScores(ctx, sub.UserID, sub.ChatID, sub.MessageID, sub.InlineMessageID)
	if err != nil {
		return err
	}

	log.WithField("userId", sub.UserID).
		WithField("score", sub.Score).
		Info("Click-game score saved")

	return shared.ResponseJSON(c, fiber.StatusOK, "Score saved successfully", dto.ScoreResponse{Scores: scores})
}

// @Summary Get click-game high scores
// @Tags scores
// @Accept json
// @Produce json
// @Param userId query int true "Player ID"
// @Param chatId query int false "Chat ID"
// @Param messageId query int false "Message ID"
// @Param inlineMessageId query string false "Inline message ID"
// @Success 200 {object} shared.Response{data=dto.ScoreResponse}
// @Router /api/v1/scores [get]
func (h *ScoreHandler) GetScores(c *fiber.Ctx) error {
	userID, err := strconv.ParseInt(c.Query("userId"), 10, 64)
	if err != nil {
		return shared.ResponseBadRequest(c, "userId parameter is required")
	}

	chatID, _ := strconv.ParseInt(c.Query("chatId"), 10, 64)
	messageID, _ := strconv.Atoi(c.Query("messageId"))
	inlineMessageID := c.Query("inlineMessageId")

	if inlineMessageID == "" && (chatID == 0 || messageID == 0) {
		return shared.ResponseBadRequest(c, "Either inlineMessageId or both chatId and messageId are required")
	}

	scores, err := h.telegramSvc.GetGameHighScores(c.UserContext(), userID, chatID, messageID, inlineMessageID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", dto.ScoreResponse{Scores: scores})
}
