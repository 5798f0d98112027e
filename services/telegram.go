package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	appContext "github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"

	"github.com/guess-tone/tone_api/dto"
)

// TelegramService is the outbound Bot API client: the message-sender
// collaborator injected into the webhook and score handlers. The bot token
// lives here, never in handler or game code.
type TelegramService struct {
	appContext.DefaultService

	client  *http.Client
	apiBase string

	webAppURL     string
	gameShortName string
}

const TELEGRAM_SVC = "telegram_svc"

func (svc TelegramService) Id() string {
	return TELEGRAM_SVC
}

func (svc *TelegramService) Configure(ctx *appContext.Context) error {
	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	if token == "" {
		return fmt.Errorf("TELEGRAM_BOT_TOKEN is not set")
	}

	svc.apiBase = fmt.Sprintf("https://api.telegram.org/bot%s", token)
	svc.webAppURL = os.Getenv("WEBAPP_URL")
	svc.gameShortName = os.Getenv("GAME_SHORT_NAME")
	if svc.gameShortName == "" {
		svc.gameShortName = "guess_tone"
	}

	svc.client = &http.Client{Timeout: 10 * time.Second}
	return svc.DefaultService.Configure(ctx)
}

func (svc *TelegramService) Start() error {
	return nil
}

// WebAppURL is the Mini-App address the bot's inline keyboards open.
func (svc *TelegramService) WebAppURL() string {
	return svc.webAppURL
}

// GameShortName identifies the click mini-game registered with BotFather.
func (svc *TelegramService) GameShortName() string {
	return svc.gameShortName
}

type telegramResponse struct {
	Ok          bool            `json:"ok"`
	Result      json.RawMessage `json:"result"`
	Description string          `json:"description"`
}

// call posts one Bot API method and returns the raw result payload.
func (svc *TelegramService) call(ctx context.Context, method string, payload interface{}) (json.RawMessage, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, svc.apiBase+"/"+method, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := svc.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var tgResp telegramResponse
	if err := json.NewDecoder(resp.Body).Decode(&tgResp); err != nil {
		return nil, err
	}
	if !tgResp.Ok {
		log.WithField("method", method).
			WithField("description", tgResp.Description).
			Error("Telegram API call failed")
		return nil, fmt.Errorf("telegram %s: %s", method, tgResp.Description)
	}

	return tgResp.Result, nil
}

func (svc *TelegramService) SendMessage(ctx context.Context, chatID int64, text string, replyMarkup interface{}) error {
	payload := map[string]interface{}{
		"chat_id":    chatID,
		"text":       text,
		"parse_mode": "HTML",
	}
	if replyMarkup != nil {
		payload["reply_markup"] = replyMarkup
	}

	_, err := svc.call(ctx, "sendMessage", payload)
	return err
}

func (svc *TelegramService) SendGame(ctx context.Context, chatID int64) error {
	_, err := svc.call(ctx, "sendGame", map[string]interface{}{
		"chat_id":         chatID,
		"game_short_name": svc.gameShortName,
	})
	return err
}

func (svc *TelegramService) AnswerCallbackQuery(ctx context.Context, callbackQueryID, text, url string) error {
	payload := map[string]interface{}{
		"callback_query_id": callbackQueryID,
	}
	if text != "" {
		payload["text"] = text
	}
	if url != "" {
		payload["url"] = url
	}

	_, err := svc.call(ctx, "answerCallbackQuery", payload)
	return err
}

func (svc *TelegramService) AnswerInlineQuery(ctx context.Context, inlineQueryID string, results interface{}) error {
	_, err := svc.call(ctx, "answerInlineQuery", map[string]interface{}{
		"inline_query_id": inlineQueryID,
		"results":         results,
		"cache_time":      10,
	})
	return err
}

// SetGameScore writes a click-game score to the Telegram scoreboard tied to
// the originating message.
func (svc *TelegramService) SetGameScore(ctx context.Context, sub dto.ScoreSubmission) error {
	payload := map[string]interface{}{
		"user_id": sub.UserID,
		"score":   sub.Score,
		"force":   false,
	}
	if sub.InlineMessageID != "" {
		payload["inline_message_id"] = sub.InlineMessageID
	} else {
		payload["chat_id"] = sub.ChatID
		payload["message_id"] = sub.MessageID
	}

	_, err := svc.call(ctx, "setGameScore", payload)
	return err
}

// GetGameHighScores fetches the scoreboard around one player and formats it
// for clients, best score first.
func (svc *TelegramService) GetGameHighScores(ctx context.Context, userID int64, chatID int64, messageID int, inlineMessageID string) ([]dto.HighScore, error) {
	payload := map[string]interface{}{
		"user_id": userID,
	}
	if inlineMessageID != "" {
		payload["inline_message_id"] = inlineMessageID
	} else {
		payload["chat_id"] = chatID
		payload["message_id"] = messageID
	}

	result, err := svc.call(ctx, "getGameHighScores", payload)
	if err != nil {
		return nil, err
	}

	var raw []struct {
		Position int              `json:"position"`
		User     dto.TelegramUser `json:"user"`
		Score    int              `json:"score"`
	}
	if err := json.Unmarshal(result, &raw); err != nil {
		return nil, err
	}

	scores := make([]dto.HighScore, 0, len(raw))
	for _, r := range raw {
		scores = append(scores, dto.HighScore{
			UserID:   r.User.ID,
			UserName: r.User.DisplayName(),
			Score:    r.Score,
			Position: r.Position,
		})
	}
	return scores, nil
}
