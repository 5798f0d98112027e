package handlers

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"github.com/guess-tone/tone_api/dto"
)

// WebhookHandler is the inbound Telegram glue: it parses updates and answers
// through the injected sender. Game logic never lives here.
type WebhookHandler struct {
	telegramSvc TelegramServiceInterface
}

func NewWebhookHandler(telegramSvc TelegramServiceInterface) *WebhookHandler {
	return &WebhookHandler{telegramSvc: telegramSvc}
}

const welcomeText = `<b>🎵 سلام! به بازی حدس آهنگ خوش اومدی!</b>

🎯 در این بازی، باید نام خواننده و آهنگ رو حدس بزنی.

برای شروع و مشاهده لیست بازی‌های فعال، از دکمه زیر استفاده کن. می‌تونی این بازی رو به گروه‌هات هم اضافه کنی و با دوستات رقابت کنی!`

const helpText = `<b>🆘 راهنمای بازی حدس آهنگ</b>

<b>🎯 هدف بازی:</b>
حدس زدن کامل نام آهنگ و نام خواننده با انتخاب حروف صحیح.

<b>🏆 نحوه امتیازدهی:</b>
- هر بازی با <b>1000 امتیاز</b> اولیه شروع می‌شود.
- هر حرف اشتباه: <b>-20 امتیاز</b>.
- راهنمایی متنی: <b>-30 امتیاز</b>.
- راهنمایی تصویری: <b>-100 امتیاز</b>.
- حدس کامل نام آهنگ: <b>+100 امتیاز</b>.
- حدس کامل نام خواننده: <b>+100 امتیاز</b>.
- جایزه زمان: اگر بازی را زیر <b>۶۰۰ ثانیه (۱۰ دقیقه)</b> تمام کنید، ثانیه‌های باقی‌مانده به امتیاز شما اضافه می‌شود.

<b>🎮 دستورات:</b>
/start - شروع و معرفی بات
/games - نمایش لیست بازی‌های فعال
/help - نمایش این راهنما`

// @Summary Telegram webhook
// @Description Receive bot updates: commands, callback queries, inline queries
// @Tags telegram
// @Accept json
// @Produce json
// @Success 200 {object} map[string]bool
// @Router /api/v1/webhook [post]
func (h *WebhookHandler) HandleUpdate(c *fiber.Ctx) error {
	var update dto.TelegramUpdate
	if err := c.BodyParser(&update); err != nil {
		log.WithError(err).Warn("Unparseable webhook update")
		return c.JSON(fiber.Map{"ok": true})
	}

	switch {
	case update.InlineQuery != nil:
		h.handleInlineQuery(c, update.InlineQuery)
	case update.CallbackQuery != nil:
		h.handleCallbackQuery(c, update.CallbackQuery)
	case update.Message != nil:
		h.handleMessage(c, update.Message)
	}

	return c.JSON(fiber.Map{"ok": true})
}

// @Summary Webhook health
// @Tags telegram
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/webhook [get]
func (h *WebhookHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"ok":        true,
		"message":   "Telegram webhook is active",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *WebhookHandler) handleInlineQuery(c *fiber.Ctx, q *dto.TelegramInlineQuery) {
	results := []fiber.Map{
		{
			"type":            "game",
			"id":              "1",
			"game_short_name": h.telegramSvc.GameShortName(),
		},
	}
	if err := h.telegramSvc.AnswerInlineQuery(c.UserContext(), q.ID, results); err != nil {
		log.WithError(err).Warn("Failed to answer inline query")
	}
}

func (h *WebhookHandler) handleCallbackQuery(c *fiber.Ctx, q *dto.TelegramCallbackQuery) {
	ctx := c.UserContext()

	var chatID int64
	if q.Message != nil {
		chatID = q.Message.Chat.ID
	}

	switch {
	case q.Data == "start_game" && chatID != 0:
		if err := h.telegramSvc.SendGame(ctx, chatID); err != nil {
			log.WithError(err).Warn("Failed to send game")
		}
		_ = h.telegramSvc.AnswerCallbackQuery(ctx, q.ID, "بازی ارسال شد! 🎮", "")

	case q.GameShortName != "":
		gameURL := h.buildGameURL(q, chatID)
		if err := h.telegramSvc.AnswerCallbackQuery(ctx, q.ID, "", gameURL); err != nil {
			log.WithError(err).Warn("Failed to answer game launch")
		}

	default:
		_ = h.telegramSvc.AnswerCallbackQuery(ctx, q.ID, "", "")
	}
}

// buildGameURL opens the Mini-App with the player's identity and the message
// coordinates the score relay needs later.
func (h *WebhookHandler) buildGameURL(q *dto.TelegramCallbackQuery, chatID int64) string {
	params := url.Values{}
	params.Set("user_id", fmt.Sprintf("%d", q.From.ID))
	params.Set("query_id", q.ID)
	params.Set("first_name", q.From.FirstName)
	if q.From.LastName != "" {
		params.Set("last_name", q.From.LastName)
	}
	if q.From.Username != "" {
		params.Set("username", q.From.Username)
	}
	if chatID != 0 {
		params.Set("chat_id", fmt.Sprintf("%d", chatID))
		if q.Message != nil {
			params.Set("message_id", fmt.Sprintf("%d", q.Message.MessageID))
		}
	}
	if q.InlineMessageID != "" {
		params.Set("inline_message_id", q.InlineMessageID)
	}
	if q.ChatInstance != "" {
		params.Set("chat_instance", q.ChatInstance)
	}

	return h.telegramSvc.WebAppURL() + "?" + params.Encode()
}

func (h *WebhookHandler) handleMessage(c *fiber.Ctx, m *dto.TelegramMessage) {
	ctx := c.UserContext()

	webAppKeyboard := fiber.Map{
		"inline_keyboard": [][]fiber.Map{
			{
				{
					"text":    "🎮 نمایش لیست بازی‌ها",
					"web_app": fiber.Map{"url": h.telegramSvc.WebAppURL()},
				},
			},
			{
				{
					"text":                "📢 اشتراک‌گذاری بازی",
					"switch_inline_query": "",
				},
			},
		},
	}

	switch {
	case strings.HasPrefix(m.Text, "/start"):
		if err := h.telegramSvc.SendMessage(ctx, m.Chat.ID, welcomeText, webAppKeyboard); err != nil {
			log.WithError(err).Warn("Failed to send welcome message")
		}

	case strings.HasPrefix(m.Text, "/games"):
		keyboard := fiber.Map{
			"inline_keyboard": [][]fiber.Map{
				{
					{
						"text":    "🎮 باز کردن لیست بازی‌ها",
						"web_app": fiber.Map{"url": h.telegramSvc.WebAppURL()},
					},
				},
			},
		}
		if err := h.telegramSvc.SendMessage(ctx, m.Chat.ID, "برای مشاهده و انتخاب بازی، لطفا روی دکمه زیر کلیک کن.", keyboard); err != nil {
			log.WithError(err).Warn("Failed to send games message")
		}

	case strings.HasPrefix(m.Text, "/help"):
		if err := h.telegramSvc.SendMessage(ctx, m.Chat.ID, helpText, nil); err != nil {
			log.WithError(err).Warn("Failed to send help message")
		}
	}
}
