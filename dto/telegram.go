package dto

// Telegram Bot API shapes, limited to the fields the webhook actually reads.

type TelegramUser struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name,omitempty"`
	Username  string `json:"username,omitempty"`
}

type TelegramChat struct {
	ID    int64  `json:"id"`
	Title string `json:"title,omitempty"`
	Type  string `json:"type"`
}

type TelegramMessage struct {
	MessageID int          `json:"message_id"`
	From      TelegramUser `json:"from"`
	Chat      TelegramChat `json:"chat"`
	Text      string       `json:"text,omitempty"`
	Date      int64        `json:"date"`
}

type TelegramCallbackQuery struct {
	ID              string           `json:"id"`
	From            TelegramUser     `json:"from"`
	Message         *TelegramMessage `json:"message,omitempty"`
	InlineMessageID string           `json:"inline_message_id,omitempty"`
	ChatInstance    string           `json:"chat_instance"`
	Data            string           `json:"data,omitempty"`
	GameShortName   string           `json:"game_short_name,omitempty"`
}

type TelegramInlineQuery struct {
	ID     string       `json:"id"`
	From   TelegramUser `json:"from"`
	Query  string       `json:"query"`
	Offset string       `json:"offset"`
}

type TelegramUpdate struct {
	UpdateID      int64                  `json:"update_id"`
	Message       *TelegramMessage       `json:"message,omitempty"`
	CallbackQuery *TelegramCallbackQuery `json:"callback_query,omitempty"`
	InlineQuery   *TelegramInlineQuery   `json:"inline_query,omitempty"`
}

// DisplayName formats a player's name the way leaderboards show it: first
// plus last name, trimmed to 30 runes.
func (u TelegramUser) DisplayName() string {
	name := u.FirstName
	if u.LastName != "" {
		name += " " + u.LastName
	}
	runes := []rune(name)
	if len(runes) > 30 {
		name = string(runes[:27]) + "..."
	}
	return name
}
