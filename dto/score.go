package dto

// ==================== CLICK MINI-GAME DTOs ====================

// ScoreSubmission relays a click-game result to the Telegram scoreboard.
// Either InlineMessageID or both ChatID and MessageID must be present; that
// cross-field rule is checked in the handler since it depends on Telegram's
// message addressing, not on a single field.
type ScoreSubmission struct {
	UserID          int64  `json:"userId" validate:"required"`
	UserName        string `json:"userName" validate:"required"`
	Score           int    `json:"score" validate:"gte=0"`
	Clicks          int    `json:"clicks,omitempty"`
	ChatID          int64  `json:"chatId,omitempty"`
	MessageID       int    `json:"messageId,omitempty"`
	InlineMessageID string `json:"inlineMessageId,omitempty"`
}

func (s ScoreSubmission) Validate() error {
	return GetValidator().Struct(s)
}

func (s ScoreSubmission) HasTarget() bool {
	return s.InlineMessageID != "" || (s.ChatID != 0 && s.MessageID != 0)
}

type HighScore struct {
	UserID   int64  `json:"userId"`
	UserName string `json:"userName"`
	Score    int    `json:"score"`
	Position int    `json:"position"`
}

type ScoreResponse struct {
	Scores []HighScore `json:"scores"`
}
