package dto

import "github.com/guess-tone/tone_api/model"

// ==================== PLAY DTOs ====================

const (
	ActionGuessLetter  = "guess_letter"
	ActionUseTextHint  = "use_text_hint"
	ActionUseImageHint = "use_image_hint"
)

type StartSessionRequest struct {
	GameID   string `json:"gameId" validate:"required"`
	UserID   int64  `json:"userId" validate:"required"`
	UserName string `json:"userName" validate:"required,max=64"`
}

func (r StartSessionRequest) Validate() error {
	return GetValidator().Struct(r)
}

type StartSessionResponse struct {
	Game    model.Game        `json:"game"`
	Session model.GameSession `json:"session"`
}

type SessionActionRequest struct {
	Action string `json:"action" validate:"required,oneof=guess_letter use_text_hint use_image_hint"`
	Letter string `json:"letter,omitempty"`
}

func (r SessionActionRequest) Validate() error {
	return GetValidator().Struct(r)
}

// SessionActionResponse returns the mutated session plus the action-specific
// result: IsCorrect for guesses, the hint payloads for hint actions.
type SessionActionResponse struct {
	Session   model.GameSession `json:"session"`
	IsCorrect *bool             `json:"isCorrect,omitempty"`
	TextHint  string            `json:"textHint,omitempty"`
	ImageURL  string            `json:"imageUrl,omitempty"`
}

type SessionResponse struct {
	Session model.GameSession `json:"session"`
}
