package dto

import (
	"time"

	"github.com/guess-tone/tone_api/model"
)

// ==================== ROUND AUTHORING DTOs ====================

type CreateGameRequest struct {
	SongName   string    `json:"songName" validate:"required" example:"Bohemian Rhapsody"`
	SingerName string    `json:"singerName" validate:"required" example:"Queen"`
	StartTime  time.Time `json:"startTime" validate:"required" example:"2025-01-01T18:00:00Z"`
	EndTime    time.Time `json:"endTime" validate:"required,gtfield=StartTime" example:"2025-01-01T20:00:00Z"`
	Language   string    `json:"language" validate:"omitempty,oneof=fa en" example:"fa"`
	TextHint   string    `json:"textHint,omitempty" example:"A 1975 rock opera"`
	ImageURL   string    `json:"imageUrl,omitempty" validate:"omitempty,url"`
}

func (r CreateGameRequest) Validate() error {
	return GetValidator().Struct(r)
}

type UpdateGameRequest struct {
	SongName   string    `json:"songName" validate:"required"`
	SingerName string    `json:"singerName" validate:"required"`
	StartTime  time.Time `json:"startTime" validate:"required"`
	EndTime    time.Time `json:"endTime" validate:"required,gtfield=StartTime"`
	TextHint   string    `json:"textHint,omitempty"`
	ImageURL   string    `json:"imageUrl,omitempty" validate:"omitempty,url"`
}

func (r UpdateGameRequest) Validate() error {
	return GetValidator().Struct(r)
}

type GameResponse struct {
	Game model.Game `json:"game"`
}

type GameListResponse struct {
	Games []model.Game `json:"games"`
}
