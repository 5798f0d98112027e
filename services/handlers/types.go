package handlers

import (
	"context"
	"mime/multipart"

	"github.com/guess-tone/tone_api/dto"
	"github.com/guess-tone/tone_api/model"
)

type GameServiceInterface interface {
	CreateGame(ctx context.Context, req dto.CreateGameRequest) (*model.Game, error)
	UpdateGame(ctx context.Context, gameID string, req dto.UpdateGameRequest) (*model.Game, error)
	DeleteGame(ctx context.Context, gameID string) error
	GetGame(ctx context.Context, gameID string) (*model.Game, error)
	ListGames(ctx context.Context) ([]model.Game, error)
	AdminListGames(ctx context.Context) ([]model.Game, error)
	StartSession(ctx context.Context, req dto.StartSessionRequest) (*dto.StartSessionResponse, error)
	GetSession(ctx context.Context, gameID string, userID int64) (*model.GameSession, error)
	ApplyAction(ctx context.Context, gameID string, userID int64, req dto.SessionActionRequest) (*dto.SessionActionResponse, error)
	ApplyActionBySession(ctx context.Context, gameID, sessionID string, req dto.SessionActionRequest) (*dto.SessionActionResponse, error)
}

type LeaderboardServiceInterface interface {
	GameLeaderboard(ctx context.Context, gameID string) (*dto.GameLeaderboardResponse, error)
	GlobalLeaderboard(ctx context.Context) (*dto.GlobalLeaderboardResponse, error)
}

type TelegramServiceInterface interface {
	SendMessage(ctx context.Context, chatID int64, text string, replyMarkup interface{}) error
	SendGame(ctx context.Context, chatID int64) error
	AnswerCallbackQuery(ctx context.Context, callbackQueryID, text, url string) error
	AnswerInlineQuery(ctx context.Context, inlineQueryID string, results interface{}) error
	SetGameScore(ctx context.Context, sub dto.ScoreSubmission) error
	GetGameHighScores(ctx context.Context, userID int64, chatID int64, messageID int, inlineMessageID string) ([]dto.HighScore, error)
	WebAppURL() string
	GameShortName() string
}

type AuthServiceInterface interface {
	Login(req dto.AdminLoginRequest) (*dto.AdminLoginResponse, error)
}

type MediaServiceInterface interface {
	UploadHintImage(ctx context.Context, gameID string, file *multipart.FileHeader) (string, error)
}
