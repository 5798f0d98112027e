package main

import (
	"github.com/alphabatem/common/context"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/guess-tone/tone_api/middleware"
	"github.com/guess-tone/tone_api/services"
)

// @title Guess Tone API
// @version 1.0
// @description Telegram Mini-App backend for the song guessing game
func main() {
	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("No .env file loaded")
	}

	ctx, err := context.NewCtx(
		&services.MonitoringService{},
		&services.RedisService{},
		&services.JWTService{},
		&services.AuthService{},
		&services.MinIOService{},
		&services.TelegramService{},
		&services.GameService{},
		&services.LeaderboardService{},
		&services.MediaService{},
		&middleware.AuthMiddleware{},

		&services.HttpService{},
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to configure services")
		return
	}

	if err = ctx.Run(); err != nil {
		log.Fatal().Err(err).Msg("Service runtime error")
		return
	}
}
