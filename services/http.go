package services

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/alphabatem/common/context"
	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"

	docs "github.com/guess-tone/tone_api/docs"
	"github.com/guess-tone/tone_api/middleware"
	"github.com/guess-tone/tone_api/services/handlers"
	"github.com/guess-tone/tone_api/shared"
)

type HttpService struct {
	context.DefaultService

	gameSvc        *GameService
	leaderboardSvc *LeaderboardService
	telegramSvc    *TelegramService
	authSvc        *AuthService
	mediaSvc       *MediaService
	monitoringSvc  *MonitoringService
	authMiddleware *middleware.AuthMiddleware

	port   int
	server *fiber.App
}

const HTTP_SVC = "http_svc"

func (svc HttpService) Id() string {
	return HTTP_SVC
}

func (svc *HttpService) Configure(ctx *context.Context) error {
	if port := os.Getenv("HTTP_PORT"); port != "" {
		var err error
		if svc.port, err = strconv.Atoi(port); err != nil {
			return err
		}
	} else {
		svc.port = 8000
	}

	return svc.DefaultService.Configure(ctx)
}

func (svc *HttpService) Start() error {
	svc.gameSvc = svc.Service(GAME_SVC).(*GameService)
	svc.leaderboardSvc = svc.Service(LEADERBOARD_SVC).(*LeaderboardService)
	svc.telegramSvc = svc.Service(TELEGRAM_SVC).(*TelegramService)
	svc.authSvc = svc.Service(AUTH_SVC).(*AuthService)
	svc.mediaSvc = svc.Service(MEDIA_SVC).(*MediaService)
	svc.monitoringSvc = svc.Service(MONITORING_SVC).(*MonitoringService)
	svc.authMiddleware = svc.Service(middleware.AUTH_MIDDLEWARE_SVC).(*middleware.AuthMiddleware)

	docs.SwaggerInfo.BasePath = ""

	svc.server = fiber.New(fiber.Config{
		JSONEncoder:  sonic.Marshal,
		JSONDecoder:  sonic.Unmarshal,
		ErrorHandler: svc.errorHandler,
	})

	svc.server.Use(recover.New())
	svc.server.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	svc.server.Use(MonitoringMiddleware(svc.monitoringSvc))

	gameHandler := handlers.NewGameHandler(svc.gameSvc)
	leaderboardHandler := handlers.NewLeaderboardHandler(svc.leaderboardSvc)
	adminHandler := handlers.NewAdminHandler(svc.gameSvc, svc.authSvc, svc.mediaSvc)
	scoreHandler := handlers.NewScoreHandler(svc.telegramSvc)
	webhookHandler := handlers.NewWebhookHandler(svc.telegramSvc)

	svc.server.Get("/ping", svc.ping)
	svc.server.Get("/swagger/*", swagger.HandlerDefault)

	v1 := svc.server.Group("/api/v1")
	v1.Get("/ping", svc.ping)

	v1.Get("/games", gameHandler.ListGames)
	v1.Get("/games/:gameId", gameHandler.GetGame)
	v1.Post("/games/start", gameHandler.StartSession)
	v1.Get("/games/:gameId/session", gameHandler.GetSession)
	v1.Put("/games/:gameId/session/:userId", gameHandler.ApplyAction)
	v1.Put("/games/:gameId/session/by-id/:sessionId", gameHandler.ApplyActionBySession)

	v1.Get("/games/:gameId/leaderboard", leaderboardHandler.GetGameLeaderboard)
	v1.Get("/leaderboard", leaderboardHandler.GetGlobalLeaderboard)

	v1.Post("/scores", scoreHandler.SubmitScore)
	v1.Get("/scores", scoreHandler.GetScores)

	v1.Post("/webhook", webhookHandler.HandleUpdate)
	v1.Get("/webhook", webhookHandler.Health)

	v1.Post("/admin/login", adminHandler.Login)

	admin := v1.Group("/admin", svc.authMiddleware.RequireAdmin())
	admin.Get("/games", adminHandler.ListGames)
	admin.Post("/games", adminHandler.CreateGame)
	admin.Get("/games/:gameId", adminHandler.GetGame)
	admin.Put("/games/:gameId", adminHandler.UpdateGame)
	admin.Delete("/games/:gameId", adminHandler.DeleteGame)
	admin.Post("/games/:gameId/image", adminHandler.UploadHintImage)

	return svc.server.Listen(fmt.Sprintf(":%v", svc.port))
}

func (svc *HttpService) Shutdown() {
	if svc.server != nil {
		_ = svc.server.Shutdown()
	}
}

// @Summary Ping
// @Description This endpoint checks the health of the service
// @Tags health
// @Accept  json
// @Produce json
// @Success 200 {object} shared.Response{data=string}
// @Router /ping [get]
func (svc *HttpService) ping(c *fiber.Ctx) error {
	c.Set(fiber.HeaderCacheControl, "max-age=10")

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", "pong")
}

func (svc *HttpService) errorHandler(c *fiber.Ctx, err error) error {
	if appErr, ok := shared.GetAppError(err); ok {
		return shared.ResponseJSON(c, appErr.StatusCode, appErr.Message, appErr.Data)
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return shared.ResponseJSON(c, fiberErr.Code, fiberErr.Message, nil)
	}

	return shared.ResponseInternalError(c, err)
}
