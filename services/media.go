package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	appContext "github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"

	"github.com/guess-tone/tone_api/shared"
)

// MediaService stores admin-uploaded hint images and writes the resulting
// public URL onto the round record.
type MediaService struct {
	appContext.DefaultService

	gameSvc  *GameService
	redisSvc *RedisService
	minioSvc *MinIOService
}

const MEDIA_SVC = "media_svc"

func (svc MediaService) Id() string {
	return MEDIA_SVC
}

func (svc *MediaService) Configure(ctx *appContext.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *MediaService) Start() error {
	svc.gameSvc = svc.Service(GAME_SVC).(*GameService)
	svc.redisSvc = svc.Service(REDIS_SVC).(*RedisService)
	svc.minioSvc = svc.Service(MINIO_SVC).(*MinIOService)
	return nil
}

// UploadHintImage validates and stores an image for a round, then saves the
// object URL as the round's image hint.
func (svc *MediaService) UploadHintImage(ctx context.Context, gameID string, file *multipart.FileHeader) (string, error) {
	g, err := svc.gameSvc.GetGame(ctx, gameID)
	if err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	contentType, ok := imageContentTypes[ext]
	if !ok {
		return "", shared.NewBadRequestError("Invalid image format. Supported: JPG, PNG, WEBP", nil)
	}
	if file.Size > 5*1024*1024 {
		return "", shared.NewBadRequestError("Image too large. Maximum size: 5MB", nil)
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	objectName := fmt.Sprintf("hints/%s/%d%s", gameID, time.Now().UnixMilli(), ext)
	if err := svc.minioSvc.UploadFile(ctx, objectName, src, file.Size, contentType); err != nil {
		return "", err
	}

	g.ImageURL = svc.minioSvc.PublicURL(objectName)
	g.UpdatedAt = time.Now()
	if err := svc.redisSvc.Set(ctx, shared.GameKey(g.ID), g); err != nil {
		return "", err
	}

	log.WithField("gameId", gameID).
		WithField("object", objectName).
		Info("Hint image uploaded")

	return g.ImageURL, nil
}

var imageContentTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
}
