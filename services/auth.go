package services

import (
	"crypto/subtle"
	"fmt"
	"os"

	appContext "github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"

	"github.com/guess-tone/tone_api/dto"
	"github.com/guess-tone/tone_api/shared"
)

// AuthService is the admin panel's credential check: a single configured
// password exchanged for a JWT. There are no user accounts.
type AuthService struct {
	appContext.DefaultService

	jwtSvc *JWTService

	adminPassword string
}

const AUTH_SVC = "auth_svc"

func (svc AuthService) Id() string {
	return AUTH_SVC
}

func (svc *AuthService) Configure(ctx *appContext.Context) error {
	svc.adminPassword = os.Getenv("ADMIN_PASSWORD")
	if svc.adminPassword == "" {
		return fmt.Errorf("ADMIN_PASSWORD is not set")
	}
	return svc.DefaultService.Configure(ctx)
}

func (svc *AuthService) Start() error {
	svc.jwtSvc = svc.Service(JWT_SVC).(*JWTService)
	return nil
}

func (svc *AuthService) Login(req dto.AdminLoginRequest) (*dto.AdminLoginResponse, error) {
	if subtle.ConstantTimeCompare([]byte(req.Password), []byte(svc.adminPassword)) != 1 {
		log.Warn("Rejected admin login attempt")
		return nil, shared.NewUnauthorizedError("Invalid credentials", nil)
	}

	token, err := svc.jwtSvc.IssueAdminToken()
	if err != nil {
		return nil, err
	}

	return &dto.AdminLoginResponse{
		Token:     token,
		ExpiresIn: int64(svc.jwtSvc.TokenDuration.Seconds()),
	}, nil
}
