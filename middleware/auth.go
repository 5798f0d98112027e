package middleware

import (
	appContext "github.com/alphabatem/common/context"
	"github.com/gofiber/fiber/v2"

	"github.com/guess-tone/tone_api/services"
	"github.com/guess-tone/tone_api/shared"
)

// AuthMiddleware guards the /admin route group with the JWT issued by the
// admin login.
type AuthMiddleware struct {
	appContext.DefaultService

	jwtSvc *services.JWTService
}

const AUTH_MIDDLEWARE_SVC = "auth_middleware"

func (svc AuthMiddleware) Id() string {
	return AUTH_MIDDLEWARE_SVC
}

func (svc *AuthMiddleware) Configure(ctx *appContext.Context) error {
	svc.jwtSvc = ctx.Service(services.JWT_SVC).(*services.JWTService)
	return svc.DefaultService.Configure(ctx)
}

func (svc *AuthMiddleware) Start() error {
	return nil
}

func (svc *AuthMiddleware) RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, err := svc.jwtSvc.ExtractTokenFromHeader(c.Get(fiber.HeaderAuthorization))
		if err != nil {
			return shared.ResponseUnauthorized(c)
		}

		if err := svc.jwtSvc.VerifyAdminToken(token); err != nil {
			return shared.ResponseUnauthorized(c)
		}

		return c.Next()
	}
}
