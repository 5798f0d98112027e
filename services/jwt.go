package services

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	appContext "github.com/alphabatem/common/context"
	"github.com/golang-jwt/jwt/v5"
)

// JWTService signs and verifies the admin panel bearer tokens.
type JWTService struct {
	appContext.DefaultService

	TokenDuration time.Duration
	jwtSecretKey  string
}

type AdminClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

const JWT_SVC = "jwt_svc"

const roleAdmin = "admin"

func (svc JWTService) Id() string {
	return JWT_SVC
}

func (svc *JWTService) Configure(ctx *appContext.Context) error {
	svc.TokenDuration = 24 * time.Hour
	svc.jwtSecretKey = os.Getenv("JWT_SECRET")
	if svc.jwtSecretKey == "" {
		return fmt.Errorf("JWT_SECRET is not set")
	}
	return svc.DefaultService.Configure(ctx)
}

func (svc *JWTService) Start() error {
	return nil
}

// IssueAdminToken mints a signed admin token.
func (svc *JWTService) IssueAdminToken() (string, error) {
	claims := AdminClaims{
		Role: roleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(svc.TokenDuration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(svc.jwtSecretKey))
}

// VerifyAdminToken checks signature, expiry and the admin role.
func (svc *JWTService) VerifyAdminToken(jwtToken string) error {
	token, err := jwt.ParseWithClaims(jwtToken, &AdminClaims{}, svc.getJWTKey)
	if err != nil || !token.Valid {
		return errors.New("invalid token")
	}

	claims, ok := token.Claims.(*AdminClaims)
	if !ok || claims.Role != roleAdmin {
		return errors.New("not an admin token")
	}
	return nil
}

func (svc *JWTService) ExtractTokenFromHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", errors.New("authorization header missing")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("authorization header must be a Bearer token")
	}
	return parts[1], nil
}

func (svc *JWTService) getJWTKey(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
	}

	return []byte(svc.jwtSecretKey), nil
}
