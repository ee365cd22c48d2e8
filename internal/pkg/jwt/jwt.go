package jwt

import (
	"context"
	"errors"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// Tokens are issued by the external identity provider with a shared HS256
// secret. This service only verifies them and exposes the claims the app
// cares about; no login, refresh or revocation flows live here.

var ErrInvalidClaims = errors.New("token claims are missing or invalid")

// Role claim values as issued by the identity provider.
const (
	RoleAdmin = "admin"
	RoleHR    = "hr"
	RoleStaff = "staff"
)

type Claims struct {
	UserID string
	Name   string
	Role   string
}

type Service interface {
	JWTAuth() *jwtauth.JWTAuth
	ClaimsFromContext(ctx context.Context) (Claims, error)
}

type JWTService struct {
	tokenAuth *jwtauth.JWTAuth
}

func NewJWTService(secretKey string) Service {
	return &JWTService{
		tokenAuth: jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

// ClaimsFromContext reads the verified token placed in the request context
// by the jwtauth.Verifier middleware.
func (j *JWTService) ClaimsFromContext(ctx context.Context) (Claims, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return Claims{}, err
	}

	userID, ok := claims["sub"].(string)
	if !ok || userID == "" {
		return Claims{}, ErrInvalidClaims
	}

	role, ok := claims["role"].(string)
	if !ok || role == "" {
		return Claims{}, ErrInvalidClaims
	}

	name, _ := claims["name"].(string)

	return Claims{UserID: userID, Name: name, Role: role}, nil
}
