package service

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"fuelbooks/internal/config"
	"fuelbooks/internal/domain"
)

const accessAudience = "access"

// Claims are the access-token claims issued by the auth service.
type Claims struct {
	jwt.RegisteredClaims
	UserID  uuid.UUID `json:"user_id"`
	Email   string    `json:"email"`
	Role    string    `json:"role"`
	Station string    `json:"station,omitempty"`
}

// TokenValidator checks bearer tokens. Tokens are issued elsewhere; this
// service only verifies them.
type TokenValidator interface {
	ValidateToken(tokenString string) (*Claims, error)
}

type tokenValidator struct {
	cfg *config.JWTConfig
}

// NewTokenValidator creates a new HMAC TokenValidator.
func NewTokenValidator(cfg *config.JWTConfig) TokenValidator {
	return &tokenValidator{cfg: cfg}
}

func (v *tokenValidator) ValidateToken(tokenString string) (*Claims, error) {
	opts := []jwt.ParserOption{jwt.WithAudience(accessAudience)}
	if v.cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.cfg.Issuer))
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(v.cfg.Secret), nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing token: %v", domain.ErrUnauthorized, err)
	}
	if !token.Valid || claims.UserID == uuid.Nil {
		return nil, domain.ErrUnauthorized
	}
	return claims, nil
}
