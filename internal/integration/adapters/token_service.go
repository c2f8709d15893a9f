// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/condo-control/backend/internal/application/adapter"
	domainerror "github.com/condo-control/backend/internal/domain/error"
)

// CustomClaims represents the custom claims carried by access tokens issued
// by the identity service.
type CustomClaims struct {
	UserID        string `json:"user_id"`
	CondominiumID string `json:"condominium_id"`
	Role          string `json:"role"`
	jwt.RegisteredClaims
}

// tokenService implements the adapter.TokenService interface. This service
// never issues tokens; it only validates what the identity service signed.
type tokenService struct {
	secret []byte
}

// NewTokenService creates a new token service instance.
func NewTokenService(secret string) adapter.TokenService {
	return &tokenService{
		secret: []byte(secret),
	}
}

// ValidateAccessToken validates an access token and returns its claims.
func (s *tokenService) ValidateAccessToken(_ context.Context, token string) (*adapter.TokenClaims, error) {
	claims, err := s.parseJWT(token)
	if err != nil {
		return nil, err
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidToken,
			"invalid user ID in token",
			domainerror.ErrInvalidToken,
		)
	}

	condominiumID, err := uuid.Parse(claims.CondominiumID)
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeNoCondominium,
			"token carries no condominium",
			domainerror.ErrNoCondominium,
		)
	}

	return &adapter.TokenClaims{
		UserID:        userID,
		CondominiumID: condominiumID,
		Role:          claims.Role,
		ExpiresAt:     claims.ExpiresAt.Time,
	}, nil
}

// parseJWT parses and validates a JWT token.
func (s *tokenService) parseJWT(tokenString string) (*CustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeExpiredToken,
				"token has expired",
				domainerror.ErrExpiredToken,
			)
		}
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidToken,
			"invalid token",
			domainerror.ErrInvalidToken,
		)
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidToken,
			"invalid token claims",
			domainerror.ErrInvalidToken,
		)
	}
	return claims, nil
}
