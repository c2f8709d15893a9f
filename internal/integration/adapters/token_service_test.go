package adapters

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	domainerror "github.com/condo-control/backend/internal/domain/error"
)

const testSecret = "test-secret-key"

func signToken(t *testing.T, secret string, claims CustomClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

func TestTokenService_ValidateAccessToken(t *testing.T) {
	ctx := context.Background()
	service := NewTokenService(testSecret)

	userID := uuid.New()
	condominiumID := uuid.New()

	validClaims := func() CustomClaims {
		return CustomClaims{
			UserID:        userID.String(),
			CondominiumID: condominiumID.String(),
			Role:          "manager",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
				IssuedAt:  jwt.NewNumericDate(time.Now()),
			},
		}
	}

	t.Run("valid token", func(t *testing.T) {
		claims, err := service.ValidateAccessToken(ctx, signToken(t, testSecret, validClaims()))
		if err != nil {
			t.Fatalf("ValidateAccessToken() error = %v", err)
		}
		if claims.UserID != userID {
			t.Errorf("UserID = %s, want %s", claims.UserID, userID)
		}
		if claims.CondominiumID != condominiumID {
			t.Errorf("CondominiumID = %s, want %s", claims.CondominiumID, condominiumID)
		}
		if claims.Role != "manager" {
			t.Errorf("Role = %q, want manager", claims.Role)
		}
	})

	t.Run("expired token", func(t *testing.T) {
		claims := validClaims()
		claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))

		_, err := service.ValidateAccessToken(ctx, signToken(t, testSecret, claims))
		if !errors.Is(err, domainerror.ErrExpiredToken) {
			t.Errorf("error = %v, want ErrExpiredToken", err)
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		_, err := service.ValidateAccessToken(ctx, signToken(t, "other-secret", validClaims()))
		if !errors.Is(err, domainerror.ErrInvalidToken) {
			t.Errorf("error = %v, want ErrInvalidToken", err)
		}
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := service.ValidateAccessToken(ctx, "not.a.token")
		if !errors.Is(err, domainerror.ErrInvalidToken) {
			t.Errorf("error = %v, want ErrInvalidToken", err)
		}
	})

	t.Run("missing condominium claim", func(t *testing.T) {
		claims := validClaims()
		claims.CondominiumID = ""

		_, err := service.ValidateAccessToken(ctx, signToken(t, testSecret, claims))
		if !errors.Is(err, domainerror.ErrNoCondominium) {
			t.Errorf("error = %v, want ErrNoCondominium", err)
		}
	})
}
