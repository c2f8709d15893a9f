// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenClaims represents the claims contained in a JWT access token issued by
// the identity collaborator. CondominiumID scopes every operation of this
// service.
type TokenClaims struct {
	UserID        uuid.UUID
	CondominiumID uuid.UUID
	Role          string
	ExpiresAt     time.Time
}

// TokenService defines the interface for resolving bearer tokens. Token
// issuance belongs to the external identity service; this side only validates.
type TokenService interface {
	// ValidateAccessToken validates an access token and returns its claims.
	ValidateAccessToken(ctx context.Context, token string) (*TokenClaims, error)
}
