// Package entity defines the core business entities for the domain layer.
package entity

import (
	"github.com/google/uuid"
)

// Unit is an individually owned or rented space within a condominium against
// which charges and delinquency are tracked.
type Unit struct {
	ID            uuid.UUID
	CondominiumID uuid.UUID
	Number        string
}
