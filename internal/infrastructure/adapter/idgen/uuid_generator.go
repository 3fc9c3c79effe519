package idgen

import (
	"github.com/google/uuid"

	"github.com/mblud/poker-tracker-backend/internal/domain/port/core"
)

// UUIDGenerator implements the IDGenerator interface with random UUIDv4 values
type UUIDGenerator struct{}

// NewUUIDGenerator creates a new UUID-based id generator
func NewUUIDGenerator() core.IDGenerator {
	return &UUIDGenerator{}
}

// NewID returns a fresh opaque identifier
func (g *UUIDGenerator) NewID() string {
	return uuid.NewString()
}
