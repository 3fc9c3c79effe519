package entity

import (
	"strings"
	"time"

	errs "github.com/mblud/poker-tracker-backend/internal/domain/error"
	coreport "github.com/mblud/poker-tracker-backend/internal/domain/port/core"
)

// Player represents a participant in the game session. The total is the money
// currently owed to this player from the pot, derived from confirmed payments
// and cash-outs; only the reconciliation engine writes it.
type Player struct {
	ID         string    // Opaque unique identifier
	Name       string    // Display name
	totalCents int64     // Derived total in cents (private)
	CreatedAt  time.Time // When the player was created
}

// NewPlayer creates a new player with a zero total
func NewPlayer(id, name string, timeProvider coreport.TimeProvider) (*Player, error) {
	if id == "" {
		return nil, errs.ErrInvalidPlayerID
	}
	if strings.TrimSpace(name) == "" {
		return nil, errs.ErrInvalidPlayerName
	}

	return &Player{
		ID:         id,
		Name:       strings.TrimSpace(name),
		totalCents: 0,
		CreatedAt:  timeProvider.Now(),
	}, nil
}

// Total returns the current total in cents (for internal use)
func (p *Player) Total() int64 {
	return p.totalCents
}

// GetTotal returns the total as a string with 2 decimal places
func (p *Player) GetTotal() string {
	return AmountInCentsToString(p.totalCents)
}

// SetTotal updates the derived total directly (repositories and the
// reconciliation engine only)
func (p *Player) SetTotal(totalCents int64) {
	p.totalCents = totalCents
}

// NameEquals reports whether the player's display name matches the given name,
// ignoring case and surrounding whitespace. Rebuy auto-provisioning matches on
// this rule.
func (p *Player) NameEquals(name string) bool {
	return strings.EqualFold(p.Name, strings.TrimSpace(name))
}
