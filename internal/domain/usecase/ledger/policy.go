package ledger

import (
	"fmt"
	"strings"

	errs "github.com/mblud/poker-tracker-backend/internal/domain/error"
)

// CashOutPolicy selects the cash-out accounting variant. The two variants
// come from the tracker's own history and are deliberately both supported;
// the choice is made once, in configuration, never per request.
type CashOutPolicy string

const (
	// PolicyTable caps a cash-out request at the global pot and zeroes the
	// player's total on confirmation: the player leaves the game and forfeits
	// whatever balance remained.
	PolicyTable CashOutPolicy = "table"

	// PolicyPlayer caps a cash-out request at the player's own confirmed
	// total and decrements the total by exactly the cashed-out amount on
	// confirmation.
	PolicyPlayer CashOutPolicy = "player"
)

// ParseCashOutPolicy converts a configuration string to a CashOutPolicy
func ParseCashOutPolicy(s string) (CashOutPolicy, error) {
	switch CashOutPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case PolicyTable:
		return PolicyTable, nil
	case PolicyPlayer:
		return PolicyPlayer, nil
	default:
		return "", fmt.Errorf("%w: unknown cash-out policy %q", errs.ErrInvalidRequest, s)
	}
}
