package dto

import "time"

// CashOutRequest represents the API request for a cash-out
type CashOutRequest struct {
	Amount string `json:"amount" binding:"required"`
	Reason string `json:"reason"`
}

// CashOutResponse represents a cash-out joined with its owner's display name
type CashOutResponse struct {
	ID         string    `json:"id"`
	PlayerID   string    `json:"player_id"`
	PlayerName string    `json:"player_name"`
	Amount     string    `json:"amount"`
	Reason     string    `json:"reason"`
	Confirmed  bool      `json:"confirmed"`
	Timestamp  time.Time `json:"timestamp"`
}

// ConfirmCashOutResponse reports the settlement applied on confirmation
type ConfirmCashOutResponse struct {
	Message        string `json:"message"`
	PlayerID       string `json:"player_id"`
	PlayerName     string `json:"player_name"`
	Amount         string `json:"amount"`
	OldPlayerTotal string `json:"old_player_total"`
	NewPlayerTotal string `json:"new_player_total"`
}
