package dto

import "time"

// CreatePlayerRequest represents the API request for creating a player
type CreatePlayerRequest struct {
	Name string `json:"name" binding:"required"`
}

// PlayerResponse represents a player with payment history
type PlayerResponse struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Total     string            `json:"total"`
	CreatedAt time.Time         `json:"created_at"`
	Payments  []PaymentResponse `json:"payments"`
}

// DeletePlayerResponse reports a cascaded player deletion
type DeletePlayerResponse struct {
	Message          string `json:"message"`
	PlayerName       string `json:"player_name"`
	RemovedTotal     string `json:"removed_total"`
	TransactionCount int64  `json:"transaction_count"`
}

// PaymentSummaryResponse aggregates one player's payments per method
type PaymentSummaryResponse struct {
	PlayerID   string                             `json:"player_id"`
	PlayerName string                             `json:"player_name"`
	Summary    map[string]MethodBreakdownResponse `json:"summary"`
	TotalInPot string                             `json:"total_in_pot"`
}
