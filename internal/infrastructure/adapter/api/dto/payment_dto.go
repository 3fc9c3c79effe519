package dto

import "time"

// BuyInRequest represents the API request for a buy-in submission
type BuyInRequest struct {
	Amount string `json:"amount" binding:"required"`
	Method string `json:"method" binding:"required"`
}

// RebuyRequest represents the API request for a rebuy submission by name.
// Unknown names auto-provision a new player.
type RebuyRequest struct {
	PlayerName string `json:"player_name" binding:"required"`
	Amount     string `json:"amount" binding:"required"`
	Method     string `json:"method" binding:"required"`
}

// PaymentResponse represents a payment joined with its owner's display name
type PaymentResponse struct {
	ID               string    `json:"id"`
	PlayerID         string    `json:"player_id"`
	PlayerName       string    `json:"player_name"`
	Amount           string    `json:"amount"`
	Method           string    `json:"method"`
	Type             string    `json:"type"`
	DealerFeeApplied bool      `json:"dealer_fee_applied"`
	Status           string    `json:"status"`
	Timestamp        time.Time `json:"timestamp"`
}

// RebuyResponse reports the auto-provisioning and fee classification outcome
type RebuyResponse struct {
	Message          string `json:"message"`
	PlayerID         string `json:"player_id"`
	PlayerName       string `json:"player_name"`
	IsNewPlayer      bool   `json:"is_new_player"`
	IsFirstBuyIn     bool   `json:"is_first_buyin"`
	DealerFeeApplied bool   `json:"dealer_fee_applied"`
	AmountToPot      string `json:"amount_to_pot"`
}

// ConfirmPaymentResponse reports the recomputed total after confirmation
type ConfirmPaymentResponse struct {
	Message    string `json:"message"`
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`
	NewTotal   string `json:"new_total"`
}

// DeletePaymentResponse describes a removed payment
type DeletePaymentResponse struct {
	Message    string `json:"message"`
	PlayerName string `json:"player_name"`
	Amount     string `json:"amount"`
	Type       string `json:"type"`
	NewTotal   string `json:"new_total"`
}
