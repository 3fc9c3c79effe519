package dto

// MethodBreakdownResponse is a per-method {total, count} aggregate
type MethodBreakdownResponse struct {
	Total string `json:"total"`
	Count int    `json:"count"`
}

// GameStatsResponse is the derived global session view
type GameStatsResponse struct {
	TotalPot        string                             `json:"total_pot"`
	TotalDealerFees string                             `json:"total_dealer_fees"`
	TotalBuyIns     string                             `json:"total_buy_ins"`
	TotalCashOuts   string                             `json:"total_cash_outs"`
	PlayerCount     int                                `json:"player_count"`
	MethodBreakdown map[string]MethodBreakdownResponse `json:"method_breakdown"`
}

// ReconciliationResponse cross-checks money in, confirmed cash-outs and the
// summed stored totals
type ReconciliationResponse struct {
	CashOuts               []CashOutResponse `json:"cashouts"`
	TotalConfirmedCashOuts string            `json:"total_confirmed_cashouts"`
	TotalPlayerBalances    string            `json:"total_player_balances"`
	TotalMoneyIn           string            `json:"total_money_in"`
	PotShouldBe            string            `json:"pot_should_be"`
	Consistent             bool              `json:"consistent"`
}

// HealthResponse reports service health and the active storage backend
type HealthResponse struct {
	Status      string `json:"status"`
	Backend     string `json:"backend"`
	PlayerCount int64  `json:"player_count"`
}

// RestoreResponse reports how many entities a restore installed
type RestoreResponse struct {
	Message  string `json:"message"`
	Players  int    `json:"players"`
	Payments int    `json:"payments"`
	CashOuts int    `json:"cashouts"`
}
