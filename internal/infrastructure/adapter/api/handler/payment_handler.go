package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "github.com/mblud/poker-tracker-backend/internal/domain/error"
	coreport "github.com/mblud/poker-tracker-backend/internal/domain/port/core"
	"github.com/mblud/poker-tracker-backend/internal/domain/port/usecase"
	"github.com/mblud/poker-tracker-backend/internal/infrastructure/adapter/api/dto"
)

const (
	recentTransactionsLimit = 20
	recentRebuysLimit       = 5
)

// PaymentHandler handles buy-in and rebuy HTTP requests
type PaymentHandler struct {
	ledger usecase.LedgerUseCase
	logger coreport.Logger
}

// NewPaymentHandler creates a new payment handler instance
func NewPaymentHandler(ledger usecase.LedgerUseCase, logger coreport.Logger) *PaymentHandler {
	return &PaymentHandler{
		ledger: ledger,
		logger: logger,
	}
}

// SubmitBuyIn handles POST /api/players/:playerId/buyin
func (h *PaymentHandler) SubmitBuyIn(c *gin.Context) {
	playerID := c.Param("playerId")

	var req dto.BuyInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	player, err := h.ledger.SubmitBuyIn(c.Request.Context(), playerID, req.Amount, req.Method)
	if err != nil {
		respondError(c, h.logger, err, "submit buy-in")
		return
	}

	c.JSON(http.StatusOK, playerResponse(*player))
}

// SubmitRebuy handles POST /api/rebuys. Unknown player names auto-provision
// a new player; a player's first-ever payment is classified as a buy-in.
func (h *PaymentHandler) SubmitRebuy(c *gin.Context) {
	var req dto.RebuyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	result, err := h.ledger.SubmitRebuy(c.Request.Context(), req.PlayerName, req.Amount, req.Method)
	if err != nil {
		respondError(c, h.logger, err, "submit rebuy")
		return
	}

	message := "Rebuy recorded"
	if result.IsFirstBuyIn {
		message = "First buy-in recorded"
	}

	c.JSON(http.StatusOK, dto.RebuyResponse{
		Message:          message,
		PlayerID:         result.PlayerID,
		PlayerName:       result.PlayerName,
		IsNewPlayer:      result.IsNewPlayer,
		IsFirstBuyIn:     result.IsFirstBuyIn,
		DealerFeeApplied: result.DealerFeeApplied,
		AmountToPot:      result.AmountToPot,
	})
}

// ListRecentRebuys handles GET /api/rebuys/recent
func (h *PaymentHandler) ListRecentRebuys(c *gin.Context) {
	rebuys, err := h.ledger.ListRecentRebuys(c.Request.Context(), recentRebuysLimit)
	if err != nil {
		respondError(c, h.logger, err, "list recent rebuys")
		return
	}

	c.JSON(http.StatusOK, paymentResponses(rebuys))
}

// ConfirmPayment handles PUT /api/players/:playerId/payments/:paymentId/confirm
func (h *PaymentHandler) ConfirmPayment(c *gin.Context) {
	playerID := c.Param("playerId")
	paymentID := c.Param("paymentId")

	result, err := h.ledger.ConfirmPayment(c.Request.Context(), playerID, paymentID)
	if err != nil {
		respondError(c, h.logger, err, "confirm payment")
		return
	}

	c.JSON(http.StatusOK, dto.ConfirmPaymentResponse{
		Message:    "Payment confirmed",
		PlayerID:   result.PlayerID,
		PlayerName: result.PlayerName,
		NewTotal:   result.NewTotal,
	})
}

// DeletePayment handles DELETE /api/players/:playerId/payments/:paymentId
func (h *PaymentHandler) DeletePayment(c *gin.Context) {
	playerID := c.Param("playerId")
	paymentID := c.Param("paymentId")

	result, err := h.ledger.DeletePayment(c.Request.Context(), playerID, paymentID)
	if err != nil {
		respondError(c, h.logger, err, "delete payment")
		return
	}

	c.JSON(http.StatusOK, dto.DeletePaymentResponse{
		Message:    "Payment deleted",
		PlayerName: result.PlayerName,
		Amount:     result.Amount,
		Type:       result.Type,
		NewTotal:   result.NewTotal,
	})
}

// ListPendingPayments handles GET /api/pending-payments
func (h *PaymentHandler) ListPendingPayments(c *gin.Context) {
	pending, err := h.ledger.ListPendingPayments(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, "list pending payments")
		return
	}

	c.JSON(http.StatusOK, paymentResponses(pending))
}

// ListRecentTransactions handles GET /api/transactions/recent
func (h *PaymentHandler) ListRecentTransactions(c *gin.Context) {
	transactions, err := h.ledger.ListRecentTransactions(c.Request.Context(), recentTransactionsLimit)
	if err != nil {
		respondError(c, h.logger, err, "list recent transactions")
		return
	}

	c.JSON(http.StatusOK, paymentResponses(transactions))
}
