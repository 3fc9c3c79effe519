package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "github.com/mblud/poker-tracker-backend/internal/domain/error"
	coreport "github.com/mblud/poker-tracker-backend/internal/domain/port/core"
	"github.com/mblud/poker-tracker-backend/internal/domain/port/usecase"
	"github.com/mblud/poker-tracker-backend/internal/infrastructure/adapter/api/dto"
)

const recentCashOutsLimit = 10

// CashOutHandler handles cash-out HTTP requests
type CashOutHandler struct {
	ledger usecase.LedgerUseCase
	logger coreport.Logger
}

// NewCashOutHandler creates a new cash-out handler instance
func NewCashOutHandler(ledger usecase.LedgerUseCase, logger coreport.Logger) *CashOutHandler {
	return &CashOutHandler{
		ledger: ledger,
		logger: logger,
	}
}

// RequestCashOut handles POST /api/players/:playerId/cashout
func (h *CashOutHandler) RequestCashOut(c *gin.Context) {
	playerID := c.Param("playerId")

	var req dto.CashOutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	cashOut, err := h.ledger.RequestCashOut(c.Request.Context(), playerID, req.Amount, req.Reason)
	if err != nil {
		respondError(c, h.logger, err, "request cash out")
		return
	}

	c.JSON(http.StatusCreated, cashOutResponse(*cashOut))
}

// ConfirmCashOut handles PUT /api/cashouts/:cashOutId/confirm
func (h *CashOutHandler) ConfirmCashOut(c *gin.Context) {
	cashOutID := c.Param("cashOutId")

	result, err := h.ledger.ConfirmCashOut(c.Request.Context(), cashOutID)
	if err != nil {
		respondError(c, h.logger, err, "confirm cash out")
		return
	}

	c.JSON(http.StatusOK, dto.ConfirmCashOutResponse{
		Message:        "Cash out confirmed",
		PlayerID:       result.PlayerID,
		PlayerName:     result.PlayerName,
		Amount:         result.Amount,
		OldPlayerTotal: result.OldPlayerTotal,
		NewPlayerTotal: result.NewPlayerTotal,
	})
}

// ListPendingCashOuts handles GET /api/pending-cashouts
func (h *CashOutHandler) ListPendingCashOuts(c *gin.Context) {
	pending, err := h.ledger.ListPendingCashOuts(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, "list pending cash outs")
		return
	}

	c.JSON(http.StatusOK, cashOutResponses(pending))
}

// ListRecentCashOuts handles GET /api/cashouts/recent
func (h *CashOutHandler) ListRecentCashOuts(c *gin.Context) {
	recent, err := h.ledger.ListRecentCashOuts(c.Request.Context(), recentCashOutsLimit)
	if err != nil {
		respondError(c, h.logger, err, "list recent cash outs")
		return
	}

	c.JSON(http.StatusOK, cashOutResponses(recent))
}

// History handles GET /api/cashouts/history
func (h *CashOutHandler) History(c *gin.Context) {
	history, err := h.ledger.CashOutHistory(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, "cash out history")
		return
	}

	c.JSON(http.StatusOK, cashOutResponses(history))
}
