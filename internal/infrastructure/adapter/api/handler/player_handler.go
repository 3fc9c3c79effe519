package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "github.com/mblud/poker-tracker-backend/internal/domain/error"
	coreport "github.com/mblud/poker-tracker-backend/internal/domain/port/core"
	"github.com/mblud/poker-tracker-backend/internal/domain/port/usecase"
	"github.com/mblud/poker-tracker-backend/internal/infrastructure/adapter/api/dto"
)

// PlayerHandler handles player-related HTTP requests
type PlayerHandler struct {
	ledger usecase.LedgerUseCase
	logger coreport.Logger
}

// NewPlayerHandler creates a new player handler instance
func NewPlayerHandler(ledger usecase.LedgerUseCase, logger coreport.Logger) *PlayerHandler {
	return &PlayerHandler{
		ledger: ledger,
		logger: logger,
	}
}

// CreatePlayer handles POST /api/players
func (h *PlayerHandler) CreatePlayer(c *gin.Context) {
	var req dto.CreatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	player, err := h.ledger.CreatePlayer(c.Request.Context(), req.Name)
	if err != nil {
		respondError(c, h.logger, err, "create player")
		return
	}

	c.JSON(http.StatusCreated, playerResponse(*player))
}

// ListPlayers handles GET /api/players
func (h *PlayerHandler) ListPlayers(c *gin.Context) {
	players, err := h.ledger.ListPlayers(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, "list players")
		return
	}

	responses := make([]dto.PlayerResponse, 0, len(players))
	for _, player := range players {
		responses = append(responses, playerResponse(player))
	}
	c.JSON(http.StatusOK, responses)
}

// DeletePlayer handles DELETE /api/players/:playerId
func (h *PlayerHandler) DeletePlayer(c *gin.Context) {
	playerID := c.Param("playerId")

	result, err := h.ledger.DeletePlayer(c.Request.Context(), playerID)
	if err != nil {
		respondError(c, h.logger, err, "delete player")
		return
	}

	c.JSON(http.StatusOK, dto.DeletePlayerResponse{
		Message:          "Player and all associated records deleted",
		PlayerName:       result.PlayerName,
		RemovedTotal:     result.RemovedTotal,
		TransactionCount: result.TransactionCount,
	})
}

// PaymentSummary handles GET /api/players/:playerId/payment-summary
func (h *PlayerHandler) PaymentSummary(c *gin.Context) {
	playerID := c.Param("playerId")

	summary, err := h.ledger.PaymentSummary(c.Request.Context(), playerID)
	if err != nil {
		respondError(c, h.logger, err, "payment summary")
		return
	}

	c.JSON(http.StatusOK, dto.PaymentSummaryResponse{
		PlayerID:   summary.PlayerID,
		PlayerName: summary.PlayerName,
		Summary:    methodBreakdownResponses(summary.Summary),
		TotalInPot: summary.TotalInPot,
	})
}
