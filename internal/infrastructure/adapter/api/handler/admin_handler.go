package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "github.com/mblud/poker-tracker-backend/internal/domain/error"
	coreport "github.com/mblud/poker-tracker-backend/internal/domain/port/core"
	"github.com/mblud/poker-tracker-backend/internal/domain/port/usecase"
	"github.com/mblud/poker-tracker-backend/internal/infrastructure/adapter/api/dto"
)

// AdminHandler handles health, statistics and backup HTTP requests
type AdminHandler struct {
	ledger  usecase.LedgerUseCase
	backup  usecase.BackupUseCase
	backend string
	logger  coreport.Logger
}

// NewAdminHandler creates a new admin handler instance
func NewAdminHandler(
	ledger usecase.LedgerUseCase,
	backup usecase.BackupUseCase,
	backend string,
	logger coreport.Logger,
) *AdminHandler {
	return &AdminHandler{
		ledger:  ledger,
		backup:  backup,
		backend: backend,
		logger:  logger,
	}
}

// Root handles GET /
func (h *AdminHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Poker tracker API is running",
	})
}

// Test handles GET /api/test
func (h *AdminHandler) Test(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "API connection works",
	})
}

// Health handles GET /api/health
func (h *AdminHandler) Health(c *gin.Context) {
	count, err := h.ledger.PlayerCount(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, "health")
		return
	}

	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:      "ok",
		Backend:     h.backend,
		PlayerCount: count,
	})
}

// GameStats handles GET /api/game-stats
func (h *AdminHandler) GameStats(c *gin.Context) {
	stats, err := h.ledger.GameStats(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, "game stats")
		return
	}

	c.JSON(http.StatusOK, dto.GameStatsResponse{
		TotalPot:        stats.TotalPot,
		TotalDealerFees: stats.TotalDealerFees,
		TotalBuyIns:     stats.TotalBuyIns,
		TotalCashOuts:   stats.TotalCashOuts,
		PlayerCount:     stats.PlayerCount,
		MethodBreakdown: methodBreakdownResponses(stats.MethodBreakdown),
	})
}

// Reconciliation handles GET /api/admin/reconciliation
func (h *AdminHandler) Reconciliation(c *gin.Context) {
	report, err := h.ledger.Reconciliation(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, "reconciliation")
		return
	}

	c.JSON(http.StatusOK, dto.ReconciliationResponse{
		CashOuts:               cashOutResponses(report.CashOuts),
		TotalConfirmedCashOuts: report.TotalConfirmedCashOuts,
		TotalPlayerBalances:    report.TotalPlayerBalances,
		TotalMoneyIn:           report.TotalMoneyIn,
		PotShouldBe:            report.PotShouldBe,
		Consistent:             report.Consistent,
	})
}

// Backup handles GET /api/admin/backup
func (h *AdminHandler) Backup(c *gin.Context) {
	archive, err := h.backup.Export(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, "backup")
		return
	}

	c.JSON(http.StatusOK, archive)
}

// Restore handles POST /api/admin/restore
func (h *AdminHandler) Restore(c *gin.Context) {
	var archive usecase.Archive
	if err := c.ShouldBindJSON(&archive); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrMalformedBackup),
			Message: "Invalid backup format: " + err.Error(),
		})
		return
	}

	result, err := h.backup.Restore(c.Request.Context(), &archive)
	if err != nil {
		respondError(c, h.logger, err, "restore")
		return
	}

	c.JSON(http.StatusOK, dto.RestoreResponse{
		Message:  "Backup restored",
		Players:  result.Players,
		Payments: result.Payments,
		CashOuts: result.CashOuts,
	})
}
