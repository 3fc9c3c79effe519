package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "github.com/mblud/poker-tracker-backend/internal/domain/error"
	coreport "github.com/mblud/poker-tracker-backend/internal/domain/port/core"
	"github.com/mblud/poker-tracker-backend/internal/infrastructure/adapter/api/dto"
	"github.com/mblud/poker-tracker-backend/internal/domain/port/usecase"
)

// statusForError maps domain errors to HTTP status codes
func statusForError(err error) int {
	switch {
	case domainerr.IsNotFoundError(err):
		return http.StatusNotFound
	case domainerr.IsAlreadyConfirmedError(err):
		return http.StatusConflict
	case domainerr.IsDuplicatePlayerError(err):
		return http.StatusConflict
	case domainerr.IsInvalidRequestError(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the standardized error payload for a domain error
func respondError(c *gin.Context, logger coreport.Logger, err error, operation string) {
	status := statusForError(err)

	fields := map[string]any{
		"operation": operation,
		"path":      c.Request.URL.Path,
		"error":     err.Error(),
	}
	if status >= http.StatusInternalServerError {
		logger.Error("Request failed", fields)
	} else {
		logger.Warn("Request rejected", fields)
	}

	message := err.Error()
	if status == http.StatusInternalServerError {
		// Never leak internals to the caller
		message = "Internal server error"
	}

	c.JSON(status, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: message,
	})
}

func paymentResponse(view usecase.PaymentView) dto.PaymentResponse {
	return dto.PaymentResponse{
		ID:               view.ID,
		PlayerID:         view.PlayerID,
		PlayerName:       view.PlayerName,
		Amount:           view.Amount,
		Method:           view.Method,
		Type:             view.Type,
		DealerFeeApplied: view.DealerFeeApplied,
		Status:           view.Status,
		Timestamp:        view.Timestamp,
	}
}

func paymentResponses(views []usecase.PaymentView) []dto.PaymentResponse {
	responses := make([]dto.PaymentResponse, 0, len(views))
	for _, view := range views {
		responses = append(responses, paymentResponse(view))
	}
	return responses
}

func playerResponse(view usecase.PlayerView) dto.PlayerResponse {
	return dto.PlayerResponse{
		ID:        view.ID,
		Name:      view.Name,
		Total:     view.Total,
		CreatedAt: view.CreatedAt,
		Payments:  paymentResponses(view.Payments),
	}
}

func cashOutResponse(view usecase.CashOutView) dto.CashOutResponse {
	return dto.CashOutResponse{
		ID:         view.ID,
		PlayerID:   view.PlayerID,
		PlayerName: view.PlayerName,
		Amount:     view.Amount,
		Reason:     view.Reason,
		Confirmed:  view.Confirmed,
		Timestamp:  view.Timestamp,
	}
}

func cashOutResponses(views []usecase.CashOutView) []dto.CashOutResponse {
	responses := make([]dto.CashOutResponse, 0, len(views))
	for _, view := range views {
		responses = append(responses, cashOutResponse(view))
	}
	return responses
}

func methodBreakdownResponses(views map[string]usecase.MethodBreakdownView) map[string]dto.MethodBreakdownResponse {
	responses := make(map[string]dto.MethodBreakdownResponse, len(views))
	for method, view := range views {
		responses[method] = dto.MethodBreakdownResponse{
			Total: view.Total,
			Count: view.Count,
		}
	}
	return responses
}
