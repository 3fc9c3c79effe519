package database

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	domainErr "github.com/mblud/poker-tracker-backend/internal/domain/error"
)

// EntityType represents the type of entity for errors mapping
type EntityType string

const (
	// EntityTypePlayer represents the player entity
	EntityTypePlayer EntityType = "player"
	// EntityTypePayment represents the payment entity
	EntityTypePayment EntityType = "payment"
	// EntityTypeCashOut represents the cash-out entity
	EntityTypeCashOut EntityType = "cash_out"
)

// ErrorMapper maps database errors to domain errors
type ErrorMapper struct{}

// NewErrorMapper creates a new ErrorMapper
func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{}
}

// MapError maps a database error to a domain error
func (m *ErrorMapper) MapError(err error, operation string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domainErr.ErrNotFound
	}

	errMsg := strings.ToLower(err.Error())

	switch {
	// Duplicate key errors
	case strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "unique constraint"):
		return domainErr.ErrDuplicatePlayer

	// Constraint violations
	case strings.Contains(errMsg, "check constraint") ||
		strings.Contains(errMsg, "foreign key constraint"):
		return fmt.Errorf("%w: constraint violation in %s", domainErr.ErrInvalidRequest, operation)

	// Connection issues
	case strings.Contains(errMsg, "connection refused") ||
		strings.Contains(errMsg, "no connection") ||
		strings.Contains(errMsg, "connection reset"):
		return domainErr.ErrDatabaseConnection

	// Timeout errors
	case strings.Contains(errMsg, "timeout") ||
		strings.Contains(errMsg, "deadline exceeded"):
		return fmt.Errorf("%w: %s operation timed out", domainErr.ErrDatabaseConnection, operation)

	default:
		return domainErr.ErrInternalServer
	}
}

// MapEntityNotFoundError maps database errors to specific entity not found errors
func (m *ErrorMapper) MapEntityNotFoundError(err error, entityType EntityType) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		switch entityType {
		case EntityTypePlayer:
			return domainErr.ErrPlayerNotFound
		case EntityTypePayment:
			return domainErr.ErrPaymentNotFound
		case EntityTypeCashOut:
			return domainErr.ErrCashOutNotFound
		default:
			return domainErr.ErrNotFound
		}
	}

	return m.MapError(err, string(entityType))
}
