package entity

import (
	"fmt"
	"strconv"
	"strings"

	errs "github.com/mblud/poker-tracker-backend/internal/domain/error"
)

// MaxDecimalPlaces defines the maximum number of decimal places allowed for money amounts
const MaxDecimalPlaces = 2

// ValidateAndConvertAmount validates and formats a string amount.
// Uses a string-based approach to handle decimal places:
// - If no decimal point: adds ".00" and removes the point to get an integer
// - If one digit after decimal: adds a "0" and removes the point
// - If two digits after decimal: just removes the point
// Returns the amount in cents as int64, or an error if validation fails.
func ValidateAndConvertAmount(amount string) (int64, error) {
	amount = strings.TrimSpace(amount)
	if len(amount) == 0 {
		return 0, fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}

	if strings.HasPrefix(amount, "-") {
		return 0, errs.ErrNegativeAmount
	}

	parts := strings.Split(amount, ".")

	if len(parts) > 2 {
		return 0, fmt.Errorf("%w: invalid number format", errs.ErrInvalidAmount)
	}

	var integerValue string

	if len(parts) == 1 {
		// No decimal point - add ".00"
		integerValue = parts[0] + "00"
	} else {
		switch len(parts[1]) {
		case 0:
			// Like "10." - add "00"
			integerValue = parts[0] + "00"
		case 1:
			integerValue = parts[0] + parts[1] + "0"
		case 2:
			integerValue = parts[0] + parts[1]
		default:
			return 0, fmt.Errorf("%w: maximum %d decimal places allowed", errs.ErrInvalidAmount, MaxDecimalPlaces)
		}
	}

	value, err := strconv.ParseInt(integerValue, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", errs.ErrInvalidAmount, err.Error())
	}

	return value, nil
}

// ValidatePositiveAmount validates an amount and additionally requires it to be
// strictly greater than zero. Buy-ins, rebuys and cash-out requests all use this.
func ValidatePositiveAmount(amount string) (int64, error) {
	cents, err := ValidateAndConvertAmount(amount)
	if err != nil {
		return 0, err
	}
	if cents == 0 {
		return 0, fmt.Errorf("%w: amount must be positive", errs.ErrInvalidAmount)
	}
	return cents, nil
}

// AmountInCentsToString converts an integer cent amount to a decimal string.
// For example:
// - 1015 becomes "10.15"
// - 1000 becomes "10.00"
func AmountInCentsToString(amountInCents int64) string {
	isNegative := amountInCents < 0
	if isNegative {
		amountInCents = -amountInCents
	}

	amountStr := fmt.Sprintf("%d", amountInCents)

	for len(amountStr) < 3 {
		amountStr = "0" + amountStr
	}

	decimalPos := len(amountStr) - 2
	wholePart := amountStr[:decimalPos]
	decimalPart := amountStr[decimalPos:]

	if wholePart == "" {
		wholePart = "0"
	}

	if isNegative {
		return "-" + wholePart + "." + decimalPart
	}
	return wholePart + "." + decimalPart
}

// EnsureTwoDecimalPlaces standardizes a string money amount to exactly 2 decimal
// places. Example: "10.1" becomes "10.10", "10" becomes "10.00", "10.156"
// becomes "10.15" (truncated).
func EnsureTwoDecimalPlaces(amount string) string {
	if len(strings.TrimSpace(amount)) == 0 {
		return "0.00"
	}

	// Manual handling to avoid floating-point precision issues
	parts := strings.Split(amount, ".")

	if len(parts) == 1 {
		return parts[0] + ".00"
	}

	wholePart := parts[0]
	decimalPart := parts[1]

	switch len(decimalPart) {
	case 0:
		return wholePart + ".00"
	case 1:
		return wholePart + "." + decimalPart + "0"
	case 2:
		return wholePart + "." + decimalPart
	default:
		return wholePart + "." + decimalPart[:2]
	}
}
