package entity

import (
	"fmt"
	"strconv"
	"strings"

	errs "github.com/amirhossein-jamali/expense-tracker/internal/domain/error"
)

// Monetary amounts are held as int64 cents end to end and only turned into
// decimal strings or floats at the API boundary.

// MaxDecimalPlaces defines the maximum number of decimal places allowed for money amounts
const MaxDecimalPlaces = 2

// ParseAmount converts a decimal string into cents.
// Uses a string-based approach to avoid floating point rounding:
// - If no decimal point: appends "00"
// - If one digit after decimal: appends a "0"
// - If two digits after decimal: removes the point
// A leading minus sign is accepted; amounts are not range checked.
func ParseAmount(amount string) (int64, error) {
	amount = strings.TrimSpace(amount)
	if len(amount) == 0 {
		return 0, fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}

	negative := false
	switch amount[0] {
	case '-':
		negative = true
		amount = amount[1:]
	case '+':
		amount = amount[1:]
	}

	parts := strings.Split(amount, ".")
	if len(parts) > 2 {
		return 0, fmt.Errorf("%w: invalid number format", errs.ErrInvalidAmount)
	}
	if parts[0] == "" && (len(parts) == 1 || parts[1] == "") {
		return 0, fmt.Errorf("%w: no digits", errs.ErrInvalidAmount)
	}
	if parts[0] == "" {
		parts[0] = "0"
	}

	var digits string
	if len(parts) == 1 {
		digits = parts[0] + "00"
	} else {
		switch len(parts[1]) {
		case 0:
			digits = parts[0] + "00"
		case 1:
			digits = parts[0] + parts[1] + "0"
		case 2:
			digits = parts[0] + parts[1]
		default:
			return 0, fmt.Errorf("%w: maximum %d decimal places allowed", errs.ErrInvalidAmount, MaxDecimalPlaces)
		}
	}

	for _, r := range digits {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%w: %q is not a number", errs.ErrInvalidAmount, amount)
		}
	}

	value, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", errs.ErrInvalidAmount, err.Error())
	}

	if negative {
		value = -value
	}
	return value, nil
}

// CentsToString converts integer cents to a decimal string
// For example:
// - 1015 becomes "10.15"
// - -5 becomes "-0.05"
func CentsToString(cents int64) string {
	isNegative := cents < 0
	if isNegative {
		cents = -cents
	}

	amountStr := strconv.FormatInt(cents, 10)
	for len(amountStr) < 3 {
		amountStr = "0" + amountStr
	}

	decimalPos := len(amountStr) - 2
	wholePart := amountStr[:decimalPos]
	decimalPart := amountStr[decimalPos:]

	if isNegative {
		return "-" + wholePart + "." + decimalPart
	}
	return wholePart + "." + decimalPart
}

// CentsToFloat converts cents to a float64 suitable for JSON numbers.
// Going through the decimal string keeps values like 0.1 exact to the
// nearest representable float.
func CentsToFloat(cents int64) float64 {
	value, err := strconv.ParseFloat(CentsToString(cents), 64)
	if err != nil {
		return float64(cents) / 100
	}
	return value
}

// AverageCents returns total/count rounded half away from zero, or 0 when count is 0
func AverageCents(total int64, count int64) int64 {
	if count == 0 {
		return 0
	}
	quotient := total / count
	remainder := total % count
	if remainder < 0 {
		remainder = -remainder
	}
	if remainder*2 >= count {
		if total < 0 {
			quotient--
		} else {
			quotient++
		}
	}
	return quotient
}
