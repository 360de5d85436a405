package entity

import (
	"fmt"
	"math"
	"strings"

	errs "github.com/amirhossein-jamali/arena-wallet/internal/domain/error"
	"github.com/shopspring/decimal"
)

// MaxDecimalPlaces defines the maximum number of decimal places allowed for money amounts
const MaxDecimalPlaces = 2

var maxMinorUnits = decimal.NewFromInt(math.MaxInt64)

// ParseAmount converts a decimal string such as "10.5" into minor units (1050).
// Zero is accepted; use ParsePositiveAmount where a strictly positive value is required.
func ParseAmount(amount string) (int64, error) {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return 0, fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}
	if strings.HasPrefix(amount, "-") {
		return 0, errs.ErrNegativeAmount
	}
	// decimal also accepts exponents and signs, which are not valid money input
	if strings.ContainsAny(amount, "eE+") {
		return 0, fmt.Errorf("%w: invalid number format", errs.ErrInvalidAmount)
	}

	d, err := decimal.NewFromString(amount)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", errs.ErrInvalidAmount, err.Error())
	}
	if d.Exponent() < -MaxDecimalPlaces {
		return 0, fmt.Errorf("%w: maximum %d decimal places allowed", errs.ErrInvalidAmount, MaxDecimalPlaces)
	}

	minor := d.Shift(MaxDecimalPlaces)
	if minor.GreaterThan(maxMinorUnits) {
		return 0, errs.ErrAmountOverflow
	}
	return minor.IntPart(), nil
}

// ParsePositiveAmount parses an amount and enforces amount > 0 and amount >= minMinor
func ParsePositiveAmount(amount string, minMinor int64) (int64, error) {
	minor, err := ParseAmount(amount)
	if err != nil {
		return 0, err
	}
	if minor <= 0 {
		return 0, errs.ErrNegativeAmount
	}
	if minor < minMinor {
		return 0, fmt.Errorf("%w: minimum is %s", errs.ErrAmountBelowMinimum, FormatAmount(minMinor))
	}
	return minor, nil
}

// FormatAmount renders minor units with exactly two decimals, e.g. 1015 -> "10.15"
func FormatAmount(minor int64) string {
	return decimal.New(minor, -MaxDecimalPlaces).StringFixed(MaxDecimalPlaces)
}

// AddAmounts adds two minor-unit values, failing instead of wrapping around
func AddAmounts(a, b int64) (int64, error) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, errs.ErrAmountOverflow
	}
	return a + b, nil
}
