package util

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrInvalidAmount = errors.New("invalid amount")

// FormatMinorUnits renders an amount in minor units with two decimals,
// e.g. 324700 -> "3247.00".
func FormatMinorUnits(amount int64) string {
	return decimal.New(amount, -2).StringFixed(2)
}

// ParseMajorUnits converts a decimal amount such as "1299.5" into minor
// units. More than two fractional digits is rejected rather than rounded.
func ParseMajorUnits(raw string) (int64, error) {
	raw = strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}
	minor := amount.Shift(2)
	if !minor.Equal(minor.Truncate(0)) {
		return 0, fmt.Errorf("%w: %q has more than two decimals", ErrInvalidAmount, raw)
	}
	return minor.IntPart(), nil
}
