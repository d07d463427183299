package entity

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	errs "github.com/amirhossein-jamali/ai-marketplace/internal/domain/error"
)

// Monetary values cross every boundary as decimal strings. They are parsed only
// when the store needs to rank or aggregate them.

// OctasPerAPT is the number of octas in one APT
const OctasPerAPT int64 = 100_000_000

// octasShift is log10(OctasPerAPT)
const octasShift = 8

// ZeroAmount is the default earnings value of a freshly registered user
const ZeroAmount = "0"

// ValidateAmount checks that amount is a non-negative decimal string
// Returns the parsed value and error if the validation fails
func ValidateAmount(amount string) (decimal.Decimal, error) {
	amount = strings.TrimSpace(amount)
	if len(amount) == 0 {
		return decimal.Zero, fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}

	if strings.HasPrefix(amount, "-") {
		return decimal.Zero, errs.ErrNegativeAmount
	}

	value, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s", errs.ErrInvalidAmount, amount)
	}

	return value, nil
}

// ParseAmountOrZero parses a stored amount for ranking and aggregation.
// Values that do not parse count as zero.
func ParseAmountOrZero(amount string) decimal.Decimal {
	value, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return decimal.Zero
	}
	return value
}

// CompareAmounts returns -1, 0 or 1 comparing the parsed values of a and b
func CompareAmounts(a, b string) int {
	return ParseAmountOrZero(a).Cmp(ParseAmountOrZero(b))
}

// SumAmounts adds up stored amounts
func SumAmounts(amounts ...string) decimal.Decimal {
	total := decimal.Zero
	for _, amount := range amounts {
		total = total.Add(ParseAmountOrZero(amount))
	}
	return total
}

// FormatOneDecimal formats a value with exactly one decimal place
// Example: 28710 becomes "28710.0"
func FormatOneDecimal(value decimal.Decimal) string {
	return value.StringFixed(1)
}

// AddAmounts adds delta to base and returns the canonical decimal string
func AddAmounts(base, delta string) (string, error) {
	deltaValue, err := ValidateAmount(delta)
	if err != nil {
		return "", err
	}
	return ParseAmountOrZero(base).Add(deltaValue).String(), nil
}

// APTToOctas converts a decimal APT amount to whole octas, truncating sub-octa dust
func APTToOctas(amount string) (int64, error) {
	value, err := ValidateAmount(amount)
	if err != nil {
		return 0, err
	}
	return value.Shift(octasShift).IntPart(), nil
}
