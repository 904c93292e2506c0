package validation

import (
	"fmt"
	"regexp"

	"github.com/shopspring/decimal"
)

var moneyPattern = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)

// ParseMoney converts a price-like string into an exact decimal. Only
// non-negative values with at most two fractional digits pass; binary
// floating point never enters the path.
func ParseMoney(s string) (decimal.Decimal, error) {
	if !moneyPattern.MatchString(s) {
		return decimal.Decimal{}, fmt.Errorf("invalid amount %q: expected digits with at most 2 decimal places", s)
	}
	return decimal.NewFromString(s)
}
