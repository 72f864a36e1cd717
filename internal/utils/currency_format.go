package utils

import (
	"github.com/shopspring/decimal"
)

// FormatBRL renders an amount the way the closing summaries and audit
// descriptions show money, always with two decimals.
// Example: 12.3 returns "R$ 12.30".
func FormatBRL(amount decimal.Decimal) string {
	return "R$ " + amount.StringFixed(2)
}
