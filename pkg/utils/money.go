package utils

import "github.com/shopspring/decimal"

// FormatCents renders a minor-unit amount as a two-decimal major-unit string,
// e.g. 15000 -> "150.00".
func FormatCents(cents int64) string {
	return decimal.NewFromInt(cents).Shift(-2).StringFixed(2)
}

// FormatUSD renders a minor-unit amount with a dollar sign.
func FormatUSD(cents int64) string {
	return "$" + FormatCents(cents)
}

// FormatDecimalUSD renders a major-unit decimal amount with a dollar sign.
func FormatDecimalUSD(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}
