package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

func init() {
	// Data files and API payloads carry amounts as plain JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// DefaultCurrency is the single implicit currency of every amount.
const DefaultCurrency = "BDT"

// FormatAmount renders an amount for display, e.g. "BDT 1,250.50".
func FormatAmount(amount decimal.Decimal, currency string) string {
	if currency == "" {
		currency = DefaultCurrency
	}
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Abs()
	}
	fixed := amount.StringFixed(2)
	whole, frac := fixed[:len(fixed)-3], fixed[len(fixed)-2:]

	grouped := make([]byte, 0, len(whole)+len(whole)/3)
	for i := range len(whole) {
		if i > 0 && (len(whole)-i)%3 == 0 {
			grouped = append(grouped, ',')
		}
		grouped = append(grouped, whole[i])
	}

	return fmt.Sprintf("%s %s%s.%s", currency, sign, grouped, frac)
}
