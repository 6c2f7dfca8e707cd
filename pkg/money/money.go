package money

import (
	"github.com/leekchan/accounting"
	"github.com/shopspring/decimal"
)

var usd = accounting.Accounting{Symbol: "$", Precision: 2}

// Round rounds an amount to currency precision (2 decimal places).
// Internal accumulation stays unrounded; rounding belongs at the
// presentation boundary only.
func Round(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(2)
}

// FormatUSD renders an amount as a display string, e.g. "$11.96".
func FormatUSD(amount decimal.Decimal) string {
	return usd.FormatMoneyDecimal(amount)
}
