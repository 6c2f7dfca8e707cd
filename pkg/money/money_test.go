package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRound(t *testing.T) {
	// 11.00 * 0.0875 = 0.9625 -> 0.96
	tax := decimal.NewFromFloat(11.00).Mul(decimal.NewFromFloat(0.0875))
	assert.True(t, Round(tax).Equal(decimal.NewFromFloat(0.96)))
}

func TestFormatUSD(t *testing.T) {
	assert.Equal(t, "$11.96", FormatUSD(decimal.NewFromFloat(11.96)))
	assert.Equal(t, "$0.00", FormatUSD(decimal.Zero))
	assert.Equal(t, "$1,234.50", FormatUSD(decimal.NewFromFloat(1234.5)))
}
