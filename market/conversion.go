package market

import (
	"context"

	"github.com/shopspring/decimal"
)

// RateSource returns conversion rates from base to other currencies,
// keyed by currency code.
type RateSource interface {
	Rates(ctx context.Context, base string) (map[string]decimal.Decimal, error)
}

// QuoteToAccountRate returns how much one unit of the instrument's quote
// currency is worth in the account currency.
//
// When the quote currency is the account currency no lookup is made and
// the rate is 1. When the source answers without an entry for the account
// currency the rate also falls back to 1 and found is false; that is a
// degraded answer, not an error.
func QuoteToAccountRate(ctx context.Context, inst Instrument, accountCurrency string, src RateSource) (rate decimal.Decimal, found bool, err error) {
	if inst.Quote == accountCurrency {
		return decimal.NewFromInt(1), true, nil
	}

	rates, err := src.Rates(ctx, inst.Quote)
	if err != nil {
		return decimal.Zero, false, err
	}

	r, ok := rates[accountCurrency]
	if !ok {
		return decimal.NewFromInt(1), false, nil
	}
	return r, true, nil
}
