package signal

import (
	"github.com/pkg/errors"

	"github.com/rustyeddy/lotsize/market"
)

// ParseBalance reads a leading amount with an optional 3-letter currency
// code, e.g. "5000 USD", "5,000.50eur" or "1000". Text after the amount
// that is not a 3-letter word is ignored, and a missing code means
// market.DefaultCurrency.
func ParseBalance(text string) (market.AccountBalance, error) {
	m := balanceRe.FindStringSubmatch(text)
	if m == nil {
		return market.AccountBalance{}, errors.Wrapf(ErrInvalidAccountBalance, "%q", text)
	}

	amt, ok := parseNumber(m[1])
	if !ok {
		return market.AccountBalance{}, errors.Wrapf(ErrInvalidAccountBalance, "%q", text)
	}
	return market.NewAccountBalance(amt, m[2]), nil
}
