package market

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is used when a balance is given without a currency code.
const DefaultCurrency = "USD"

// AccountBalance is an amount held in a single account currency.
type AccountBalance struct {
	Amount   decimal.Decimal
	Currency string
}

// NewAccountBalance returns a balance in currency, falling back to
// DefaultCurrency when currency is empty.
func NewAccountBalance(amount decimal.Decimal, currency string) AccountBalance {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		currency = DefaultCurrency
	}
	return AccountBalance{Amount: amount, Currency: currency}
}

func (b AccountBalance) String() string {
	return b.Amount.StringFixed(2) + " " + b.Currency
}
