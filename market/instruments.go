// market/instruments.go
package market

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Gold is the pseudo currency code used for XAU pairs.
const Gold = "XAU"

// Instrument is a currency pair. Both codes are uppercase 3-letter strings.
type Instrument struct {
	Base  string
	Quote string
}

// NewInstrument upper-cases and checks both codes.
func NewInstrument(base, quote string) (Instrument, error) {
	base = strings.ToUpper(strings.TrimSpace(base))
	quote = strings.ToUpper(strings.TrimSpace(quote))
	if !isCode(base) || !isCode(quote) {
		return Instrument{}, fmt.Errorf("invalid instrument %s/%s", base, quote)
	}
	return Instrument{Base: base, Quote: quote}, nil
}

// ParseInstrument accepts "EUR_USD", "EUR/USD", "EUR USD" and "EURUSD".
func ParseInstrument(s string) (Instrument, error) {
	s = strings.TrimSpace(s)
	for _, sep := range []string{"_", "/", " "} {
		if base, quote, ok := strings.Cut(s, sep); ok {
			return NewInstrument(base, quote)
		}
	}
	if len(s) != 6 {
		return Instrument{}, fmt.Errorf("invalid instrument %q", s)
	}
	return NewInstrument(s[:3], s[3:])
}

// String returns the OANDA style name, e.g. EUR_USD.
func (i Instrument) String() string {
	return i.Base + "_" + i.Quote
}

// Symbol returns the compact form, e.g. EURUSD.
func (i Instrument) Symbol() string {
	return i.Base + i.Quote
}

// IsZero reports whether the instrument has not been set.
func (i Instrument) IsZero() bool {
	return i.Base == "" && i.Quote == ""
}

func isCode(s string) bool {
	if len(s) != 3 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}

// Class groups instruments that share pip and contract rules.
type Class int

const (
	Standard Class = iota
	JpyQuote
	JpyBase
	GoldPair
)

func (c Class) String() string {
	switch c {
	case GoldPair:
		return "gold"
	case JpyQuote:
		return "jpy-quote"
	case JpyBase:
		return "jpy-base"
	default:
		return "standard"
	}
}

// Classify evaluates the rules in priority order; the first match wins.
func Classify(i Instrument) Class {
	switch {
	case i.Base == Gold || i.Quote == Gold:
		return GoldPair
	case i.Quote == "JPY":
		return JpyQuote
	case i.Base == "JPY":
		return JpyBase
	default:
		return Standard
	}
}

var (
	pipGold     = decimal.New(1, -2)
	pipJpyQuote = decimal.New(1, -2)
	pipJpyBase  = decimal.New(1, -6)
	pipStandard = decimal.New(1, -4)

	contractGold     = decimal.NewFromInt(100)
	contractStandard = decimal.NewFromInt(100_000)
)

// PipSize returns the price increment of one pip. It doubles as the
// quote-currency value of one pip per unit of contract.
func PipSize(i Instrument) decimal.Decimal {
	switch Classify(i) {
	case GoldPair:
		return pipGold
	case JpyQuote:
		return pipJpyQuote
	case JpyBase:
		return pipJpyBase
	default:
		return pipStandard
	}
}

// PipLocation returns the exponent of PipSize, e.g. -4 for EUR_USD.
func PipLocation(i Instrument) int {
	return int(PipSize(i).Exponent())
}

// ContractSize returns the units in one standard lot: 100 ounces for
// gold, 100,000 base units otherwise.
func ContractSize(i Instrument) decimal.Decimal {
	if Classify(i) == GoldPair {
		return contractGold
	}
	return contractStandard
}
