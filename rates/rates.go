// Package rates provides currency conversion lookups for the sizer.
package rates

import (
	"github.com/rustyeddy/lotsize/market"
)

// Lookup maps a base currency to its conversion rates.
type Lookup = market.RateSource

var (
	_ Lookup = (*Client)(nil)
	_ Lookup = (*OANDA)(nil)
	_ Lookup = Static(nil)
)
