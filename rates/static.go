package rates

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
)

// Static is a fixed rate table, base -> quote -> rate. A base missing
// from the table is answered from inverted entries where possible.
type Static map[string]map[string]decimal.Decimal

func (s Static) Rates(ctx context.Context, base string) (map[string]decimal.Decimal, error) {
	base = strings.ToUpper(strings.TrimSpace(base))

	out := make(map[string]decimal.Decimal)
	for other, table := range s {
		if r, ok := table[base]; ok && r.IsPositive() {
			out[other] = decimal.NewFromInt(1).Div(r)
		}
	}
	for quote, r := range s[base] {
		out[quote] = r
	}
	return out, nil
}
