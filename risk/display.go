package risk

import (
	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// Field is one labelled line of the result panel.
type Field struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Display renders the six result figures with thousands grouping. The
// strings are for people only; compute with the Result fields.
func (r Result) Display() []Field {
	return []Field{
		{"Lot Size", group(r.LotSize, "#,###.####")},
		{"Amount at Risk", group(r.AmountAtRisk, "#,###.##") + " " + r.AccountCurrency},
		{"Position Size (units)", group(r.PositionSizeUnits, "#,###.####")},
		{"Standard Lots", group(r.StandardLots, "#,###.####")},
		{"Mini Lots", group(r.MiniLots, "#,###.####")},
		{"Micro Lots", group(r.MicroLots, "#,###.####")},
	}
}

func group(d decimal.Decimal, format string) string {
	f, _ := d.Float64()
	return humanize.FormatFloat(format, f)
}
