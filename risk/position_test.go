package risk

import (
	"context"
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/lotsize/market"
	"github.com/rustyeddy/lotsize/signal"
)

type fakeRates struct {
	rates  map[string]decimal.Decimal
	err    error
	called int
}

func (f *fakeRates) Rates(ctx context.Context, base string) (map[string]decimal.Decimal, error) {
	f.called++
	return f.rates, f.err
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func usd(amount string) market.AccountBalance {
	return market.AccountBalance{Amount: d(amount), Currency: "USD"}
}

func TestPips(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		inst  market.Instrument
		entry string
		stop  string
		want  string
	}{
		{"eurusd", market.Instrument{Base: "EUR", Quote: "USD"}, "1.05000", "1.04800", "20"},
		{"gold", market.Instrument{Base: "XAU", Quote: "USD"}, "2000.50", "1995.50", "500"},
		{"usdjpy", market.Instrument{Base: "USD", Quote: "JPY"}, "150.00", "149.50", "50"},
		{"jpy base", market.Instrument{Base: "JPY", Quote: "USD"}, "0.006700", "0.006650", "50"},
		{"stop above entry", market.Instrument{Base: "EUR", Quote: "USD"}, "1.0000", "1.0100", "100"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Pips(tt.inst, d(tt.entry), d(tt.stop))
			assert.True(t, d(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestStopPips_ExplicitOverrides(t *testing.T) {
	t.Parallel()

	sig, err := signal.Parse("Buy EURUSD 1.05000, SL 1.04800 (15 pips)")
	require.NoError(t, err)
	assert.Equal(t, "15", StopPips(sig).String())

	sig.ExplicitPips = nil
	assert.Equal(t, "20", StopPips(sig).String())
}

func TestSize_EndToEnd_NZDCAD(t *testing.T) {
	t.Parallel()

	rates := &fakeRates{rates: map[string]decimal.Decimal{"USD": d("0.62")}}
	s := NewSizer(rates, nil)

	res, err := s.Size(context.Background(),
		Params{Balance: usd("5000"), RiskPercent: d("2")},
		market.Instrument{Base: "NZD", Quote: "CAD"},
		d("20"))
	require.NoError(t, err)

	assert.Equal(t, 1, rates.called)
	assert.Equal(t, "100", res.AmountAtRisk.String())
	assert.Equal(t, "0.000062", res.PipValue.String())
	assert.Equal(t, "0.8065", res.LotSize.String())
	assert.Equal(t, "80645.1613", res.PositionSizeUnits.String())
	assert.Equal(t, "USD", res.AccountCurrency)
}

func TestSize_SameCurrencySkipsLookup(t *testing.T) {
	t.Parallel()

	rates := &fakeRates{err: errors.New("must not be called")}
	s := NewSizer(rates, nil)

	res, err := s.Size(context.Background(),
		Params{Balance: usd("10000"), RiskPercent: d("1")},
		market.Instrument{Base: "EUR", Quote: "USD"},
		d("100"))
	require.NoError(t, err)

	assert.Equal(t, 0, rates.called)
	assert.Equal(t, "1", res.Rate.String())
	// 100 / (100 * 0.0001 * 100000)
	assert.Equal(t, "0.1", res.LotSize.String())
	assert.Equal(t, "10000", res.PositionSizeUnits.String())
}

func TestSize_Gold(t *testing.T) {
	t.Parallel()

	s := NewSizer(nil, nil)
	res, err := s.Size(context.Background(),
		Params{Balance: usd("10000"), RiskPercent: d("1")},
		market.Instrument{Base: "XAU", Quote: "USD"},
		d("500"))
	require.NoError(t, err)

	// 100 / (500 * 0.01 * 100)
	assert.Equal(t, "0.2", res.LotSize.String())
	assert.Equal(t, "20", res.PositionSizeUnits.String())
}

func TestSize_MissingRateDefaultsToOne(t *testing.T) {
	t.Parallel()

	rates := &fakeRates{rates: map[string]decimal.Decimal{"EUR": d("0.9")}}
	s := NewSizer(rates, nil)

	res, err := s.Size(context.Background(),
		Params{Balance: usd("5000"), RiskPercent: d("2")},
		market.Instrument{Base: "NZD", Quote: "CAD"},
		d("20"))
	require.NoError(t, err)
	assert.Equal(t, "1", res.Rate.String())
	assert.Equal(t, "0.5", res.LotSize.String())
}

func TestSize_Errors(t *testing.T) {
	t.Parallel()

	inst := market.Instrument{Base: "NZD", Quote: "CAD"}
	ok := Params{Balance: usd("5000"), RiskPercent: d("2")}

	tests := []struct {
		name   string
		rates  *fakeRates
		params Params
		pips   string
		want   error
	}{
		{"zero pips", &fakeRates{}, ok, "0", ErrInvalidStopLossDistance},
		{"negative pips", &fakeRates{}, ok, "-3", ErrInvalidStopLossDistance},
		{"lookup error", &fakeRates{err: errors.New("timeout")}, ok, "20", ErrRateLookupFailed},
		{"zero rate", &fakeRates{rates: map[string]decimal.Decimal{"USD": decimal.Zero}}, ok, "20", ErrRateLookupFailed},
		{"zero risk", &fakeRates{}, Params{Balance: usd("5000"), RiskPercent: decimal.Zero}, "20", ErrInvalidRiskPercent},
		{"risk over 100", &fakeRates{}, Params{Balance: usd("5000"), RiskPercent: d("100.5")}, "20", ErrInvalidRiskPercent},
		{"negative balance", &fakeRates{}, Params{Balance: usd("-1"), RiskPercent: d("1")}, "20", signal.ErrInvalidAccountBalance},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewSizer(tt.rates, nil).Size(context.Background(), tt.params, inst, d(tt.pips))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestSize_ZeroPipsNeverLooksUpRate(t *testing.T) {
	t.Parallel()

	rates := &fakeRates{}
	_, err := NewSizer(rates, nil).Size(context.Background(),
		Params{Balance: usd("5000"), RiskPercent: d("2")},
		market.Instrument{Base: "NZD", Quote: "CAD"},
		decimal.Zero)
	require.Error(t, err)
	assert.Equal(t, 0, rates.called)
}

func TestSize_LotTiers(t *testing.T) {
	t.Parallel()

	rates := &fakeRates{rates: map[string]decimal.Decimal{"USD": d("0.0067")}}
	s := NewSizer(rates, nil)

	for _, pips := range []string{"7", "13", "20", "33.3", "157"} {
		res, err := s.Size(context.Background(),
			Params{Balance: usd("12345.67"), RiskPercent: d("1.5")},
			market.Instrument{Base: "USD", Quote: "JPY"},
			d(pips))
		require.NoError(t, err)

		std, _ := res.StandardLots.Float64()
		mini, _ := res.MiniLots.Float64()
		micro, _ := res.MicroLots.Float64()
		assert.InDelta(t, std*10, mini, 1e-4)
		assert.InDelta(t, std*100, micro, 1e-4)
		assert.False(t, math.IsInf(std, 0) || math.IsNaN(std))
	}
}

func TestResultDisplay(t *testing.T) {
	t.Parallel()

	res := Result{
		AccountCurrency:   "USD",
		LotSize:           d("12.3456"),
		AmountAtRisk:      d("1234.5"),
		PositionSizeUnits: d("1234560"),
		StandardLots:      d("12.3456"),
		MiniLots:          d("123.456"),
		MicroLots:         d("1234.56"),
	}

	fields := res.Display()
	require.Len(t, fields, 6)
	assert.Equal(t, Field{"Lot Size", "12.3456"}, fields[0])
	assert.Equal(t, Field{"Amount at Risk", "1,234.50 USD"}, fields[1])
	assert.Equal(t, Field{"Position Size (units)", "1,234,560.0000"}, fields[2])
	assert.Equal(t, Field{"Micro Lots", "1,234.5600"}, fields[5])
}
