package risk

import (
	"context"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/rustyeddy/lotsize/market"
	"github.com/rustyeddy/lotsize/signal"
)

const (
	lotPlaces   = 4
	moneyPlaces = 2
)

// Params are the account side of a sizing request.
type Params struct {
	Balance     market.AccountBalance
	RiskPercent decimal.Decimal // 2 means 2%
}

// Validate checks the balance is non-negative and the risk percent is
// in (0, 100].
func (p Params) Validate() error {
	if p.Balance.Amount.IsNegative() {
		return errors.Wrapf(signal.ErrInvalidAccountBalance, "balance must not be negative, got %s", p.Balance.Amount)
	}
	if !p.RiskPercent.IsPositive() || p.RiskPercent.GreaterThan(hundred) {
		return errors.Wrapf(ErrInvalidRiskPercent, "risk percent must be in (0, 100], got %s", p.RiskPercent)
	}
	return nil
}

// Result is one finished calculation. Lot and unit figures carry four
// fractional digits, AmountAtRisk two.
type Result struct {
	Instrument      market.Instrument
	AccountCurrency string

	Pips     decimal.Decimal
	Rate     decimal.Decimal // quote -> account
	PipValue decimal.Decimal // account currency per pip per unit

	LotSize           decimal.Decimal
	AmountAtRisk      decimal.Decimal
	PositionSizeUnits decimal.Decimal
	StandardLots      decimal.Decimal
	MiniLots          decimal.Decimal
	MicroLots         decimal.Decimal
}

// Sizer turns risk into a lot size. It needs a rate source whenever the
// quote currency differs from the account currency.
type Sizer struct {
	rates  market.RateSource
	logger *zap.Logger
}

func NewSizer(rates market.RateSource, logger *zap.Logger) *Sizer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Sizer{rates: rates, logger: logger}
}

// Size computes
//
//	lotSize = riskAmount / (pips * pipValueQuote * rate * contractSize)
//
// pips must be positive; the rate lookup is the only blocking call.
func (s *Sizer) Size(ctx context.Context, p Params, inst market.Instrument, pips decimal.Decimal) (Result, error) {
	if err := p.Validate(); err != nil {
		return Result{}, err
	}
	if !pips.IsPositive() {
		return Result{}, errors.Wrapf(ErrInvalidStopLossDistance, "stop distance must be positive, got %s pips", pips)
	}

	account := p.Balance.Currency
	rate := decimal.NewFromInt(1)
	if inst.Quote != account {
		if s.rates == nil {
			return Result{}, errors.Wrapf(ErrRateLookupFailed, "no rate source for %s -> %s", inst.Quote, account)
		}
		r, found, err := market.QuoteToAccountRate(ctx, inst, account, s.rates)
		if err != nil {
			return Result{}, errors.Wrapf(ErrRateLookupFailed, "%s -> %s: %v", inst.Quote, account, err)
		}
		if !found {
			s.logger.Debug("rate missing from response, using 1",
				zap.String("quote", inst.Quote),
				zap.String("account", account))
		}
		rate = r
	}
	if !rate.IsPositive() {
		return Result{}, errors.Wrapf(ErrRateLookupFailed, "%s -> %s rate is %s", inst.Quote, account, rate)
	}

	riskAmt := RiskAmount(p.Balance.Amount, p.RiskPercent)
	pipValue := market.PipSize(inst).Mul(rate)
	contract := market.ContractSize(inst)

	lots := riskAmt.Div(pips.Mul(pipValue).Mul(contract))
	standard := lots.Round(lotPlaces)

	res := Result{
		Instrument:        inst,
		AccountCurrency:   account,
		Pips:              pips,
		Rate:              rate,
		PipValue:          pipValue,
		LotSize:           standard,
		AmountAtRisk:      riskAmt.Round(moneyPlaces),
		PositionSizeUnits: lots.Mul(contract).Round(lotPlaces),
		StandardLots:      standard,
		MiniLots:          standard.Mul(ten),
		MicroLots:         standard.Mul(hundred),
	}

	s.logger.Debug("position sized",
		zap.String("instrument", inst.String()),
		zap.String("pips", pips.String()),
		zap.String("rate", rate.String()),
		zap.String("lot_size", res.LotSize.String()))

	return res, nil
}
