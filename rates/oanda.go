package rates

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	// PracticeURL is the URL for OANDA's practice/demo environment
	PracticeURL = "https://api-fxpractice.oanda.com"
	// LiveURL is the URL for OANDA's live trading environment
	LiveURL = "https://api-fxtrade.oanda.com"
)

// BaseURL maps an environment name to its API host.
func BaseURL(env string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "practice", "demo", "":
		return PracticeURL, nil
	case "live":
		return LiveURL, nil
	default:
		return "", fmt.Errorf("unknown OANDA env %q (want practice|live)", env)
	}
}

// OANDAConfig configures the OANDA pricing lookup.
type OANDAConfig struct {
	BaseURL   string
	Token     string
	AccountID string
	// Currency is the account currency every lookup converts into.
	Currency string
	Timeout  time.Duration
}

// OANDA converts through live mid prices. It answers with a single rate,
// base -> Currency, taken from BASE_CUR or inverted from CUR_BASE.
type OANDA struct {
	client    *resty.Client
	accountID string
	currency  string
	logger    *zap.Logger
}

type pricingResponse struct {
	Prices []struct {
		Instrument string `json:"instrument"`
		Bids       []struct {
			Price decimal.Decimal `json:"price"`
		} `json:"bids"`
		Asks []struct {
			Price decimal.Decimal `json:"price"`
		} `json:"asks"`
	} `json:"prices"`
}

func NewOANDA(cfg OANDAConfig, logger *zap.Logger) (*OANDA, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Token == "" {
		return nil, errors.New("oanda token is required")
	}
	if cfg.AccountID == "" {
		return nil, errors.New("oanda account id is required")
	}
	if cfg.Currency == "" {
		return nil, errors.New("oanda account currency is required")
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = PracticeURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	rc := resty.New().
		SetBaseURL(strings.TrimSuffix(baseURL, "/")).
		SetTimeout(timeout).
		SetAuthToken(cfg.Token).
		SetHeader("Accept", "application/json")

	return &OANDA{
		client:    rc,
		accountID: cfg.AccountID,
		currency:  strings.ToUpper(cfg.Currency),
		logger:    logger,
	}, nil
}

func (o *OANDA) Rates(ctx context.Context, base string) (map[string]decimal.Decimal, error) {
	base = strings.ToUpper(strings.TrimSpace(base))
	if base == o.currency {
		return map[string]decimal.Decimal{base: decimal.NewFromInt(1)}, nil
	}

	mid, err := o.mid(ctx, base+"_"+o.currency)
	if err == nil {
		return map[string]decimal.Decimal{o.currency: mid}, nil
	}
	if !errors.Is(err, errUnknownInstrument) {
		return nil, err
	}

	// Only the inverted pair is listed, e.g. USD_JPY for a JPY -> USD rate.
	mid, err = o.mid(ctx, o.currency+"_"+base)
	if err != nil {
		return nil, err
	}
	if mid.IsZero() {
		return nil, errors.Errorf("zero price for %s_%s", o.currency, base)
	}
	return map[string]decimal.Decimal{o.currency: decimal.NewFromInt(1).Div(mid)}, nil
}

var errUnknownInstrument = errors.New("unknown instrument")

func (o *OANDA) mid(ctx context.Context, instrument string) (decimal.Decimal, error) {
	var out pricingResponse
	resp, err := o.client.R().
		SetContext(ctx).
		SetPathParam("account", o.accountID).
		SetQueryParam("instruments", instrument).
		SetResult(&out).
		Get("/v3/accounts/{account}/pricing")
	if err != nil {
		return decimal.Zero, errors.Wrapf(err, "get pricing for %s", instrument)
	}

	switch {
	case resp.StatusCode() == http.StatusBadRequest || resp.StatusCode() == http.StatusNotFound:
		return decimal.Zero, errors.Wrap(errUnknownInstrument, instrument)
	case resp.IsError():
		return decimal.Zero, errors.Errorf("oanda pricing http %d: %s", resp.StatusCode(), strings.TrimSpace(resp.String()))
	}

	for _, p := range out.Prices {
		if p.Instrument != instrument || len(p.Bids) == 0 || len(p.Asks) == 0 {
			continue
		}
		mid := p.Bids[0].Price.Add(p.Asks[0].Price).Div(decimal.NewFromInt(2))
		o.logger.Debug("oanda mid",
			zap.String("instrument", instrument),
			zap.String("mid", mid.String()))
		return mid, nil
	}
	return decimal.Zero, errors.Wrap(errUnknownInstrument, instrument)
}
