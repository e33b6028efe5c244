package rates

import (
	"context"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// DefaultURL serves exchangerate-api style /v4/latest/{BASE} documents.
const DefaultURL = "https://api.exchangerate-api.com"

// ClientConfig configures the HTTP lookup.
type ClientConfig struct {
	BaseURL string
	Timeout time.Duration
	Retries int
}

// Client fetches {"base": "NZD", "rates": {"USD": 0.62, ...}} documents.
// Responses are not cached.
type Client struct {
	client *resty.Client
	logger *zap.Logger
}

type latestResponse struct {
	Base  string                     `json:"base"`
	Rates map[string]decimal.Decimal `json:"rates"`
}

func NewClient(cfg ClientConfig, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	rc := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(cfg.Retries).
		SetRetryWaitTime(500*time.Millisecond).
		SetRetryMaxWaitTime(5*time.Second).
		SetHeader("Accept", "application/json")

	return &Client{client: rc, logger: logger}
}

// Rates returns the conversion rates from base to every currency the
// service knows.
func (c *Client) Rates(ctx context.Context, base string) (map[string]decimal.Decimal, error) {
	base = strings.ToUpper(strings.TrimSpace(base))
	if base == "" {
		return nil, errors.New("base currency is required")
	}

	var out latestResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetPathParam("base", base).
		SetResult(&out).
		Get("/v4/latest/{base}")
	if err != nil {
		return nil, errors.Wrapf(err, "get rates for %s", base)
	}
	if resp.IsError() {
		return nil, errors.Errorf("rates API error (status %d): %s", resp.StatusCode(), strings.TrimSpace(resp.String()))
	}

	c.logger.Debug("rates fetched",
		zap.String("base", base),
		zap.Int("count", len(out.Rates)),
		zap.Duration("took", resp.Time()))

	if out.Rates == nil {
		return map[string]decimal.Decimal{}, nil
	}
	return out.Rates, nil
}
