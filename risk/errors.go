package risk

import "github.com/pkg/errors"

var (
	ErrInvalidStopLossDistance = errors.New("invalid stop loss distance")
	ErrRateLookupFailed        = errors.New("rate lookup failed")
	ErrInvalidRiskPercent      = errors.New("invalid risk percent")
)
