package signal

import "github.com/pkg/errors"

var (
	ErrInvalidAccountBalance = errors.New("invalid account balance")
	ErrInvalidInstrument     = errors.New("invalid instrument")
	ErrInvalidEntryPrice     = errors.New("invalid entry price")
	ErrInvalidStopLoss       = errors.New("invalid stop loss")
)
