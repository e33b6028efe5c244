// Package prefs persists the calculator inputs that survive between
// sessions: the account balance text and the risk percentage.
package prefs

import "context"

// Keys of the two persisted slots.
const (
	KeyAccountBalance = "accountBalance"
	KeyRiskPercentage = "riskPercentage"
)

// Preferences holds the raw text of each slot. Empty means unset.
type Preferences struct {
	AccountBalance string `json:"accountBalance"`
	RiskPercentage string `json:"riskPercentage"`
}

// IsZero reports whether both slots are unset.
func (p Preferences) IsZero() bool {
	return p.AccountBalance == "" && p.RiskPercentage == ""
}

type Store interface {
	Load(ctx context.Context) (Preferences, error)
	Save(ctx context.Context, p Preferences) error
	Clear(ctx context.Context) error
	Close() error
}
