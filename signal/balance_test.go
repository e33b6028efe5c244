package signal

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBalance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in       string
		amount   string
		currency string
	}{
		{"1000 USD", "1000", "USD"},
		{"1000", "1000", "USD"},
		{"  5000.50 eur ", "5000.5", "EUR"},
		{"250GBP", "250", "GBP"},
		{"12,345.67 JPY", "12345.67", "JPY"},
		{"0", "0", "USD"},
		{"5000 USD account", "5000", "USD"},
		{"5000 US", "5000", "USD"},
		{"1000 dollars", "1000", "USD"},
		{"2,500 gbp balance", "2500", "GBP"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := ParseBalance(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.amount, got.Amount.String())
			assert.Equal(t, tt.currency, got.Currency)
		})
	}
}

func TestParseBalance_Invalid(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"", "USD", "abc 1000", "-100 USD", "balance 1000"} {
		in := in
		t.Run(in, func(t *testing.T) {
			t.Parallel()
			_, err := ParseBalance(in)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidAccountBalance))
		})
	}
}
