package rates

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatic(t *testing.T) {
	t.Parallel()

	s := Static{
		"NZD": {"USD": decimal.RequireFromString("0.62")},
		"USD": {"JPY": decimal.RequireFromString("125")},
	}

	got, err := s.Rates(context.Background(), "nzd")
	require.NoError(t, err)
	assert.Equal(t, "0.62", got["USD"].String())

	got, err = s.Rates(context.Background(), "JPY")
	require.NoError(t, err)
	assert.Equal(t, "0.008", got["USD"].String())

	got, err = s.Rates(context.Background(), "CHF")
	require.NoError(t, err)
	assert.Empty(t, got)
}
