package rates

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pricingServer(t *testing.T, prices map[string]string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "/v3/accounts/001-001-1-001/pricing", r.URL.Path)

		instrument := r.URL.Query().Get("instruments")
		body, ok := prices[instrument]
		if !ok {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"errorMessage":"Invalid value specified for 'instruments'"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
}

func newTestOANDA(t *testing.T, url string) *OANDA {
	t.Helper()
	o, err := NewOANDA(OANDAConfig{
		BaseURL:   url,
		Token:     "test-token",
		AccountID: "001-001-1-001",
		Currency:  "USD",
	}, nil)
	require.NoError(t, err)
	return o
}

func TestBaseURL(t *testing.T) {
	u, err := BaseURL("practice")
	require.NoError(t, err)
	assert.Equal(t, PracticeURL, u)

	u, err = BaseURL("LIVE")
	require.NoError(t, err)
	assert.Equal(t, LiveURL, u)

	_, err = BaseURL("staging")
	assert.Error(t, err)
}

func TestNewOANDA_Validation(t *testing.T) {
	_, err := NewOANDA(OANDAConfig{AccountID: "a", Currency: "USD"}, nil)
	assert.Error(t, err)
	_, err = NewOANDA(OANDAConfig{Token: "t", Currency: "USD"}, nil)
	assert.Error(t, err)
	_, err = NewOANDA(OANDAConfig{Token: "t", AccountID: "a"}, nil)
	assert.Error(t, err)
}

func TestOANDARates_Direct(t *testing.T) {
	server := pricingServer(t, map[string]string{
		"NZD_USD": `{"prices":[{"instrument":"NZD_USD","bids":[{"price":"0.6198"}],"asks":[{"price":"0.6202"}]}]}`,
	})
	defer server.Close()

	got, err := newTestOANDA(t, server.URL).Rates(context.Background(), "NZD")
	require.NoError(t, err)
	assert.Equal(t, "0.62", got["USD"].String())
}

func TestOANDARates_Inverted(t *testing.T) {
	server := pricingServer(t, map[string]string{
		"USD_JPY": `{"prices":[{"instrument":"USD_JPY","bids":[{"price":"124.99"}],"asks":[{"price":"125.01"}]}]}`,
	})
	defer server.Close()

	got, err := newTestOANDA(t, server.URL).Rates(context.Background(), "JPY")
	require.NoError(t, err)
	assert.Equal(t, "0.008", got["USD"].String())
}

func TestOANDARates_SameCurrency(t *testing.T) {
	o := newTestOANDA(t, "http://127.0.0.1:0")
	got, err := o.Rates(context.Background(), "usd")
	require.NoError(t, err)
	assert.Equal(t, "1", got["USD"].String())
}

func TestOANDARates_Unknown(t *testing.T) {
	server := pricingServer(t, map[string]string{})
	defer server.Close()

	_, err := newTestOANDA(t, server.URL).Rates(context.Background(), "ZZZ")
	assert.Error(t, err)
}

func TestOANDARates_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"errorMessage":"Insufficient authorization"}`))
	}))
	defer server.Close()

	_, err := newTestOANDA(t, server.URL).Rates(context.Background(), "NZD")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}
