package rates

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientRates_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v4/latest/NZD", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"base":"NZD","date":"2024-01-02","rates":{"USD":0.62,"CAD":0.83,"NZD":1}}`))
	}))
	defer server.Close()

	c := NewClient(ClientConfig{BaseURL: server.URL + "/", Timeout: 5 * time.Second}, nil)
	got, err := c.Rates(context.Background(), "nzd")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "0.62", got["USD"].String())
	assert.Equal(t, "0.83", got["CAD"].String())
}

func TestClientRates_MissingRates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"base":"NZD"}`))
	}))
	defer server.Close()

	c := NewClient(ClientConfig{BaseURL: server.URL}, nil)
	got, err := c.Rates(context.Background(), "NZD")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestClientRates_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"result":"error","error-type":"unsupported-code"}`))
	}))
	defer server.Close()

	c := NewClient(ClientConfig{BaseURL: server.URL}, nil)
	_, err := c.Rates(context.Background(), "ZZZ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
}

func TestClientRates_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	c := NewClient(ClientConfig{BaseURL: url, Timeout: time.Second}, nil)
	_, err := c.Rates(context.Background(), "NZD")
	assert.Error(t, err)
}

func TestClientRates_EmptyBase(t *testing.T) {
	c := NewClient(ClientConfig{}, nil)
	_, err := c.Rates(context.Background(), " ")
	assert.Error(t, err)
}

func TestClientRates_ContextCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewClient(ClientConfig{BaseURL: server.URL}, nil)
	_, err := c.Rates(ctx, "NZD")
	assert.Error(t, err)
}
