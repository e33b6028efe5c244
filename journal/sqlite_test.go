package journal

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/lotsize/market"
	"github.com/rustyeddy/lotsize/risk"
)

func newTestSQLite(t *testing.T) (*SQLite, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "journal.db")
	j, err := NewSQLite(path)
	require.NoError(t, err)
	return j, path
}

func sampleResult() risk.Result {
	return risk.Result{
		Instrument:        market.Instrument{Base: "NZD", Quote: "CAD"},
		AccountCurrency:   "USD",
		Pips:              decimal.NewFromInt(20),
		Rate:              decimal.RequireFromString("0.62"),
		LotSize:           decimal.RequireFromString("0.8065"),
		AmountAtRisk:      decimal.NewFromInt(100),
		PositionSizeUnits: decimal.RequireFromString("80645.1613"),
	}
}

func TestSQLiteSchemaCreated(t *testing.T) {
	t.Parallel()

	j, path := newTestSQLite(t)
	assert.NoError(t, j.Close())

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	var name string
	err = db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='calculations'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "calculations", name)
}

func TestSQLiteRecordAndGet(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	j, _ := newTestSQLite(t)
	t.Cleanup(func() { _ = j.Close() })

	e := NewEntry("5000 USD", "2", "Buy NZDCAD 0.81250, SL 0.81050", sampleResult())
	require.NoError(t, j.Record(ctx, e))

	got, err := j.Get(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, e.ID, got.ID)
	assert.Equal(t, "NZD_CAD", got.Instrument)
	assert.Equal(t, "USD", got.AccountCurrency)
	assert.Equal(t, "5000 USD", got.BalanceText)
	assert.True(t, e.LotSize.Equal(got.LotSize))
	assert.True(t, e.PositionSizeUnits.Equal(got.PositionSizeUnits))
	assert.True(t, e.Time.Equal(got.Time))

	_, err = j.Get(ctx, "missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Contains(t, err.Error(), `"missing"`)
}

func TestSQLiteListNewestFirst(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	j, _ := newTestSQLite(t)
	t.Cleanup(func() { _ = j.Close() })

	var ids []string
	for i := 0; i < 3; i++ {
		e := NewEntry("1000", "1", "sig", sampleResult())
		ids = append(ids, e.ID)
		require.NoError(t, j.Record(ctx, e))
	}

	all, err := j.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, ids[2], all[0].ID)
	assert.Equal(t, ids[0], all[2].ID)

	two, err := j.List(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, two, 2)
}

func TestSQLiteDuplicateID(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	j, _ := newTestSQLite(t)
	t.Cleanup(func() { _ = j.Close() })

	e := NewEntry("1000", "1", "sig", sampleResult())
	require.NoError(t, j.Record(ctx, e))
	assert.Error(t, j.Record(ctx, e))
}
