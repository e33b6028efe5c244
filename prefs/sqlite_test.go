package prefs

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLite(t *testing.T) (*SQLite, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "prefs.db")
	s, err := NewSQLite(path)
	require.NoError(t, err)
	return s, path
}

func TestSQLite_LoadEmpty(t *testing.T) {
	t.Parallel()

	s, _ := newTestSQLite(t)
	t.Cleanup(func() { _ = s.Close() })

	p, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.True(t, p.IsZero())
}

func TestSQLite_SaveLoadSurvivesReopen(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s, path := newTestSQLite(t)

	want := Preferences{AccountBalance: "5000 USD", RiskPercentage: "2"}
	require.NoError(t, s.Save(ctx, want))
	require.NoError(t, s.Close())

	s2, err := NewSQLite(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s2.Close() })

	got, err := s2.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSQLite_SaveOverwritesAndDeletesEmpty(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s, _ := newTestSQLite(t)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.Save(ctx, Preferences{AccountBalance: "1000", RiskPercentage: "1"}))
	require.NoError(t, s.Save(ctx, Preferences{RiskPercentage: "1.5"}))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, Preferences{RiskPercentage: "1.5"}, got)
}

func TestSQLite_Clear(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s, _ := newTestSQLite(t)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.Save(ctx, Preferences{AccountBalance: "1000", RiskPercentage: "1"}))
	require.NoError(t, s.Clear(ctx))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.True(t, got.IsZero())
}

func TestMemory(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	m := NewMemory()

	require.NoError(t, m.Save(ctx, Preferences{AccountBalance: "1000"}))
	got, err := m.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "1000", got.AccountBalance)
	assert.Equal(t, 1, m.Saves())

	require.NoError(t, m.Clear(ctx))
	got, _ = m.Load(ctx)
	assert.True(t, got.IsZero())
	assert.NoError(t, m.Close())
}
