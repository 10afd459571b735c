package db

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "arbiter.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSettingsDefaults(t *testing.T) {
	store := openTestStore(t)
	got, err := store.GetSettings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), got)
}

func TestSettingsRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)
	want := Settings{
		ClockLimitMin:  0.5,
		ClockIncrement: 0,
		Variant:        "chess960",
		Rated:          false,
		RandomColor:    true,
	}
	require.NoError(t, store.UpdateSettings(ctx, want))
	got, err := store.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSettingsSurviveReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "arbiter.sqlite")
	store, err := Open(path)
	require.NoError(t, err)
	s := DefaultSettings()
	s.ClockLimitMin = 15
	require.NoError(t, store.UpdateSettings(ctx, s))
	require.NoError(t, store.Close())

	store, err = Open(path)
	require.NoError(t, err)
	defer store.Close()
	got, err := store.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, 15.0, got.ClockLimitMin)
}

func TestSessions(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	sess, err := store.CreateSession(ctx, "TD", "lip_secret")
	require.NoError(t, err)
	require.NotEmpty(t, sess.ID)

	got, err := store.SessionByID(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "TD", got.Username)
	assert.Equal(t, "lip_secret", got.APIToken)
	assert.False(t, got.CreatedAt.IsZero())

	require.NoError(t, store.TouchSession(ctx, sess.ID))
	require.NoError(t, store.DeleteSession(ctx, sess.ID))
	_, err = store.SessionByID(ctx, sess.ID)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestPruneSessions(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)
	old, err := store.CreateSession(ctx, "a", "t")
	require.NoError(t, err)
	_, err = store.db.ExecContext(ctx, `UPDATE sessions SET last_seen_at = ? WHERE id = ?`,
		time.Now().Add(-48*time.Hour).UTC().Format(time.RFC3339), old.ID)
	require.NoError(t, err)
	fresh, err := store.CreateSession(ctx, "b", "t")
	require.NoError(t, err)

	n, err := store.PruneSessions(ctx, time.Now().Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	_, err = store.SessionByID(ctx, fresh.ID)
	assert.NoError(t, err)
}
