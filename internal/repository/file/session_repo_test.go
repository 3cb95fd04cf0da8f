package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventboard/internal/domain"
)

func TestSessionRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "session.yaml")
	repo := NewSessionRepository(path)

	_, err := repo.Get(ctx, "sess-1", domain.IdentityKey)
	require.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, repo.Put(ctx, "sess-1", domain.IdentityKey, "20520001"))
	require.NoError(t, repo.Put(ctx, "sess-2", domain.IdentityKey, "20520002"))

	// A second repository over the same file sees the values.
	reopened := NewSessionRepository(path)
	got, err := reopened.Get(ctx, "sess-1", domain.IdentityKey)
	require.NoError(t, err)
	assert.Equal(t, "20520001", got)
	got, err = reopened.Get(ctx, "sess-2", domain.IdentityKey)
	require.NoError(t, err)
	assert.Equal(t, "20520002", got)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "sessions:")
	assert.Contains(t, string(raw), "mssv: \"20520001\"")
}

func TestSessionRepository_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sessions: [not, a, map"), 0o600))

	_, err := NewSessionRepository(path).Get(context.Background(), "sess-1", domain.IdentityKey)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}
