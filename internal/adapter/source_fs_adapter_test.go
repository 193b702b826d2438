package adapter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mrskwiw/routefix/internal/model"
)

func TestLocalSourceFSAdapter_ReadWriteRoundTrip(t *testing.T) {
	a := NewLocalSourceFSAdapter()
	path := m.Path(filepath.Join(t.TempDir(), "route.ts"))

	require.NoError(t, a.WriteFile(path, []byte("export const x = 1\n"), 0o644))

	content, err := a.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "export const x = 1\n", string(content))
}

func TestLocalSourceFSAdapter_WritePreservesMode(t *testing.T) {
	a := NewLocalSourceFSAdapter()
	path := m.Path(filepath.Join(t.TempDir(), "route.ts"))

	require.NoError(t, a.WriteFile(path, []byte("a"), 0o600))

	info, err := a.FileInfo(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestLocalSourceFSAdapter_ReadMissingFile(t *testing.T) {
	a := NewLocalSourceFSAdapter()

	_, err := a.ReadFile(m.Path(filepath.Join(t.TempDir(), "absent.ts")))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}
