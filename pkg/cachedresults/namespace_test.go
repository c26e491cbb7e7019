package cachedresults

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputNamespaceFollowsContents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalogue.txt")
	require.NoError(t, os.WriteFile(path, []byte("Stop A: 0, 0\n"), 0o600))

	first, err := InputNamespace(path)
	require.NoError(t, err)

	again, err := InputNamespace(path)
	require.NoError(t, err)
	assert.Equal(t, first, again)

	require.NoError(t, os.WriteFile(path, []byte("Stop A: 0, 1\n"), 0o600))

	edited, err := InputNamespace(path)
	require.NoError(t, err)
	assert.NotEqual(t, first, edited)
}

func TestInputNamespaceMissingFile(t *testing.T) {
	_, err := InputNamespace(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}
