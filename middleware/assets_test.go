package middleware

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeFileHash(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "test.css")
	require.NoError(t, os.WriteFile(tmpFile, []byte("body { color: red; }"), 0644))

	hash := computeFileHash(tmpFile)
	assert.Len(t, hash, 8)

	assert.Empty(t, computeFileHash("non_existent_file.css"))
}

func TestAssetURL(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "css"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "css", "site.css"), []byte("body{}"), 0644))

	InitAssetVersions(dir)
	t.Cleanup(func() { InitAssetVersions(t.TempDir()) })

	cssURL := AssetURL("css/site.css")
	assert.Contains(t, cssURL, "/static/css/site.css?v=")
	assert.NotEqual(t, "/static/css/site.css?v=1", cssURL)

	assert.Equal(t, "/static/js/site.js?v=1", AssetURL("js/site.js"))
}
