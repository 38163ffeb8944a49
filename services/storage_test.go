package services

import (
	"consulting_site_go/config"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage(t *testing.T) {
	tempDir := t.TempDir()
	storage := NewLocalStorage(tempDir)
	ctx := context.Background()

	t.Run("Put creates nested file", func(t *testing.T) {
		err := storage.Put(ctx, "inquiries/2025/03/01/a.json", "application/json", []byte(`{"a":1}`))
		assert.NoError(t, err)

		_, err = os.Stat(filepath.Join(tempDir, "inquiries", "2025", "03", "01", "a.json"))
		assert.NoError(t, err)
	})

	t.Run("Get retrieves content", func(t *testing.T) {
		data, err := storage.Get(ctx, "inquiries/2025/03/01/a.json")
		assert.NoError(t, err)
		assert.Equal(t, `{"a":1}`, string(data))
	})

	t.Run("Get missing object", func(t *testing.T) {
		_, err := storage.Get(ctx, "inquiries/nope.json")
		assert.ErrorIs(t, err, ErrObjectNotFound)
	})

	t.Run("List filters by prefix and sorts", func(t *testing.T) {
		require.NoError(t, storage.Put(ctx, "inquiries/2025/02/28/b.json", "application/json", []byte("{}")))
		require.NoError(t, storage.Put(ctx, "other/c.txt", "text/plain", []byte("c")))

		keys, err := storage.List(ctx, "inquiries/")
		assert.NoError(t, err)
		assert.Equal(t, []string{"inquiries/2025/02/28/b.json", "inquiries/2025/03/01/a.json"}, keys)
	})

	t.Run("Rejects keys outside the base path", func(t *testing.T) {
		for _, key := range []string{"../escape.json", "a/../../escape.json", "/etc/passwd"} {
			err := storage.Put(ctx, key, "text/plain", []byte("x"))
			assert.Error(t, err, key)
		}
		_, err := storage.Get(ctx, "../escape.json")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrObjectNotFound)
	})

	t.Run("List on missing directory", func(t *testing.T) {
		empty := NewLocalStorage(filepath.Join(tempDir, "does-not-exist"))
		keys, err := empty.List(ctx, "")
		assert.NoError(t, err)
		assert.Empty(t, keys)
	})

	t.Run("Name", func(t *testing.T) {
		assert.Equal(t, "local:"+tempDir, storage.Name())
	})
}

func TestNewObjectStore(t *testing.T) {
	t.Run("Falls back to local storage without R2 credentials", func(t *testing.T) {
		dir := t.TempDir()
		store := NewObjectStore(&config.Config{R2AccountID: "account"}, dir)
		assert.IsType(t, &LocalStorage{}, store)
		assert.Equal(t, "local:"+dir, store.Name())
	})
}

func TestR2Configured(t *testing.T) {
	cfg := &config.Config{
		R2AccountID:       "account",
		R2AccessKeyID:     "key",
		R2SecretAccessKey: "secret",
	}
	assert.False(t, cfg.R2Configured())

	cfg.R2BucketName = "bucket"
	assert.True(t, cfg.R2Configured())

	storage, err := NewR2Storage(cfg)
	require.NoError(t, err)
	assert.Equal(t, "r2:bucket", storage.Name())
}
