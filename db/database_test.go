package db

import (
	"consulting_site_go/models"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "inquiries.db")

	conn, err := Open(path, "production")
	require.NoError(t, err)
	defer Close(conn)

	assert.True(t, conn.Migrator().HasTable(&models.Inquiry{}))
	assert.FileExists(t, path)
}

func TestMigrateNil(t *testing.T) {
	assert.Error(t, Migrate(nil))
	assert.NoError(t, Close(nil))
}
