package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type probe struct {
	ID   uint
	Name string
}

func TestInitializeCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "leads.db")

	require.NoError(t, Initialize(path, "production"))
	require.NoError(t, AutoMigrate(&probe{}))
	require.NoError(t, DB.Create(&probe{Name: "x"}).Error)

	var count int64
	DB.Model(&probe{}).Count(&count)
	assert.Equal(t, int64(1), count)

	require.NoError(t, Close())
	assert.Nil(t, DB)
	assert.FileExists(t, path)
}

func TestAutoMigrateWithoutDB(t *testing.T) {
	DB = nil
	assert.Error(t, AutoMigrate(&probe{}))
	assert.NoError(t, Close())
}
