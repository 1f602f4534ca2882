package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"
)

func TestGetPath(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	p, err := GetPath()
	require.NoError(t, err)
	assert.Equal(t, ".backdrop", filepath.Base(p))
}

func TestUnsplashAccessKey(t *testing.T) {
	keyring.MockInit()
	original := UnsplashAccessKey
	defer func() { UnsplashAccessKey = original }()
	UnsplashAccessKey = "build-time-key"

	key, err := GetUnsplashAccessKey()
	require.NoError(t, err)
	assert.Equal(t, "build-time-key", key, "falls back when nothing is stored")

	require.NoError(t, SetUnsplashAccessKey("user-key"))
	key, err = GetUnsplashAccessKey()
	require.NoError(t, err)
	assert.Equal(t, "user-key", key)

	require.NoError(t, SetUnsplashAccessKey(""))
	key, err = GetUnsplashAccessKey()
	require.NoError(t, err)
	assert.Equal(t, "build-time-key", key)
}
