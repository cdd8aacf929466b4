package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/storefront-connect/pkg/core"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "storefront.yaml"), []byte(content), 0o644))
}

func TestLoad_ReadsSettingsFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "local.data_dir: /tmp/shop\nlocal.coupon_percent: 15\n")

	settings, err := Load("", dir)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/shop", settings.String("local.data_dir", ""))
	assert.Equal(t, 15, settings.Int("local.coupon_percent", 0))
}

// TestLoad_MissingFileIsNotAnError verifies integrations fall back to their
// factory defaults when no settings file exists.
func TestLoad_MissingFileIsNotAnError(t *testing.T) {
	settings, err := Load("", t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, settings)
}

func TestLoad_ExplicitPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("catalog.database: projects/p/instances/i/databases/d\n"), 0o644))

	settings, err := Load(path, "")
	require.NoError(t, err)
	assert.Equal(t, "projects/p/instances/i/databases/d", settings.String("catalog.database", ""))
}

// TestLoadMerged_OverridesWin verifies overrides apply shallow,
// later-write-wins on top of the file.
func TestLoadMerged_OverridesWin(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "local.data_dir: /from/file\nlocal.coupon_percent: 15\n")

	settings, err := LoadMerged("", dir, core.Settings{"local.data_dir": "/from/flag"})
	require.NoError(t, err)

	assert.Equal(t, "/from/flag", settings.String("local.data_dir", ""))
	assert.Equal(t, 15, settings.Int("local.coupon_percent", 0))
}
