package hmconfig_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"wisp/internal/hmconfig"
)

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	cfg, err := hmconfig.Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	assert.NoError(t, err)
	assert.Empty(t, cfg.Prelude)
	assert.False(t, cfg.Verbose)
}

func TestLoadParsesPreludeBindings(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".hmtype.yaml")
	contents := []byte(`
verbose: true
prelude:
  - name: "+"
    params: ["Number", "Number"]
    result: "Number"
  - name: toString
    params: ["Number"]
    result: "String"
`)
	assert.NoError(t, os.WriteFile(path, contents, 0o644))

	cfg, err := hmconfig.Load(path)
	assert.NoError(t, err)
	assert.True(t, cfg.Verbose)
	assert.Len(t, cfg.Prelude, 2)

	env, err := cfg.Env()
	assert.NoError(t, err)

	plus, ok := env["+"]
	assert.True(t, ok)
	assert.Equal(t, "Number -> Number -> Number", plus.String())

	toString, ok := env["toString"]
	assert.True(t, ok)
	assert.Equal(t, "Number -> String", toString.String())
}

func TestLoadRejectsUnknownBaseType(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".hmtype.yaml")
	contents := []byte(`
prelude:
  - name: weird
    result: NotAType
`)
	assert.NoError(t, os.WriteFile(path, contents, 0o644))

	_, err := hmconfig.Load(path)
	assert.Error(t, err)
}

func TestColorEnabledPrefersExplicitSetting(t *testing.T) {
	enabled := true
	cfg := &hmconfig.Config{Color: &enabled}
	assert.True(t, cfg.ColorEnabled(false))

	disabled := false
	cfg = &hmconfig.Config{Color: &disabled}
	assert.False(t, cfg.ColorEnabled(true))

	cfg = hmconfig.Default()
	assert.True(t, cfg.ColorEnabled(true))
	assert.False(t, cfg.ColorEnabled(false))
}
