package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datawire/depoch/dformat"
	"github.com/datawire/depoch/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	v := viper.New()
	cfg, err := config.Load(v)
	require.NoError(t, err)

	assert.Equal(t, config.Config{
		Lang:   "en",
		Layout: "YYYY-MM-DD[T]hh:mm:ss[+0000]",
		Zone:   config.ZoneConfig{Name: "UTC", Offset: 0},
		Addr:   "127.0.0.1:8639",
	}, cfg)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("DEPOCH_LANG", "nl")
	t.Setenv("DEPOCH_ZONE_NAME", "CET")
	t.Setenv("DEPOCH_ZONE_OFFSET", "3600")
	t.Setenv("DEPOCH_VERBOSE", "true")

	// No .depoch.yaml in the package directory or in this home.
	t.Setenv("HOME", t.TempDir())

	v := viper.New()
	require.NoError(t, config.Setup(v, ""))
	cfg, err := config.Load(v)
	require.NoError(t, err)

	assert.Equal(t, "nl", cfg.Lang)
	assert.Equal(t, config.ZoneConfig{Name: "CET", Offset: 3600}, cfg.Zone)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, dformat.RFC8601Layout, cfg.Layout)
}

func TestLoadFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "depoch.yaml")
	require.NoError(t, os.WriteFile(file, []byte(`
lang: en-GB
layout: "dddd D MMMM"
zone:
  name: IST
  offset: 19800
lang_dir: /etc/depoch/langs
`), 0o644))

	v := viper.New()
	require.NoError(t, config.Setup(v, file))
	cfg, err := config.Load(v)
	require.NoError(t, err)

	assert.Equal(t, "en-GB", cfg.Lang)
	assert.Equal(t, "dddd D MMMM", cfg.Layout)
	assert.Equal(t, config.ZoneConfig{Name: "IST", Offset: 19800}, cfg.Zone)
	assert.Equal(t, "/etc/depoch/langs", cfg.LangDir)
}

func TestLoadErrors(t *testing.T) {
	v := viper.New()
	err := config.Setup(v, filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err, "an explicit config file must exist")

	v = viper.New()
	v.Set("zone.offset", 90000)
	_, err = config.Load(v)
	assert.ErrorContains(t, err, "zone.offset")

	v = viper.New()
	v.Set("layout", "")
	_, err = config.Load(v)
	assert.ErrorIs(t, err, dformat.ErrEmptyTemplate)
}
