package config

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/datawire/depoch/dformat"
	"github.com/datawire/depoch/dlang"
)

// EnvPrefix is the prefix of the environment variables that override the config file, such as
// DEPOCH_LANG or DEPOCH_ZONE_OFFSET.
const EnvPrefix = "DEPOCH"

// ZoneConfig is the fixed zone that dates are read in.
type ZoneConfig struct {
	Name   string `mapstructure:"name"`
	Offset int    `mapstructure:"offset"`
}

// Config holds the runtime configuration of the depoch command.
// Values are populated from .depoch.yaml, DEPOCH_* env vars, and CLI flags.
type Config struct {
	Lang    string     `mapstructure:"lang"`
	Layout  string     `mapstructure:"layout"`
	Zone    ZoneConfig `mapstructure:"zone"`
	LangDir string     `mapstructure:"lang_dir"`
	Addr    string     `mapstructure:"addr"`
	Verbose bool       `mapstructure:"verbose"`
}

// Setup points v at its sources: cfgFile if it is non-empty, otherwise .depoch.yaml in the
// working directory or the home directory; then DEPOCH_* environment variables.  A missing
// default config file is not an error; an unreadable or malformed one is.
func Setup(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(".depoch")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return errors.Wrap(err, "reading config")
	}
	return nil
}

// Load reads configuration from v, applying built-in defaults for any values not set by config
// file, environment, or flags.
func Load(v *viper.Viper) (Config, error) {
	v.SetDefault("lang", dlang.DefaultKey)
	v.SetDefault("layout", dformat.RFC8601Layout)
	v.SetDefault("zone.name", "UTC")
	v.SetDefault("zone.offset", 0)
	v.SetDefault("lang_dir", "")
	v.SetDefault("addr", "127.0.0.1:8639")
	v.SetDefault("verbose", false)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "decoding config")
	}
	if cfg.Zone.Offset <= -86400 || cfg.Zone.Offset >= 86400 {
		return Config{}, errors.Errorf("zone.offset: %d seconds is not within a day of UTC", cfg.Zone.Offset)
	}
	if cfg.Layout == "" {
		return Config{}, errors.Wrap(dformat.ErrEmptyTemplate, "layout")
	}
	return cfg, nil
}
