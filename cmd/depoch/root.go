package main

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/datawire/depoch"
	"github.com/datawire/depoch/dlang"
	"github.com/datawire/depoch/dlog"
	"github.com/datawire/depoch/internal/config"
)

// app is the state shared by every subcommand once the root command's PersistentPreRunE has run.
type app struct {
	v        *viper.Viper
	cfgFile  string
	cfg      config.Config
	registry *dlang.Registry
}

// flagKeys maps command-line flags to the config keys they override.
var flagKeys = map[string]string{
	"lang":    "lang",
	"layout":  "layout",
	"addr":    "addr",
	"verbose": "verbose",
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "depoch",
		Short: "Format dates through token templates and describe them in words",
		Long: "depoch renders dates through token templates such as \"dddd, MMMM Do YYYY\", " +
			"describes them relative to now (\"3 days ago\"), and moves them by phrases such as " +
			"\"next month\".",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default .depoch.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().String("lang", "", "language pack to use (default en)")

	rootCmd.AddCommand(
		newFormatCmd(a),
		newFromCmd(a),
		newModifyCmd(a),
		newLangsCmd(a),
		newServeCmd(a),
	)
	return rootCmd
}

// setup loads the configuration, installs the logger, and loads any extra language packs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := config.Setup(a.v, a.cfgFile); err != nil {
		return err
	}
	for flag, key := range flagKeys {
		if f := cmd.Flags().Lookup(flag); f != nil {
			if err := a.v.BindPFlag(key, f); err != nil {
				return errors.Wrapf(err, "binding --%s", flag)
			}
		}
	}
	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	logger := logrus.New()
	logger.SetOutput(cmd.ErrOrStderr())
	if cfg.Verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	dlog.SetFallbackLogger(dlog.WrapLogrus(logger))
	ctx := dlog.WithLogger(cmd.Context(), dlog.WrapLogrus(logger))
	cmd.SetContext(ctx)

	a.registry, err = dlang.NewRegistry(dlang.English())
	if err != nil {
		return err
	}
	if cfg.LangDir != "" {
		if err := a.registry.LoadFS(os.DirFS(cfg.LangDir)); err != nil {
			return errors.Wrapf(err, "loading language packs from %q", cfg.LangDir)
		}
		dlog.Debugf(ctx, "language packs: %v", a.registry.Keys())
	}
	return nil
}

// options returns the depoch.Options that every subcommand starts from.
func (a *app) options() []depoch.Option {
	return []depoch.Option{
		depoch.UsingRegistry(a.registry),
		depoch.Lang(a.cfg.Lang),
		depoch.Zone(a.cfg.Zone.Name, a.cfg.Zone.Offset),
	}
}

// timeOption reads an RFC 3339 time from the named flag, if it was given.
func timeOption(cmd *cobra.Command, flag string) ([]depoch.Option, error) {
	if !cmd.Flags().Changed(flag) {
		return nil, nil
	}
	s, _ := cmd.Flags().GetString(flag)
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, errors.Wrapf(err, "--%s", flag)
	}
	return []depoch.Option{depoch.At(t)}, nil
}
