package cmd

import (
	"context"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/malusev998/lari"
	"github.com/malusev998/lari/fetchers"
	"github.com/malusev998/lari/logger"
	"github.com/malusev998/lari/services"
	"github.com/malusev998/lari/storage"
)

const skipSetup = "skip-setup"

type (
	Config struct {
		Rates    lari.RateService
		Earnings lari.EarningsService
		In       io.Reader

		storage    lari.Storage
		debug      bool
		configFile string
	}
)

func Execute(ctx context.Context) error {
	config := &Config{In: os.Stdin}
	defer config.close()

	// replaced by the configured logger once settings are loaded
	_ = logger.Init(logger.EnvProd)

	err := newRootCommand(config).ExecuteContext(ctx)
	if err != nil {
		logger.Error("command failed", zap.Error(err))
	}

	return err
}

func newRootCommand(config *Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "lari",
		Short:         "Daily earnings tracker with NBG rate conversion",
		Version:       "v1.0.0",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Annotations[skipSetup] != "" {
				return nil
			}

			return config.setup(cmd.Context())
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return config.close()
		},
	}

	rootCmd.PersistentFlags().BoolVar(&config.debug, "debug", false, "Debug flag")
	rootCmd.PersistentFlags().StringVar(&config.configFile, "config", "./config.yml", "Path to config file")

	rootCmd.AddCommand(
		rates(config),
		date(config),
		currency(config),
		convert(config),
		apply(config),
		total(config),
		history(config),
		clearState(config),
		initConfig(),
	)

	return rootCmd
}

// setup wires storage, fetcher and services from the settings. Services
// already set, as in tests, are kept.
func (c *Config) setup(ctx context.Context) error {
	if c.Rates != nil && c.Earnings != nil {
		return nil
	}

	settings, err := LoadSettings(c.configFile)
	if err != nil {
		return err
	}

	env := settings.Log.Env
	if c.debug {
		env = logger.EnvDev
	}

	if err := logger.Init(env); err != nil {
		return err
	}

	timeout, err := settings.Fetcher.timeout()
	if err != nil {
		return err
	}

	storageConfig, err := settings.storageConfig(ctx)
	if err != nil {
		return err
	}

	st, err := storage.NewStorage(settings.Storage, storageConfig)
	if err != nil {
		logger.Error("cannot open storage", zap.Error(err), zap.String("storage", string(settings.Storage)))
		return errors.Wrapf(err, "open %s storage", settings.Storage)
	}

	logger.Debug("storage ready", zap.String("storage", st.GetStorageProviderName()))

	state := services.State{Storage: st}

	c.storage = st
	c.Rates = services.RateService{
		Fetcher: fetchers.NewNBGFetcher(fetchers.BaseConfig{
			URL:     settings.Fetcher.URL,
			Timeout: timeout,
		}),
		State:     state,
		Preferred: settings.Preferred,
	}
	c.Earnings = services.EarningsService{State: state}

	return nil
}

func (c *Config) close() error {
	defer logger.Sync()

	if c.storage == nil {
		return nil
	}

	err := c.storage.Close()
	c.storage = nil

	return err
}
