package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/genc-murat/routeperf/internal/app"
	"github.com/genc-murat/routeperf/internal/cache"
	"github.com/genc-murat/routeperf/internal/config"
	"github.com/genc-murat/routeperf/internal/core/ports"
	"github.com/genc-murat/routeperf/internal/storage"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type globalOptions struct {
	env        string
	configFile string
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:          "routeperf",
		Short:        "Route performance metrics and analysis",
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&opts.env, "env", "e", "dev", "environment to work on")
	rootCmd.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "", "config file (default: config/<env>.yaml)")

	rootCmd.AddCommand(
		newAnalyzeCommand(opts),
		newRecordCommand(opts),
		newPurgeCommand(opts),
		newRollupCommand(opts),
	)

	return rootCmd
}

type session struct {
	cfg     *config.Config
	logger  *logrus.Logger
	service *app.Service
	close   func()
}

func loadConfig(opts *globalOptions) (*config.Config, error) {
	if opts.configFile != "" {
		cfg, err := config.LoadFile(opts.configFile)
		if err != nil {
			return nil, err
		}
		cfg.Environment = opts.env
		return cfg, nil
	}
	return config.LoadConfig(opts.env)
}

func newLogger(cfg config.LoggingConfig, out io.Writer) (*logrus.Logger, error) {
	logger := logrus.New()
	logger.SetOutput(out)

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}
	logger.SetLevel(level)

	switch cfg.Format {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	case "", "text":
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return nil, fmt.Errorf("logging: unknown format %q", cfg.Format)
	}
	return logger, nil
}

func setup(cmd *cobra.Command, opts *globalOptions) (*session, error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, err
	}
	logger, err := newLogger(cfg.Logging, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Storage.Path), 0755); err != nil {
		return nil, fmt.Errorf("create storage directory: %w", err)
	}
	store, err := storage.NewRecordFile(cfg.Storage.Path, cfg.Storage.LockTimeout, logger)
	if err != nil {
		return nil, err
	}

	// The cache lives as long as this process, so a single CLI invocation
	// never hits it; hosts embedding app.Service keep it across calls.
	var reportCache ports.ReportCache
	var memCache *cache.ReportCache
	if cfg.Cache.Enabled {
		memCache = cache.NewReportCache()
		reportCache = memCache
	}

	logger.WithFields(logrus.Fields{
		"env":     opts.env,
		"storage": cfg.Storage.Path,
	}).Debug("Configuration loaded")

	return &session{
		cfg:     cfg,
		logger:  logger,
		service: app.NewService(cfg, store, reportCache, logger),
		close: func() {
			if memCache != nil {
				memCache.Close()
			}
			if err := store.Close(); err != nil {
				logger.WithError(err).Warn("Failed to close record store")
			}
		},
	}, nil
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
