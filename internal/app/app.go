package app

import (
	"context"
	"fmt"

	"github.com/zoobzio/capitan"
	"go.uber.org/zap"

	"github.com/five82/armview/internal/arm"
	"github.com/five82/armview/internal/config"
	"github.com/five82/armview/internal/logging"
	"github.com/five82/armview/internal/poll"
	"github.com/five82/armview/internal/prefs"
	"github.com/five82/armview/internal/state"
	"github.com/five82/armview/internal/ui"
)

// Options configure the armview application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/armview/prefs.toml
	PollEvery  int    // seconds; zero uses the configured value
}

// LoadConfig reads the config file and applies command-line overrides.
func LoadConfig(opts Options) (config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	if opts.PollEvery > 0 {
		cfg.PollSeconds = opts.PollEvery
		if err := cfg.Validate(); err != nil {
			return config.Config{}, err
		}
	}
	return cfg, nil
}

// NewClient builds an ARM client from cfg.
func NewClient(cfg config.Config) (*arm.Client, error) {
	client, err := arm.NewClient(cfg.ARMURL, arm.WithTimeout(cfg.RequestTimeout()))
	if err != nil {
		return nil, fmt.Errorf("init arm client: %w", err)
	}
	return client, nil
}

// Run boots the armview TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := LoadConfig(opts)
	if err != nil {
		return err
	}

	logger, err := logging.New(logging.Options{
		Level:  cfg.LogLevel,
		Format: logging.FormatFromEnv(),
		Path:   cfg.LogPath(),
	})
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logging.HookPollEvents(logger)
	defer capitan.Shutdown()

	client, err := NewClient(cfg)
	if err != nil {
		return err
	}

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		logger.Warn("load prefs failed; using defaults", zap.Error(err))
	}

	// Terminals without focus reporting never send a blur, so start active.
	focus := poll.NewToggle(true)
	feeds := state.NewFeeds(client, state.FeedOptions{
		Interval: cfg.PollInterval(),
		Timeout:  cfg.RequestTimeout(),
		Activity: focus,
		Logger:   logger,
		Context:  ctx,
	})

	logger.Info("armview starting",
		zap.String("arm_url", client.BaseURL()),
		zap.Duration("interval", cfg.PollInterval()),
		zap.Duration("request_timeout", cfg.RequestTimeout()),
	)

	runErr := ui.Run(ui.Options{
		Context:   ctx,
		Feeds:     feeds,
		Focus:     focus,
		Prefs:     userPrefs,
		PrefsPath: opts.PrefsPath,
		ARMURL:    client.BaseURL(),
		LogPath:   cfg.LogPath(),
		Logger:    logger,
	})

	feeds.StopAll()
	feeds.Wait()
	if runErr != nil {
		logger.Error("armview exited with error", zap.Error(runErr))
		return runErr
	}
	logger.Info("armview stopped")
	return nil
}
