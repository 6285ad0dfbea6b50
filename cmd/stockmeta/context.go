package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"stockmeta/internal/config"
	"stockmeta/internal/logging"
	"stockmeta/internal/secrets"
	"stockmeta/internal/services/vision"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) openSecrets() (*secrets.Store, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	store, err := secrets.Open(cfg.Paths.DataDir)
	if err != nil {
		return nil, fmt.Errorf("open keystore: %w", err)
	}
	return store, nil
}

// resolveAPIKey prefers the config/environment key and falls back to the
// keystore so `stockmeta key set` works without touching the config file.
func (c *commandContext) resolveAPIKey(ctx context.Context) (string, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return "", err
	}
	if cfg.Service.APIKey != "" {
		return cfg.Service.APIKey, nil
	}

	store, err := c.openSecrets()
	if err != nil {
		return "", err
	}
	defer store.Close()

	key, err := store.Get(ctx, secrets.APIKeyName)
	if errors.Is(err, secrets.ErrNotFound) {
		return "", errors.New("no API key configured; run `stockmeta key set <key>` or set STOCKMETA_API_KEY")
	}
	if err != nil {
		return "", fmt.Errorf("read keystore: %w", err)
	}
	return key, nil
}

func (c *commandContext) newLogger() (*slog.Logger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return logging.NewFromConfig(cfg)
}

func (c *commandContext) newVisionClient(ctx context.Context) (*vision.Client, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	apiKey, err := c.resolveAPIKey(ctx)
	if err != nil {
		return nil, err
	}
	return vision.NewClient(apiKey,
		vision.WithBaseURL(cfg.Service.BaseURL),
		vision.WithModel(cfg.Service.Model),
		vision.WithTimeout(time.Duration(cfg.Service.TimeoutSeconds)*time.Second),
	), nil
}
