package main

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"reelscout/internal/apps"
	"reelscout/internal/assistant"
	"reelscout/internal/config"
	"reelscout/internal/logging"
	"reelscout/internal/services/llm"
	"reelscout/internal/services/streaming"
	"reelscout/internal/services/tmdb"
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

func (c *commandContext) appsStore() (*apps.Store, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return apps.NewStore(cfg.Paths.AppsStatePath)
}

// newSession wires the full pipeline from config: the three API clients, the
// apps store, and a file-backed logger so log lines never interleave with the
// chat transcript.
func (c *commandContext) newSession() (*assistant.Session, *apps.Store, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, nil, err
	}

	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("build logger: %w", err)
	}

	completer := llm.NewClient(llm.Config{
		APIKey:         cfg.LLM.APIKey,
		BaseURL:        cfg.LLM.BaseURL,
		Model:          cfg.LLM.Model,
		TimeoutSeconds: cfg.LLM.TimeoutSeconds,
	})

	metadata, err := tmdb.New(cfg.TMDB.APIKey, cfg.TMDB.BaseURL, cfg.TMDB.Language,
		tmdb.WithTimeout(timeoutDuration(cfg.TMDB.TimeoutSeconds)))
	if err != nil {
		return nil, nil, fmt.Errorf("build tmdb client: %w", err)
	}

	availability, err := streaming.New(
		cfg.Streaming.APIKey,
		cfg.Streaming.BaseURL,
		cfg.Streaming.Host,
		cfg.Streaming.Country,
		cfg.Streaming.OutputLanguage,
		streaming.WithTimeout(timeoutDuration(cfg.Streaming.TimeoutSeconds)))
	if err != nil {
		return nil, nil, fmt.Errorf("build streaming client: %w", err)
	}

	store, err := apps.NewStore(cfg.Paths.AppsStatePath)
	if err != nil {
		return nil, nil, fmt.Errorf("build apps store: %w", err)
	}

	a, err := assistant.New(assistant.Options{
		LLM:          completer,
		Metadata:     metadata,
		Availability: availability,
		Country:      cfg.Streaming.Country,
		Logger:       logging.WithComponent(logger, "assistant"),
	})
	if err != nil {
		return nil, nil, err
	}

	session := assistant.NewSession(a, store, logging.WithComponent(logger, "session"))
	return session, store, nil
}

func timeoutDuration(seconds int) time.Duration {
	if seconds <= 0 {
		return 0
	}
	return time.Duration(seconds) * time.Second
}
