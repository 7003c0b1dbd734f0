package config

import (
	"fmt"
)

// Validate ensures the configuration is usable. Missing credentials are fatal
// here so the chat session never starts with a half-working pipeline.
func (c *Config) Validate() error {
	if err := c.validateLLM(); err != nil {
		return err
	}
	if err := c.validateTMDB(); err != nil {
		return err
	}
	if err := c.validateStreaming(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateLLM() error {
	if c.LLM.APIKey == "" {
		return keyError("llm.api_key", "GROQ_API_KEY")
	}
	return nil
}

func (c *Config) validateTMDB() error {
	if c.TMDB.APIKey == "" {
		return keyError("tmdb.api_key", "TMDB_API_KEY")
	}
	return nil
}

func (c *Config) validateStreaming() error {
	if c.Streaming.APIKey == "" {
		return keyError("streaming.api_key", "STREAM_API_KEY")
	}
	return nil
}

func keyError(field, envVar string) error {
	defaultPath, err := DefaultConfigPath()
	if err != nil {
		defaultPath = "~/.config/reelscout/config.toml"
	}
	return fmt.Errorf("%s is required. Set %s env var or edit %s (create with 'reelscout config init')", field, envVar, defaultPath)
}
