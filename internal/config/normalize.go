package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeLLM()
	c.normalizeTMDB()
	c.normalizeStreaming()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.AppsStatePath) == "" {
		c.Paths.AppsStatePath = defaultAppsStatePath
	}
	if c.Paths.AppsStatePath, err = expandPath(c.Paths.AppsStatePath); err != nil {
		return fmt.Errorf("paths.apps_state_path: %w", err)
	}
	return nil
}

func (c *Config) normalizeLLM() {
	c.LLM.APIKey = strings.TrimSpace(c.LLM.APIKey)
	if c.LLM.APIKey == "" {
		if value, ok := os.LookupEnv("GROQ_API_KEY"); ok {
			c.LLM.APIKey = strings.TrimSpace(value)
		}
	}
	c.LLM.BaseURL = strings.TrimSpace(c.LLM.BaseURL)
	if c.LLM.BaseURL == "" {
		c.LLM.BaseURL = defaultLLMBaseURL
	}
	c.LLM.Model = strings.TrimSpace(c.LLM.Model)
	if c.LLM.Model == "" {
		c.LLM.Model = defaultLLMModel
	}
	if c.LLM.TimeoutSeconds <= 0 {
		c.LLM.TimeoutSeconds = defaultLLMTimeoutSeconds
	}
}

func (c *Config) normalizeTMDB() {
	c.TMDB.APIKey = strings.TrimSpace(c.TMDB.APIKey)
	if c.TMDB.APIKey == "" {
		if value, ok := os.LookupEnv("TMDB_API_KEY"); ok {
			c.TMDB.APIKey = strings.TrimSpace(value)
		}
	}
	c.TMDB.BaseURL = strings.TrimSpace(c.TMDB.BaseURL)
	if c.TMDB.BaseURL == "" {
		c.TMDB.BaseURL = defaultTMDBBaseURL
	}
	c.TMDB.Language = strings.TrimSpace(c.TMDB.Language)
	if c.TMDB.Language == "" {
		c.TMDB.Language = defaultTMDBLanguage
	}
	if c.TMDB.TimeoutSeconds <= 0 {
		c.TMDB.TimeoutSeconds = defaultHTTPTimeout
	}
}

func (c *Config) normalizeStreaming() {
	c.Streaming.APIKey = strings.TrimSpace(c.Streaming.APIKey)
	if c.Streaming.APIKey == "" {
		if value, ok := os.LookupEnv("STREAM_API_KEY"); ok {
			c.Streaming.APIKey = strings.TrimSpace(value)
		} else if value, ok := os.LookupEnv("RAPIDAPI_KEY"); ok {
			c.Streaming.APIKey = strings.TrimSpace(value)
		}
	}
	c.Streaming.BaseURL = strings.TrimSpace(c.Streaming.BaseURL)
	if c.Streaming.BaseURL == "" {
		c.Streaming.BaseURL = defaultStreamingBaseURL
	}
	c.Streaming.Host = strings.TrimSpace(c.Streaming.Host)
	if c.Streaming.Host == "" {
		c.Streaming.Host = defaultStreamingHost
	}
	c.Streaming.Country = strings.ToLower(strings.TrimSpace(c.Streaming.Country))
	if c.Streaming.Country == "" {
		c.Streaming.Country = defaultStreamingCountry
	}
	c.Streaming.OutputLanguage = strings.ToLower(strings.TrimSpace(c.Streaming.OutputLanguage))
	if c.Streaming.OutputLanguage == "" {
		c.Streaming.OutputLanguage = defaultStreamingLanguage
	}
	if c.Streaming.TimeoutSeconds <= 0 {
		c.Streaming.TimeoutSeconds = defaultHTTPTimeout
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
