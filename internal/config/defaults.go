package config

const (
	defaultLogDir            = "~/.local/share/reelscout/logs"
	defaultAppsStatePath     = "~/.local/share/reelscout/apps.toml"
	defaultLogFormat         = "console"
	defaultLogLevel          = "info"
	defaultLLMBaseURL        = "https://api.groq.com/openai/v1/chat/completions"
	defaultLLMModel          = "llama-3.3-70b-versatile"
	defaultLLMTimeoutSeconds = 30
	defaultTMDBBaseURL       = "https://api.themoviedb.org/3"
	defaultTMDBLanguage      = "en-US"
	defaultStreamingBaseURL  = "https://streaming-availability.p.rapidapi.com"
	defaultStreamingHost     = "streaming-availability.p.rapidapi.com"
	defaultStreamingCountry  = "us"
	defaultStreamingLanguage = "en"
	defaultHTTPTimeout       = 15
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir:        defaultLogDir,
			AppsStatePath: defaultAppsStatePath,
		},
		LLM: LLM{
			BaseURL:        defaultLLMBaseURL,
			Model:          defaultLLMModel,
			TimeoutSeconds: defaultLLMTimeoutSeconds,
		},
		TMDB: TMDB{
			BaseURL:        defaultTMDBBaseURL,
			Language:       defaultTMDBLanguage,
			TimeoutSeconds: defaultHTTPTimeout,
		},
		Streaming: Streaming{
			BaseURL:        defaultStreamingBaseURL,
			Host:           defaultStreamingHost,
			Country:        defaultStreamingCountry,
			OutputLanguage: defaultStreamingLanguage,
			TimeoutSeconds: defaultHTTPTimeout,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
