package assistant

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"reelscout/internal/services"
	"reelscout/internal/services/llm"
	"reelscout/internal/services/streaming"
	"reelscout/internal/services/tmdb"
)

// Options collects the dependencies an Assistant needs. All three clients are
// required; the logger defaults to a discard logger.
type Options struct {
	LLM          llm.Completer
	Metadata     tmdb.Searcher
	Availability streaming.Searcher
	Country      string
	Logger       *slog.Logger
}

// Assistant runs the query pipeline: classify, then either resolve streaming
// availability for a title or generate recommendations.
type Assistant struct {
	llm     llm.Completer
	tmdb    tmdb.Searcher
	avail   streaming.Searcher
	country string
	logger  *slog.Logger
}

// New validates the dependency set and builds an Assistant.
func New(opts Options) (*Assistant, error) {
	if opts.LLM == nil {
		return nil, errors.New("assistant: llm completer required")
	}
	if opts.Metadata == nil {
		return nil, errors.New("assistant: tmdb searcher required")
	}
	if opts.Availability == nil {
		return nil, errors.New("assistant: availability searcher required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	country := opts.Country
	if country == "" {
		country = "us"
	}
	return &Assistant{
		llm:     opts.LLM,
		tmdb:    opts.Metadata,
		avail:   opts.Availability,
		country: country,
		logger:  logger,
	}, nil
}

// Answer runs one query through the pipeline and returns the assistant's
// reply. Upstream and parse failures come back as errors; a title that simply
// does not exist is an ordinary answer, not an error.
func (a *Assistant) Answer(ctx context.Context, query string, enabled []string) (string, error) {
	start := time.Now()
	intent, err := a.Classify(ctx, query)
	if err != nil {
		return "", err
	}
	a.logger.Info("classified query",
		"intent", string(intent.Kind),
		"title", intent.Title,
		"theme", intent.Theme,
		"latency", time.Since(start).Round(time.Millisecond))

	switch intent.Kind {
	case KindSearchTitle:
		return a.answerTitle(ctx, intent.Title, enabled)
	default:
		return a.answerRecommend(ctx, query, intent, enabled)
	}
}

func (a *Assistant) answerTitle(ctx context.Context, title string, enabled []string) (string, error) {
	match, err := a.ResolveTitle(ctx, title)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return notFoundMessage, nil
		}
		return "", err
	}
	offerings, err := a.ResolveAvailability(ctx, title, match, enabled)
	if err != nil {
		return "", err
	}
	return FormatTitleAnswer(match, offerings), nil
}

func (a *Assistant) answerRecommend(ctx context.Context, query string, intent Intent, enabled []string) (string, error) {
	topic := intent.Theme
	if topic == "" {
		topic = query
	}
	raw, err := a.llm.Complete(ctx, recommendationPrompt(topic, enabled))
	if err != nil {
		return "", services.Wrap(services.ErrUpstream, "llm", "recommend", "", err)
	}
	return FormatRecommendation(query, raw), nil
}
