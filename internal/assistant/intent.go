package assistant

import (
	"context"
	"strings"

	"reelscout/internal/services"
	"reelscout/internal/services/llm"
)

// IntentKind selects the pipeline branch for a query.
type IntentKind string

const (
	// KindSearchTitle means the user asked where to watch a specific title.
	KindSearchTitle IntentKind = "search_title"
	// KindRecommend means the user asked for suggestions around a theme.
	KindRecommend IntentKind = "recommend"
)

// Intent is the structured classification of a single query.
type Intent struct {
	Kind  IntentKind
	Title string
	Theme string
}

type intentPayload struct {
	Intent string `json:"intent"`
	Title  string `json:"title"`
	Theme  string `json:"theme"`
}

// Classify asks the model to sort a query into search or recommend. A payload
// that parses but does not clearly name a title falls through to the
// recommend branch; only transport failures and unparseable payloads are
// errors.
func (a *Assistant) Classify(ctx context.Context, query string) (Intent, error) {
	content, err := a.llm.CompleteJSON(ctx, intentPrompt(query))
	if err != nil {
		return Intent{}, services.Wrap(services.ErrUpstream, "llm", "classify", "", err)
	}

	var payload intentPayload
	if err := llm.DecodeLLMJSON(content, &payload); err != nil {
		return Intent{}, services.Wrap(services.ErrMalformed, "llm", "classify", "parse intent payload", err)
	}

	kind := strings.ToLower(strings.TrimSpace(payload.Intent))
	title := strings.TrimSpace(payload.Title)
	theme := strings.TrimSpace(payload.Theme)
	if strings.EqualFold(title, "null") {
		title = ""
	}
	if strings.EqualFold(theme, "null") {
		theme = ""
	}

	if kind == string(KindSearchTitle) && title != "" {
		return Intent{Kind: KindSearchTitle, Title: title, Theme: theme}, nil
	}
	return Intent{Kind: KindRecommend, Theme: theme}, nil
}
