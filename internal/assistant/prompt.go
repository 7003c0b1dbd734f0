package assistant

import (
	"fmt"
	"strings"
)

// intentPrompt instructs the model to classify a query into exactly the three
// fields the pipeline understands. Keep the wording centralized here so it is
// easy to tweak without hunting through call sites.
func intentPrompt(query string) string {
	return fmt.Sprintf(`User query: %q.
Respond ONLY in JSON with exactly these three fields:
{"intent": "search_title" or "recommend", "title": "exact title if search, else null", "theme": "if recommend, e.g. holiday, else null"}`, query)
}

// recommendationPrompt asks for exactly five picks restricted to the user's
// enabled apps. The response is used verbatim, so the format request doubles
// as the display format.
func recommendationPrompt(topic string, enabled []string) string {
	return fmt.Sprintf(
		"Recommend 5 media items for '%s' from %s. Format as bullet list: * Title (App) - short description.",
		topic,
		strings.Join(enabled, ", "),
	)
}
