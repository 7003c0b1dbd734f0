package providers

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// displayNames maps the lower-cased provider keys of the major US streaming
// services to their canonical display names.
var displayNames = map[string]string{
	"netflix":       "Netflix",
	"prime":         "Amazon Prime Video",
	"disney":        "Disney+",
	"hulu":          "Hulu",
	"espnplus":      "ESPN+",
	"max":           "Max",
	"paramountplus": "Paramount+",
	"youtube":       "YouTube Premium",
	"apple":         "Apple TV+",
}

// DisplayName resolves a provider service key to a human-readable name. For
// keys outside the fixed map it prefers the upstream-supplied name and falls
// back to a title-cased form of the raw key, so an unrecognized provider
// degrades to a best-guess label instead of failing.
func DisplayName(key, upstreamName string) string {
	key = strings.ToLower(strings.TrimSpace(key))
	if name, ok := displayNames[key]; ok {
		return name
	}
	if upstreamName = strings.TrimSpace(upstreamName); upstreamName != "" {
		return upstreamName
	}
	if key == "" {
		return ""
	}
	return cases.Title(language.English).String(key)
}
