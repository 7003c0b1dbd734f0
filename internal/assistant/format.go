package assistant

import (
	"fmt"
	"strings"
)

const (
	notFoundMessage = "Title not found."
	rentBuyFallback = "Rent/buy only (check paid options)"
)

// FormatTitleAnswer renders the availability answer for a resolved title.
// Services the user has enabled are bolded; a title with no subscription
// offerings gets the rent/buy fallback line instead of an empty list.
func FormatTitleAnswer(match TitleMatch, offerings []ServiceOffering) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Found: %s\n\n", match.Title)

	if len(offerings) == 0 {
		b.WriteString(rentBuyFallback)
	} else {
		names := make([]string, 0, len(offerings))
		for _, offering := range offerings {
			if offering.Owned {
				names = append(names, "**"+offering.Name+"**")
			} else {
				names = append(names, offering.Name)
			}
		}
		b.WriteString("Available on: " + strings.Join(names, ", "))
	}

	if match.PosterURL != "" {
		b.WriteString("\nPoster: " + match.PosterURL)
	}
	return b.String()
}

// FormatRecommendation prefixes the model's bullet list with a header naming
// the original request.
func FormatRecommendation(query, picks string) string {
	return fmt.Sprintf("Recommendations for %q:\n\n%s", strings.TrimSpace(query), strings.TrimSpace(picks))
}
