package assistant

import (
	"context"
	"strconv"
	"strings"

	"reelscout/internal/apps"
	"reelscout/internal/providers"
	"reelscout/internal/services"
	"reelscout/internal/services/streaming"
)

// TitleMatch is the canonical identity of a resolved title. The ID is kept as
// text because the availability API reports TMDB identifiers in both string
// and numeric encodings.
type TitleMatch struct {
	ID        string
	Title     string
	PosterURL string
}

// ServiceOffering is one streaming service carrying the resolved title,
// flagged with whether the user has that app enabled.
type ServiceOffering struct {
	Name  string
	Owned bool
}

// ResolveTitle looks the title up in TMDB and adopts the first search result
// as the canonical match. An empty result list maps to ErrNotFound so callers
// can treat it as an ordinary "no such title" answer.
func (a *Assistant) ResolveTitle(ctx context.Context, title string) (TitleMatch, error) {
	resp, err := a.tmdb.SearchMulti(ctx, title)
	if err != nil {
		return TitleMatch{}, services.Wrap(services.ErrUpstream, "tmdb", "search", "", err)
	}
	if resp == nil || len(resp.Results) == 0 {
		return TitleMatch{}, services.Wrap(services.ErrNotFound, "tmdb", "search", "no results for "+strconv.Quote(title), nil)
	}

	first := resp.Results[0]
	match := TitleMatch{
		Title:     first.DisplayTitle(),
		PosterURL: first.PosterURL(),
	}
	if first.ID != 0 {
		match.ID = strconv.FormatInt(first.ID, 10)
	}
	if match.Title == "" {
		match.Title = strings.TrimSpace(title)
	}
	return match, nil
}

// ResolveAvailability queries the availability API for the title and
// reconciles the candidates against the canonical TMDB identity. The selected
// show's offerings for the configured country are mapped to display names and
// flagged against the enabled-apps set. No candidate at all yields zero
// offerings, not an error.
func (a *Assistant) ResolveAvailability(ctx context.Context, title string, match TitleMatch, enabled []string) ([]ServiceOffering, error) {
	shows, err := a.avail.SearchByTitle(ctx, title)
	if err != nil {
		return nil, services.Wrap(services.ErrUpstream, "streaming", "search", "", err)
	}

	selected := selectShow(shows, match.ID)
	if selected == nil {
		a.logger.Info("no availability candidates", "title", match.Title)
		return nil, nil
	}

	offers := selected.Offers(a.country)
	offerings := make([]ServiceOffering, 0, len(offers))
	seen := make(map[string]struct{}, len(offers))
	for _, offer := range offers {
		name := providers.DisplayName(offer.Service.ID, offer.Service.Name)
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		offerings = append(offerings, ServiceOffering{
			Name:  name,
			Owned: apps.Contains(enabled, name),
		})
	}
	return offerings, nil
}

// selectShow picks the candidate whose tmdbId matches the canonical identity.
// When nothing matches (or there is no canonical ID to match against), the
// first unfiltered record wins: the title search is already ranked by
// relevance, and an identifier-encoding mismatch should degrade to the top
// hit rather than to an empty answer.
func selectShow(shows []streaming.Show, canonicalID string) *streaming.Show {
	if len(shows) == 0 {
		return nil
	}
	if canonicalID != "" {
		for i := range shows {
			if shows[i].TMDBID.String() == canonicalID {
				return &shows[i]
			}
		}
	}
	return &shows[0]
}
