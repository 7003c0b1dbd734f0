package assistant_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"reelscout/internal/assistant"
	"reelscout/internal/services"
	"reelscout/internal/services/streaming"
	"reelscout/internal/services/tmdb"
)

type fakeCompleter struct {
	completePrompts []string
	jsonPrompts     []string
	completeReply   string
	completeErr     error
	jsonReply       string
	jsonErr         error
}

func (f *fakeCompleter) Complete(_ context.Context, prompt string) (string, error) {
	f.completePrompts = append(f.completePrompts, prompt)
	return f.completeReply, f.completeErr
}

func (f *fakeCompleter) CompleteJSON(_ context.Context, prompt string) (string, error) {
	f.jsonPrompts = append(f.jsonPrompts, prompt)
	return f.jsonReply, f.jsonErr
}

type fakeMetadata struct {
	resp *tmdb.Response
	err  error
}

func (f *fakeMetadata) SearchMulti(context.Context, string) (*tmdb.Response, error) {
	return f.resp, f.err
}

type fakeAvailability struct {
	shows []streaming.Show
	err   error
}

func (f *fakeAvailability) SearchByTitle(context.Context, string) ([]streaming.Show, error) {
	return f.shows, f.err
}

func newAssistant(t *testing.T, completer *fakeCompleter, metadata *fakeMetadata, availability *fakeAvailability) *assistant.Assistant {
	t.Helper()
	a, err := assistant.New(assistant.Options{
		LLM:          completer,
		Metadata:     metadata,
		Availability: availability,
		Country:      "us",
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	return a
}

func searchIntent(title string) string {
	return `{"intent": "search_title", "title": "` + title + `", "theme": null}`
}

func usOffers(offers ...streaming.Offer) map[string][]streaming.Offer {
	return map[string][]streaming.Offer{"us": offers}
}

func TestClassifyDefaultsToRecommendOnUncleanPayload(t *testing.T) {
	cases := map[string]string{
		"unknown intent": `{"intent": "chitchat", "title": null, "theme": null}`,
		"missing title":  `{"intent": "search_title", "title": null, "theme": "space"}`,
		"empty title":    `{"intent": "search_title", "title": "  ", "theme": ""}`,
	}
	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			completer := &fakeCompleter{jsonReply: payload}
			a := newAssistant(t, completer, &fakeMetadata{}, &fakeAvailability{})
			intent, err := a.Classify(context.Background(), "anything")
			if err != nil {
				t.Fatalf("Classify returned error: %v", err)
			}
			if intent.Kind != assistant.KindRecommend {
				t.Fatalf("expected recommend fallback, got %q", intent.Kind)
			}
		})
	}
}

func TestClassifyUnparseablePayloadFails(t *testing.T) {
	completer := &fakeCompleter{jsonReply: "sure, here you go!"}
	a := newAssistant(t, completer, &fakeMetadata{}, &fakeAvailability{})
	if _, err := a.Classify(context.Background(), "anything"); !errors.Is(err, services.ErrMalformed) {
		t.Fatalf("expected malformed-response error, got %v", err)
	}
}

func TestClassifyHandlesCodeFencedPayload(t *testing.T) {
	completer := &fakeCompleter{jsonReply: "```json\n" + searchIntent("Cool Runnings") + "\n```"}
	a := newAssistant(t, completer, &fakeMetadata{}, &fakeAvailability{})
	intent, err := a.Classify(context.Background(), "Where to watch Cool Runnings?")
	if err != nil {
		t.Fatalf("Classify returned error: %v", err)
	}
	if intent.Kind != assistant.KindSearchTitle || intent.Title != "Cool Runnings" {
		t.Fatalf("unexpected intent: %+v", intent)
	}
}

func TestResolveTitleUsesFirstResult(t *testing.T) {
	metadata := &fakeMetadata{resp: &tmdb.Response{Results: []tmdb.Result{
		{ID: 11528, Title: "Cool Runnings", PosterPath: "/poster.jpg"},
		{ID: 999, Title: "Cool Runnings: The Sequel Nobody Asked For"},
	}}}
	a := newAssistant(t, &fakeCompleter{}, metadata, &fakeAvailability{})
	match, err := a.ResolveTitle(context.Background(), "Cool Runnings")
	if err != nil {
		t.Fatalf("ResolveTitle returned error: %v", err)
	}
	if match.ID != "11528" || match.Title != "Cool Runnings" {
		t.Fatalf("unexpected match: %+v", match)
	}
	if match.PosterURL != "https://image.tmdb.org/t/p/w200/poster.jpg" {
		t.Fatalf("unexpected poster url: %q", match.PosterURL)
	}
}

func TestResolveTitleEmptyResultsIsNotFound(t *testing.T) {
	a := newAssistant(t, &fakeCompleter{}, &fakeMetadata{resp: &tmdb.Response{}}, &fakeAvailability{})
	if _, err := a.ResolveTitle(context.Background(), "ghost title"); !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestResolveAvailabilityMatchesNumericAndStringIDs(t *testing.T) {
	for name, encoded := range map[string]string{"number": "11528", "string": "11528"} {
		t.Run(name, func(t *testing.T) {
			availability := &fakeAvailability{shows: []streaming.Show{
				{TMDBID: streaming.ID("42"), Title: "Decoy", StreamingOptions: usOffers(
					streaming.Offer{Service: streaming.Service{ID: "max"}},
				)},
				{TMDBID: streaming.ID(encoded), Title: "Cool Runnings", StreamingOptions: usOffers(
					streaming.Offer{Service: streaming.Service{ID: "netflix"}},
					streaming.Offer{Service: streaming.Service{ID: "hulu"}},
				)},
			}}
			a := newAssistant(t, &fakeCompleter{}, &fakeMetadata{}, availability)
			offerings, err := a.ResolveAvailability(context.Background(), "Cool Runnings",
				assistant.TitleMatch{ID: "11528", Title: "Cool Runnings"}, []string{"Netflix"})
			if err != nil {
				t.Fatalf("ResolveAvailability returned error: %v", err)
			}
			if len(offerings) != 2 {
				t.Fatalf("expected matched show's offerings, got %+v", offerings)
			}
			if offerings[0].Name != "Netflix" || !offerings[0].Owned {
				t.Fatalf("expected owned Netflix first, got %+v", offerings[0])
			}
			if offerings[1].Name != "Hulu" || offerings[1].Owned {
				t.Fatalf("expected unowned Hulu second, got %+v", offerings[1])
			}
		})
	}
}

func TestResolveAvailabilityFallsBackToFirstRecord(t *testing.T) {
	availability := &fakeAvailability{shows: []streaming.Show{
		{TMDBID: streaming.ID("7"), Title: "Closest Hit", StreamingOptions: usOffers(
			streaming.Offer{Service: streaming.Service{ID: "disney"}},
		)},
		{TMDBID: streaming.ID("8"), Title: "Second Hit"},
	}}
	a := newAssistant(t, &fakeCompleter{}, &fakeMetadata{}, availability)
	offerings, err := a.ResolveAvailability(context.Background(), "Cool Runnings",
		assistant.TitleMatch{ID: "11528"}, nil)
	if err != nil {
		t.Fatalf("ResolveAvailability returned error: %v", err)
	}
	if len(offerings) != 1 || offerings[0].Name != "Disney+" {
		t.Fatalf("expected first record's offerings, got %+v", offerings)
	}
}

func TestResolveAvailabilityEmptyListYieldsNoOfferings(t *testing.T) {
	a := newAssistant(t, &fakeCompleter{}, &fakeMetadata{}, &fakeAvailability{})
	offerings, err := a.ResolveAvailability(context.Background(), "Cool Runnings",
		assistant.TitleMatch{ID: "11528"}, nil)
	if err != nil {
		t.Fatalf("ResolveAvailability returned error: %v", err)
	}
	if len(offerings) != 0 {
		t.Fatalf("expected zero offerings, got %+v", offerings)
	}
}

func TestResolveAvailabilityDeduplicatesServices(t *testing.T) {
	availability := &fakeAvailability{shows: []streaming.Show{
		{TMDBID: streaming.ID("11528"), StreamingOptions: usOffers(
			streaming.Offer{Service: streaming.Service{ID: "netflix"}, Type: "subscription"},
			streaming.Offer{Service: streaming.Service{ID: "netflix"}, Type: "rent"},
		)},
	}}
	a := newAssistant(t, &fakeCompleter{}, &fakeMetadata{}, availability)
	offerings, err := a.ResolveAvailability(context.Background(), "Cool Runnings",
		assistant.TitleMatch{ID: "11528"}, nil)
	if err != nil {
		t.Fatalf("ResolveAvailability returned error: %v", err)
	}
	if len(offerings) != 1 {
		t.Fatalf("expected one deduplicated offering, got %+v", offerings)
	}
}

func TestAnswerRecommendPromptNamesOnlyEnabledApps(t *testing.T) {
	completer := &fakeCompleter{
		jsonReply:     `{"intent": "recommend", "title": null, "theme": "board game night"}`,
		completeReply: "* Gloomhaven (Netflix) - tactics\n* Catan (Hulu) - trading\n* Wingspan (Netflix) - birds\n* Azul (Hulu) - tiles\n* Root (Netflix) - woodland war",
	}
	a := newAssistant(t, completer, &fakeMetadata{}, &fakeAvailability{})
	answer, err := a.Answer(context.Background(), "Board game night playlist", []string{"Netflix", "Hulu"})
	if err != nil {
		t.Fatalf("Answer returned error: %v", err)
	}

	if len(completer.completePrompts) != 1 {
		t.Fatalf("expected one recommendation prompt, got %d", len(completer.completePrompts))
	}
	prompt := completer.completePrompts[0]
	if !strings.Contains(prompt, "Netflix, Hulu") {
		t.Fatalf("prompt missing enabled apps: %q", prompt)
	}
	for _, excluded := range []string{"Disney+", "Max", "Paramount+", "ESPN+", "Amazon Prime Video", "YouTube Premium"} {
		if strings.Contains(prompt, excluded) {
			t.Fatalf("prompt mentions disabled app %s: %q", excluded, prompt)
		}
	}
	if !strings.Contains(answer, "Board game night playlist") {
		t.Fatalf("answer header missing original query: %q", answer)
	}
	if !strings.Contains(answer, "* Gloomhaven (Netflix)") {
		t.Fatalf("answer missing model picks: %q", answer)
	}
}

func TestAnswerTitleNotFoundIsInformational(t *testing.T) {
	completer := &fakeCompleter{jsonReply: searchIntent("Ghost Title")}
	a := newAssistant(t, completer, &fakeMetadata{resp: &tmdb.Response{}}, &fakeAvailability{})
	answer, err := a.Answer(context.Background(), "Where to watch Ghost Title?", nil)
	if err != nil {
		t.Fatalf("Answer returned error: %v", err)
	}
	if answer != "Title not found." {
		t.Fatalf("unexpected answer: %q", answer)
	}
}

func TestAnswerTitleUpstreamFailurePropagates(t *testing.T) {
	completer := &fakeCompleter{jsonReply: searchIntent("Cool Runnings")}
	metadata := &fakeMetadata{err: errors.New("tmdb multi search returned 503")}
	a := newAssistant(t, completer, metadata, &fakeAvailability{})
	if _, err := a.Answer(context.Background(), "Where to watch Cool Runnings?", nil); !errors.Is(err, services.ErrUpstream) {
		t.Fatalf("expected upstream error, got %v", err)
	}
}
