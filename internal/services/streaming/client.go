package streaming

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ID is an upstream identifier that may be encoded as a JSON number or a JSON
// string. It is stored and compared as text; availability records and TMDB
// results disagree on the encoding, so numeric comparison would produce
// silent false negatives.
type ID string

// UnmarshalJSON accepts string, number, and null encodings.
func (id *ID) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		*id = ""
		return nil
	}
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return fmt.Errorf("decode id string: %w", err)
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(trimmed, &n); err != nil {
		return fmt.Errorf("decode id number: %w", err)
	}
	*id = ID(n.String())
	return nil
}

// String returns the text form of the identifier.
func (id ID) String() string { return string(id) }

// Service names the provider behind one offering.
type Service struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Offer is one way to watch a show on one service in one region.
type Offer struct {
	Service Service `json:"service"`
	Type    string  `json:"type"`
	Link    string  `json:"link"`
}

// Show is a candidate entry from the title search, carrying the per-country
// map of regional offerings.
type Show struct {
	ID               ID                 `json:"id"`
	TMDBID           ID                 `json:"tmdbId"`
	IMDBID           string             `json:"imdbId"`
	Title            string             `json:"title"`
	ShowType         string             `json:"showType"`
	StreamingOptions map[string][]Offer `json:"streamingOptions"`
}

// Offers returns the offerings for the given country code, or nil.
func (s Show) Offers(country string) []Offer {
	if len(s.StreamingOptions) == 0 {
		return nil
	}
	return s.StreamingOptions[strings.ToLower(strings.TrimSpace(country))]
}

// searchResponse accepts both upstream response shapes: a bare array of shows
// or an object wrapping the array under "result".
type searchResponse struct {
	Shows []Show
}

func (r *searchResponse) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		r.Shows = nil
		return nil
	}
	if trimmed[0] == '[' {
		return json.Unmarshal(trimmed, &r.Shows)
	}
	var wrapped struct {
		Result []Show `json:"result"`
	}
	if err := json.Unmarshal(trimmed, &wrapped); err != nil {
		return err
	}
	r.Shows = wrapped.Result
	return nil
}

// Searcher defines the availability search operation used by the assistant.
type Searcher interface {
	SearchByTitle(ctx context.Context, title string) ([]Show, error)
}

// Client provides access to the streaming-availability API.
type Client struct {
	apiKey         string
	baseURL        string
	host           string
	country        string
	outputLanguage string
	httpClient     *http.Client
}

var _ Searcher = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithTimeout overrides the default HTTP timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// New creates a streaming-availability client.
func New(apiKey, baseURL, host, country, outputLanguage string, opts ...Option) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("streaming api key required")
	}
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("streaming base url required")
	}
	country = strings.ToLower(strings.TrimSpace(country))
	if country == "" {
		country = "us"
	}
	outputLanguage = strings.ToLower(strings.TrimSpace(outputLanguage))
	if outputLanguage == "" {
		outputLanguage = "en"
	}
	client := &Client{
		apiKey:         apiKey,
		baseURL:        strings.TrimRight(baseURL, "/"),
		host:           strings.TrimSpace(host),
		country:        country,
		outputLanguage: outputLanguage,
		httpClient:     &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// Country returns the country code the client is scoped to.
func (c *Client) Country() string { return c.country }

// SearchByTitle queries the availability title-search endpoint.
func (c *Client) SearchByTitle(ctx context.Context, title string) ([]Show, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, errors.New("title must not be empty")
	}
	endpoint, err := url.Parse(c.baseURL + "/shows/search/title")
	if err != nil {
		return nil, fmt.Errorf("parse streaming url: %w", err)
	}
	params := url.Values{}
	params.Set("title", title)
	params.Set("country", c.country)
	params.Set("output_language", c.outputLanguage)
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("X-RapidAPI-Key", c.apiKey)
	if c.host != "" {
		req.Header.Set("X-RapidAPI-Host", c.host)
	}

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		return nil, fmt.Errorf("execute request (latency=%v): %w", latency, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("streaming search returned %d (latency=%v)", resp.StatusCode, latency)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read streaming response: %w", err)
	}
	var payload searchResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode streaming response: %w", err)
	}
	return payload.Shows, nil
}
