package llm_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"reelscout/internal/services/llm"
)

func TestCompleteJSONSuccess(t *testing.T) {
	var gotBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer key" {
			t.Fatalf("unexpected auth header: %q", got)
		}
		gotBody, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"{\"intent\":\"recommend\"}"}}]}`))
	}))
	t.Cleanup(server.Close)

	client := llm.NewClient(llm.Config{APIKey: "key", BaseURL: server.URL, Model: "llama-3.3-70b-versatile"})
	content, err := client.CompleteJSON(context.Background(), "classify this")
	if err != nil {
		t.Fatalf("CompleteJSON returned error: %v", err)
	}
	if content != `{"intent":"recommend"}` {
		t.Fatalf("unexpected content: %q", content)
	}

	var payload struct {
		Model          string            `json:"model"`
		ResponseFormat map[string]string `json:"response_format"`
	}
	if err := json.Unmarshal(gotBody, &payload); err != nil {
		t.Fatalf("decode request body: %v", err)
	}
	if payload.Model != "llama-3.3-70b-versatile" {
		t.Fatalf("unexpected model: %q", payload.Model)
	}
	if payload.ResponseFormat["type"] != "json_object" {
		t.Fatalf("expected json_object response format, got %v", payload.ResponseFormat)
	}
}

func TestCompleteOmitsResponseFormat(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		if strings.Contains(string(body), "response_format") {
			t.Fatalf("free-text completion must not force json mode: %s", body)
		}
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"* Clue (Netflix) - classic"}}]}`))
	}))
	t.Cleanup(server.Close)

	client := llm.NewClient(llm.Config{APIKey: "key", BaseURL: server.URL, Model: "m"})
	content, err := client.Complete(context.Background(), "recommend")
	if err != nil {
		t.Fatalf("Complete returned error: %v", err)
	}
	if !strings.HasPrefix(content, "* Clue") {
		t.Fatalf("unexpected content: %q", content)
	}
}

func TestCompleteRequiresAPIKey(t *testing.T) {
	client := llm.NewClient(llm.Config{Model: "m"})
	if _, err := client.Complete(context.Background(), "hi"); err == nil {
		t.Fatal("expected error when api key missing")
	}
}

func TestCompleteRequiresPrompt(t *testing.T) {
	client := llm.NewClient(llm.Config{APIKey: "key", Model: "m"})
	if _, err := client.Complete(context.Background(), "  "); err == nil {
		t.Fatal("expected error for empty prompt")
	}
}

func TestCompleteHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"rate limited"}}`))
	}))
	t.Cleanup(server.Close)

	client := llm.NewClient(llm.Config{APIKey: "key", BaseURL: server.URL, Model: "m"})
	_, err := client.Complete(context.Background(), "hi")
	if err == nil {
		t.Fatal("expected error on 429")
	}
	if !strings.Contains(err.Error(), "429") {
		t.Fatalf("expected status in error, got %v", err)
	}
}

func TestCompleteAPIErrorPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error":{"message":"model decommissioned"}}`))
	}))
	t.Cleanup(server.Close)

	client := llm.NewClient(llm.Config{APIKey: "key", BaseURL: server.URL, Model: "m"})
	_, err := client.Complete(context.Background(), "hi")
	if err == nil || !strings.Contains(err.Error(), "model decommissioned") {
		t.Fatalf("expected api error message, got %v", err)
	}
}

func TestCompleteEmptyContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":""},"finish_reason":"length"}]}`))
	}))
	t.Cleanup(server.Close)

	client := llm.NewClient(llm.Config{APIKey: "key", BaseURL: server.URL, Model: "m"})
	_, err := client.Complete(context.Background(), "hi")
	if err == nil || !strings.Contains(err.Error(), "empty content") {
		t.Fatalf("expected empty content error, got %v", err)
	}
}

func TestDecodeLLMJSONStripsCodeFence(t *testing.T) {
	var parsed struct {
		Intent string `json:"intent"`
	}
	content := "```json\n{\"intent\": \"search_title\"}\n```"
	if err := llm.DecodeLLMJSON(content, &parsed); err != nil {
		t.Fatalf("DecodeLLMJSON returned error: %v", err)
	}
	if parsed.Intent != "search_title" {
		t.Fatalf("unexpected intent: %q", parsed.Intent)
	}
}

func TestDecodeLLMJSONExtractsEmbeddedObject(t *testing.T) {
	var parsed struct {
		Intent string `json:"intent"`
	}
	content := `Here is the classification: {"intent": "recommend"} hope that helps`
	if err := llm.DecodeLLMJSON(content, &parsed); err != nil {
		t.Fatalf("DecodeLLMJSON returned error: %v", err)
	}
	if parsed.Intent != "recommend" {
		t.Fatalf("unexpected intent: %q", parsed.Intent)
	}
}

func TestDecodeLLMJSONEmptyPayload(t *testing.T) {
	var parsed struct{}
	if err := llm.DecodeLLMJSON("   ", &parsed); err == nil {
		t.Fatal("expected error for empty payload")
	}
}
