// Package llm wraps the Groq OpenAI-compatible chat completions API.
//
// Two completion modes are exposed: CompleteJSON forces json_object output
// for structured intent parsing, Complete returns free text for
// recommendations. Each call is a single attempt; turn-level failures are
// reported to the user rather than retried.
package llm
