package assistant

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"reelscout/internal/services"
)

// Greeting opens every session and shows the two query shapes the pipeline
// understands.
const Greeting = "Hi! Ask 'Where to watch Cool Runnings?' or 'Board game night playlist'."

// Role distinguishes who produced a transcript turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ChatTurn is one entry in the session transcript.
type ChatTurn struct {
	Role    Role
	Content string
}

// AppsSource yields the enabled-apps set current at query-submission time.
// *apps.Store satisfies it.
type AppsSource interface {
	Load() ([]string, error)
}

// Session is a single in-memory conversation. The transcript is append-only
// and every query, successful or not, yields exactly one assistant turn, so a
// failed lookup never ends the conversation.
type Session struct {
	id        string
	assistant *Assistant
	source    AppsSource
	logger    *slog.Logger
	turns     []ChatTurn
	queries   int
}

// NewSession opens a session seeded with the greeting turn.
func NewSession(a *Assistant, source AppsSource, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	id := uuid.NewString()
	logger.Info("session started", "session_id", id)
	return &Session{
		id:        id,
		assistant: a,
		source:    source,
		logger:    logger,
		turns:     []ChatTurn{{Role: RoleAssistant, Content: Greeting}},
	}
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Turns returns a copy of the transcript so far.
func (s *Session) Turns() []ChatTurn {
	out := make([]ChatTurn, len(s.turns))
	copy(out, s.turns)
	return out
}

// HandleQuery appends the user's query to the transcript, runs it through the
// pipeline, and appends and returns the assistant's reply. Pipeline failures
// become a truncated error turn rather than propagating.
func (s *Session) HandleQuery(ctx context.Context, query string) ChatTurn {
	query = strings.TrimSpace(query)
	s.queries++
	s.turns = append(s.turns, ChatTurn{Role: RoleUser, Content: query})

	ctx = services.WithSessionID(ctx, s.id)
	ctx = services.WithTurn(ctx, s.queries)

	reply := s.answer(ctx, query)
	turn := ChatTurn{Role: RoleAssistant, Content: reply}
	s.turns = append(s.turns, turn)
	return turn
}

func (s *Session) answer(ctx context.Context, query string) string {
	if query == "" {
		return "Please type a question first."
	}

	enabled, err := s.source.Load()
	if err != nil {
		s.logger.Error("load enabled apps", "error", err)
		return services.UserMessage(services.Wrap(services.ErrConfiguration, "apps", "load", "", err))
	}

	start := time.Now()
	content, err := s.assistant.Answer(ctx, query, enabled)
	latency := time.Since(start).Round(time.Millisecond)
	if err != nil {
		s.logger.Error("query failed", "session_id", s.id, "turn", s.queries, "latency", latency, "error", err)
		return services.UserMessage(err)
	}
	s.logger.Info("query answered", "session_id", s.id, "turn", s.queries, "latency", latency)
	return content
}
