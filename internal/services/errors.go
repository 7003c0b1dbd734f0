package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrConfiguration = errors.New("configuration error")
	ErrNotFound      = errors.New("not found")
	ErrUpstream      = errors.New("upstream error")
	ErrMalformed     = errors.New("malformed response")
)

// maxUserDetail bounds how much raw error text leaks into the chat transcript.
const maxUserDetail = 150

// Wrap builds an error message that includes pipeline context while tagging it
// with the provided marker for later classification. The marker should be one
// of the exported sentinel errors above.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if marker == nil {
		marker = ErrUpstream
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// UserMessage converts a turn-level pipeline failure into the single
// human-readable line appended as the assistant's turn. Detail is truncated so
// upstream stack noise never floods the transcript.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	detail := strings.TrimSpace(err.Error())
	runes := []rune(detail)
	if len(runes) > maxUserDetail {
		detail = string(runes[:maxUserDetail])
	}
	return fmt.Sprintf("Error: %s. Try again.", detail)
}

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}
