package services_test

import (
	"context"
	"testing"

	"reelscout/internal/services"
)

func TestSessionIDRoundTrip(t *testing.T) {
	ctx := services.WithSessionID(context.Background(), "abc")
	id, ok := services.SessionIDFromContext(ctx)
	if !ok || id != "abc" {
		t.Fatalf("expected session id abc, got %q ok=%v", id, ok)
	}
}

func TestSessionIDAbsent(t *testing.T) {
	if _, ok := services.SessionIDFromContext(context.Background()); ok {
		t.Fatal("expected no session id")
	}
}

func TestTurnRoundTrip(t *testing.T) {
	ctx := services.WithTurn(context.Background(), 2)
	turn, ok := services.TurnFromContext(ctx)
	if !ok || turn != 2 {
		t.Fatalf("expected turn 2, got %d ok=%v", turn, ok)
	}
}

func TestTurnRejectsNonPositive(t *testing.T) {
	ctx := services.WithTurn(context.Background(), 0)
	if _, ok := services.TurnFromContext(ctx); ok {
		t.Fatal("expected zero turn to be ignored")
	}
}
