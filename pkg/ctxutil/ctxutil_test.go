package ctxutil

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestWithRunID_And_RunIDFromCtx(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	ctx := WithRunID(context.Background(), id)

	got, ok := RunIDFromCtx(ctx)
	if !ok {
		t.Fatal("expected ok=true for valid UUID")
	}
	if got != id {
		t.Fatalf("expected %s, got %s", id, got)
	}
}

func TestRunIDFromCtx_EmptyContext(t *testing.T) {
	t.Parallel()

	got, ok := RunIDFromCtx(context.Background())
	if ok {
		t.Fatal("expected ok=false for empty context")
	}
	if got != uuid.Nil {
		t.Fatalf("expected uuid.Nil, got %s", got)
	}
}

func TestRunIDFromCtx_NilUUID(t *testing.T) {
	t.Parallel()

	ctx := WithRunID(context.Background(), uuid.Nil)

	if _, ok := RunIDFromCtx(ctx); ok {
		t.Fatal("expected ok=false for uuid.Nil")
	}
}

func TestRunIDFromCtx_WrongType(t *testing.T) {
	t.Parallel()

	ctx := context.WithValue(context.Background(), runIDKey, "not-a-uuid")

	if _, ok := RunIDFromCtx(ctx); ok {
		t.Fatal("expected ok=false for wrong type")
	}
}

func TestPhaseFromCtx(t *testing.T) {
	t.Parallel()

	if got := PhaseFromCtx(context.Background()); got != "" {
		t.Fatalf("expected empty phase, got %q", got)
	}

	ctx := WithPhase(context.Background(), "lexicon")
	if got := PhaseFromCtx(ctx); got != "lexicon" {
		t.Fatalf("expected %q, got %q", "lexicon", got)
	}

	ctx = WithPhase(ctx, "unknown")
	if got := PhaseFromCtx(ctx); got != "unknown" {
		t.Fatalf("inner value should win, got %q", got)
	}
}
