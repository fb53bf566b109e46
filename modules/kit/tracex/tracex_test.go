package tracex

import (
	"context"
	"testing"
)

func TestTraceID_RoundTrip(t *testing.T) {
	ctx := WithTraceID(context.Background(), "t-1")
	if got, ok := TraceIDFrom(ctx); !ok || got != "t-1" {
		t.Fatalf("期望 round-trip 成功, got=%q ok=%v", got, ok)
	}
}

func TestEnsure_已有则沿用(t *testing.T) {
	ctx, tid := Ensure(context.Background())
	if len(tid) != 32 {
		t.Fatalf("期望生成 32 位 hex, got=%q", tid)
	}
	_, again := Ensure(ctx)
	if again != tid {
		t.Fatalf("期望沿用已有 trace_id, got=%q want=%q", again, tid)
	}
}
