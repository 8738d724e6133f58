package tracing

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

func TestStartSpan_Disabled(t *testing.T) {
	if err := Init(false); err != nil {
		t.Fatalf("init: %v", err)
	}
	ctx := context.Background()
	got, span := StartSpan(ctx, "noop", "k", "v")
	if got != ctx {
		t.Fatalf("disabled tracing should return the same context")
	}
	End(span, errors.New("ignored"))
	if Enabled() {
		t.Fatalf("expected disabled")
	}
}

func TestStartSpan_EnabledExports(t *testing.T) {
	var buf bytes.Buffer
	if err := InitWithWriter(true, &buf); err != nil {
		t.Fatalf("init: %v", err)
	}
	t.Cleanup(func() {
		_ = Shutdown(context.Background())
		_ = Init(false)
	})

	_, span := StartSpan(context.Background(), "leaderboard.Build", "token", "0xabc")
	End(span, nil)

	if !strings.Contains(buf.String(), "leaderboard.Build") {
		t.Fatalf("span not exported: %s", buf.String())
	}
}
