package ctxlog

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestFromContext_Default(t *testing.T) {
	if FromContext(context.Background()) != slog.Default() {
		t.Fatalf("expected default logger")
	}
}

func TestWithLogger_Verbosity(t *testing.T) {
	var buf bytes.Buffer
	ctx := WithLogger(context.Background(), New(&buf, false))
	FromContext(ctx).Debug("hidden")
	FromContext(ctx).Warn("shown", "path", "a.json")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug record leaked: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "path=a.json") {
		t.Fatalf("missing warn record: %q", out)
	}

	buf.Reset()
	ctx = WithLogger(context.Background(), New(&buf, true))
	FromContext(ctx).Debug("visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Fatalf("verbose logger dropped debug: %q", buf.String())
	}
}
