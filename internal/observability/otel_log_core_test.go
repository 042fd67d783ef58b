package observability

import (
	"errors"
	"testing"
	"time"

	otellog "go.opentelemetry.io/otel/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestShouldSkipOTelLog(t *testing.T) {
	if !shouldSkipOTelLog("http_request", map[string]any{"http_path": "/healthz"}) {
		t.Fatalf("expected health check log to be skipped")
	}
	if shouldSkipOTelLog("http_request", map[string]any{"http_path": "/purchasePlaces"}) {
		t.Fatalf("did not expect non-health log to be skipped")
	}
	if shouldSkipOTelLog("booking accepted", map[string]any{"http_path": "/healthz"}) {
		t.Fatalf("did not expect non-http_request event to be skipped")
	}
}

func TestBuildOTelLogAttributes_FromZapFields(t *testing.T) {
	enc := zapcore.NewMapObjectEncoder()
	for _, f := range []zap.Field{
		zap.String("club", "Simply Lift"),
		zap.Int("places", 3),
		zap.Duration("elapsed", 1500*time.Millisecond),
		zap.NamedError("error", errors.New("boom")),
	} {
		f.AddTo(enc)
	}

	attrs := buildOTelLogAttributes(enc.Fields)
	byKey := make(map[string]otellog.Value, len(attrs))
	for _, a := range attrs {
		byKey[a.Key] = a.Value
	}

	if byKey["club"].AsString() != "Simply Lift" {
		t.Fatalf("unexpected club attribute: %v", byKey["club"])
	}
	if byKey["places"].AsInt64() != 3 {
		t.Fatalf("unexpected places attribute: %v", byKey["places"])
	}
	if byKey["elapsed"].AsString() != "1.5s" {
		t.Fatalf("unexpected elapsed attribute: %v", byKey["elapsed"])
	}
	if byKey["error"].AsString() != "boom" {
		t.Fatalf("unexpected error attribute: %v", byKey["error"])
	}
	if attrs[0].Key != "club" {
		t.Fatalf("expected attributes sorted by key, got first=%s", attrs[0].Key)
	}
}

func TestToOTelLogValue_Map(t *testing.T) {
	v := toOTelLogValue(map[string]any{
		"points": 13,
		"open":   true,
	}, 0)
	if v.Kind() != otellog.KindMap {
		t.Fatalf("expected map value, got %s", v.Kind())
	}
	if len(v.AsMap()) != 2 {
		t.Fatalf("expected 2 map items, got %d", len(v.AsMap()))
	}
}

func TestOTelLogCore_RespectsLevel(t *testing.T) {
	core := newOTelLogCore("test", zapcore.WarnLevel)
	if core.Enabled(zapcore.InfoLevel) {
		t.Fatalf("expected info disabled")
	}
	if !core.Enabled(zapcore.ErrorLevel) {
		t.Fatalf("expected error enabled")
	}
	child := core.With([]zapcore.Field{zap.String("component", "httpapi")}).(*otelLogCore)
	if len(child.fields) != 1 || len(core.fields) != 0 {
		t.Fatalf("expected With to copy fields without mutating parent")
	}
}
