package logger

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestZeroLogger_Info(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWithWriter("development", buf)

	log.Info("info-test", Field{Key: "key", Value: "value"})

	output := buf.String()

	if !strings.Contains(output, "info-test") {
		t.Errorf("expected 'info-test' in log, got: %s", output)
	}
	if !strings.Contains(output, `"key":"value"`) {
		t.Errorf("expected field key=value, got: %s", output)
	}
	if !strings.Contains(output, `"level":"info"`) {
		t.Errorf("expected level=info, got: %s", output)
	}
}

func TestZeroLogger_DebugShownInDev(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWithWriter("development", buf)

	log.Debug("debug-test")

	output := buf.String()
	if !strings.Contains(output, "debug-test") {
		t.Errorf("expected debug log in development, got: %s", output)
	}
}

func TestZeroLogger_DebugHiddenInProduction(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWithWriter("production", buf)

	log.Debug("debug-hidden")

	output := buf.String()
	if output != "" {
		t.Errorf("expected NO debug log output in production, got: %s", output)
	}
}

func TestZeroLogger_LevelIsPerInstance(t *testing.T) {
	prodBuf := &bytes.Buffer{}
	devBuf := &bytes.Buffer{}
	prod := NewWithWriter("production", prodBuf)
	dev := NewWithWriter("development", devBuf)

	prod.Debug("hidden")
	dev.Debug("shown")

	if prodBuf.Len() != 0 {
		t.Errorf("production logger leaked debug output: %s", prodBuf.String())
	}
	if !strings.Contains(devBuf.String(), "shown") {
		t.Errorf("development logger lost debug output after production logger was created")
	}
}

func TestZeroLogger_TypedFields(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWithWriter("development", buf)

	log.Warn("warn-test",
		Field{Key: "status", Value: 502},
		Field{Key: "id", Value: int64(42)},
		Field{Key: "within_budget", Value: false},
		Field{Key: "elapsed", Value: 1500 * time.Millisecond},
		Field{Key: "err", Value: errors.New("boom")},
	)

	output := buf.String()

	for _, want := range []string{`"level":"warn"`, `"status":502`, `"id":42`, `"within_budget":false`, `"err":"boom"`} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %s in log, got: %s", want, output)
		}
	}
}

func TestZeroLogger_WithCarriesFields(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWithWriter("development", buf).With(Field{Key: "request_id", Value: "abc"})

	log.Error("error-test")

	output := buf.String()

	if !strings.Contains(output, `"level":"error"`) {
		t.Errorf("expected error level, got: %s", output)
	}
	if !strings.Contains(output, `"request_id":"abc"`) {
		t.Errorf("expected request_id on child logger, got: %s", output)
	}
}
