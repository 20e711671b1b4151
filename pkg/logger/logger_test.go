package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"DEBUG":   zerolog.DebugLevel,
		" warn ":  zerolog.WarnLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"":        zerolog.InfoLevel,
		"verbose": zerolog.InfoLevel,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNew_JSONFields(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Level: "info", Output: &buf, Service: "fleet-api", Env: "test"})
	defer zerolog.SetGlobalLevel(zerolog.TraceLevel)

	dispatcherLog := Component(log, "dispatcher")
	dispatcherLog.Info().Str("bus_id", "NB-1001").Msg("hello")
	log.Debug().Msg("filtered")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d: %s", len(lines), buf.String())
	}

	var entry map[string]any
	if err := json.Unmarshal(lines[0], &entry); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	for k, want := range map[string]string{
		"service":   "fleet-api",
		"env":       "test",
		"component": "dispatcher",
		"bus_id":    "NB-1001",
		"message":   "hello",
		"level":     "info",
	} {
		if entry[k] != want {
			t.Fatalf("field %s = %v, want %q", k, entry[k], want)
		}
	}
}
