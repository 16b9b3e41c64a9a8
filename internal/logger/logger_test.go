package logger

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

// resetLogger restores the default logger for test isolation
func resetLogger() {
	Init(Options{})
}

func TestInit_Levels(t *testing.T) {
	tests := []struct {
		name      string
		opts      Options
		logged    []string
		notLogged []string
	}{
		{
			name:      "default_info",
			opts:      Options{},
			logged:    []string{"info msg", "warn msg", "error msg"},
			notLogged: []string{"debug msg"},
		},
		{
			name:   "debug",
			opts:   Options{Debug: true},
			logged: []string{"debug msg", "info msg", "warn msg", "error msg"},
		},
		{
			name:      "quiet",
			opts:      Options{Quiet: true},
			logged:    []string{"error msg"},
			notLogged: []string{"debug msg", "info msg", "warn msg"},
		},
		{
			name:      "quiet_overrides_debug",
			opts:      Options{Debug: true, Quiet: true},
			logged:    []string{"error msg"},
			notLogged: []string{"debug msg", "info msg"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			opts := tt.opts
			opts.Output = buf
			Init(opts)
			defer resetLogger()

			Debug("debug msg")
			Info("info msg")
			Warn("warn msg")
			Error("error msg")

			out := buf.String()
			for _, m := range tt.logged {
				if !strings.Contains(out, m) {
					t.Errorf("expected %q to be logged, output: %s", m, out)
				}
			}
			for _, m := range tt.notLogged {
				if strings.Contains(out, m) {
					t.Errorf("expected %q not to be logged, output: %s", m, out)
				}
			}
		})
	}
}

func TestInit_JSONFormat(t *testing.T) {
	buf := &bytes.Buffer{}
	Init(Options{JSON: true, Output: buf})
	defer resetLogger()

	Info("json message", "url", "https://example.com")

	out := buf.String()
	if !strings.HasPrefix(out, "{") {
		t.Errorf("expected JSON output, got %q", out)
	}
	if !strings.Contains(out, `"url":"https://example.com"`) {
		t.Errorf("expected url attribute in output, got %q", out)
	}
}

func TestInit_CustomLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	custom := slog.New(slog.NewTextHandler(buf, nil))
	Init(Options{Logger: custom, Quiet: true})
	defer resetLogger()

	Info("from custom")

	if !strings.Contains(buf.String(), "from custom") {
		t.Error("custom logger should ignore Quiet and log info")
	}
}

func TestSetLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	SetLogger(slog.New(slog.NewTextHandler(buf, nil)))
	defer resetLogger()

	Warn("set logger warn")

	if !strings.Contains(buf.String(), "set logger warn") {
		t.Error("expected message through SetLogger logger")
	}
}

func TestWith_CarriesAttrs(t *testing.T) {
	buf := &bytes.Buffer{}
	Init(Options{Output: buf})
	defer resetLogger()

	With("loader", "web").Info("with attrs")

	out := buf.String()
	if !strings.Contains(out, "loader=web") {
		t.Errorf("expected attribute in output, got %q", out)
	}
}

func TestContextVariants(t *testing.T) {
	buf := &bytes.Buffer{}
	Init(Options{Debug: true, Output: buf})
	defer resetLogger()

	ctx := context.Background()
	DebugContext(ctx, "debug ctx")
	WarnContext(ctx, "warn ctx")
	ErrorContext(ctx, "error ctx")

	out := buf.String()
	for _, m := range []string{"debug ctx", "warn ctx", "error ctx"} {
		if !strings.Contains(out, m) {
			t.Errorf("expected %q in output", m)
		}
	}
}
