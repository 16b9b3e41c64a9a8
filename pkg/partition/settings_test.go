package partition

import (
	"errors"
	"testing"
	"time"
)

func TestDecodeSettings(t *testing.T) {
	s, err := DecodeSettings(Options{
		"cleaner":              "readability",
		"skip_headers_footers": "true",
		"user_agent":           "docload",
		"timeout":              "5s",
	})
	if err != nil {
		t.Fatalf("DecodeSettings() error = %v", err)
	}

	if s.Cleaner != "readability" {
		t.Errorf("Cleaner = %q", s.Cleaner)
	}
	if !s.SkipHeadersFooters {
		t.Error("SkipHeadersFooters should be true")
	}
	if s.UserAgent != "docload" {
		t.Errorf("UserAgent = %q", s.UserAgent)
	}
	if s.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v, want 5s", s.Timeout)
	}
}

func TestDecodeSettings_Empty(t *testing.T) {
	s, err := DecodeSettings(nil)
	if err != nil {
		t.Fatalf("DecodeSettings() error = %v", err)
	}
	if s != (Settings{}) {
		t.Errorf("expected zero settings, got %+v", s)
	}
}

func TestDecodeSettings_Invalid(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"unknown_key", Options{"encoding": "latin-1"}},
		{"bad_cleaner", Options{"cleaner": "boilerpipe"}},
		{"negative_timeout", Options{"timeout": "-1s"}},
		{"bad_timeout", Options{"timeout": "soon"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeSettings(tt.opts)
			if !errors.Is(err, ErrInvalidOptions) {
				t.Errorf("DecodeSettings() error = %v, want ErrInvalidOptions", err)
			}
		})
	}
}
