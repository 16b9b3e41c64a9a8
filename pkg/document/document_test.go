package document

import (
	"encoding/json"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestNew_SetsSource(t *testing.T) {
	d := New("hello", "https://example.com")

	if d.Content != "hello" {
		t.Errorf("Content = %q, want %q", d.Content, "hello")
	}
	if got := d.Source(); got != "https://example.com" {
		t.Errorf("Source() = %q, want %q", got, "https://example.com")
	}
}

func TestSource_Missing(t *testing.T) {
	d := Document{Content: "x"}
	if got := d.Source(); got != "" {
		t.Errorf("Source() = %q, want empty", got)
	}
}

func TestDocument_JSONFieldNames(t *testing.T) {
	out, err := json.Marshal(New("body", "https://example.com"))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	want := `{"content":"body","metadata":{"source":"https://example.com"}}`
	if string(out) != want {
		t.Errorf("Marshal() = %s, want %s", out, want)
	}
}

func TestDocument_YAMLFieldNames(t *testing.T) {
	out, err := yaml.Marshal(New("body", "https://example.com"))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	want := "content: body\nmetadata:\n    source: https://example.com\n"
	if string(out) != want {
		t.Errorf("Marshal() = %q, want %q", out, want)
	}
}
