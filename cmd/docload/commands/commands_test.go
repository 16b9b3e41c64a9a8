package commands

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jmylchreest/docload/pkg/document"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

// resetFlags restores flag defaults so commands run independently of
// earlier executions in the same process.
func resetFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	})
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func readDocuments(t *testing.T, path string) []document.Document {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	var docs []document.Document
	if err := json.Unmarshal(data, &docs); err != nil {
		t.Fatalf("output is not a JSON array: %v\n%s", err, data)
	}
	return docs
}

func TestParseBodySize(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"10MB", 10_000_000, false},
		{"1KiB", 1024, false},
		{"", 0, false},
		{"0", -1, false},
		{"lots", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseBodySize(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseBodySize(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("parseBodySize(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestMergeHeaders(t *testing.T) {
	got := mergeHeaders(
		map[string]string{"cookie": "a", "x-env": "prod"},
		map[string]string{"cookie": "b"},
	)
	if got["cookie"] != "b" || got["x-env"] != "prod" || len(got) != 2 {
		t.Errorf("mergeHeaders() = %v", got)
	}
}

func TestMergeOptions(t *testing.T) {
	got := mergeOptions(
		map[string]any{"skip_headers_footers": true, "cleaner": "none"},
		map[string]string{"cleaner": "markdown"},
	)
	if got["cleaner"] != "markdown" {
		t.Errorf("cleaner = %v, want markdown", got["cleaner"])
	}
	if got["skip_headers_footers"] != true {
		t.Errorf("skip_headers_footers = %v, want true", got["skip_headers_footers"])
	}
}

func TestNewFetcher(t *testing.T) {
	f, err := newFetcher("static", "1MB", 0)
	if err != nil {
		t.Fatalf("newFetcher(static) error = %v", err)
	}
	if f.Type() != "static" {
		t.Errorf("Type() = %q, want static", f.Type())
	}

	if _, err := newFetcher("carrier-pigeon", "", 0); err == nil {
		t.Error("expected error for unknown fetch mode")
	}
	if _, err := newFetcher("static", "huge", 0); err == nil {
		t.Error("expected error for invalid body size")
	}
}

func TestURLsCommand(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(`<html><body><h1>Hello</h1><p>World ` + r.Header.Get("X-Test") + `</p></body></html>`))
	}))
	defer server.Close()

	out := filepath.Join(t.TempDir(), "docs.json")
	_, err := execute(t, "urls", "--quiet", "--output", out,
		"-u", server.URL+"/page",
		"-u", server.URL+"/missing",
		"--header", "X-Test=yes",
	)
	if err != nil {
		t.Fatalf("urls command error = %v", err)
	}

	docs := readDocuments(t, out)
	if len(docs) != 1 {
		t.Fatalf("expected 1 document, got %d", len(docs))
	}
	if docs[0].Content != "Hello\n\nWorld yes" {
		t.Errorf("Content = %q", docs[0].Content)
	}
	if docs[0].Source() != server.URL+"/page" {
		t.Errorf("Source() = %q", docs[0].Source())
	}
}

func TestFigmaCommand(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Figma-Token") != "secret" {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		_, _ = w.Write([]byte(`{"a": "x", "b": {"c": "y"}}`))
	}))
	defer server.Close()

	t.Setenv("DOCLOAD_FIGMA_TOKEN", "secret")
	out := filepath.Join(t.TempDir(), "figma.json")
	_, err := execute(t, "figma", "--quiet", "--output", out,
		"--api-base", server.URL, "--key", "K123", "--ids", "1,2")
	if err != nil {
		t.Fatalf("figma command error = %v", err)
	}

	docs := readDocuments(t, out)
	if len(docs) != 1 {
		t.Fatalf("expected 1 document, got %d", len(docs))
	}
	if docs[0].Content != "a: x\nb: \nc: y\n\n" {
		t.Errorf("Content = %q", docs[0].Content)
	}
	if want := server.URL + "/files/K123/nodes?ids=1,2"; docs[0].Source() != want {
		t.Errorf("Source() = %q, want %q", docs[0].Source(), want)
	}
}

func TestVersionCommand(t *testing.T) {
	got, err := execute(t, "version", "--short")
	if err != nil {
		t.Fatalf("version command error = %v", err)
	}
	if strings.TrimSpace(got) == "" {
		t.Error("expected version output")
	}
}

func TestURLsCommand_RequiresURL(t *testing.T) {
	if _, err := execute(t, "urls", "--quiet"); err == nil || !strings.Contains(err.Error(), "--url") {
		t.Fatalf("expected missing url error, got %v", err)
	}
}
