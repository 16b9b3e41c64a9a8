package fetcher

import (
	"context"
	"errors"
	"testing"
)

type stubFetcher struct {
	content Content
	err     error
	calls   int
	closed  bool
}

func (s *stubFetcher) Fetch(ctx context.Context, url string, opts Options) (Content, error) {
	s.calls++
	c := s.content
	c.URL = url
	return c, s.err
}

func (s *stubFetcher) Close() error { s.closed = true; return nil }
func (s *stubFetcher) Type() string { return "stub" }

func TestNeedsJavaScript(t *testing.T) {
	tests := []struct {
		name string
		body string
		want bool
	}{
		{"empty", "  ", true},
		{"react shell", `<html><body><div id="root"></div><script src="app.js"></script></body></html>`, true},
		{"noscript warning", `<html><body><noscript>Please enable JavaScript</noscript><p>Hi</p></body></html>`, true},
		{"loading placeholder", `<html><body><p>Loading...</p></body></html>`, true},
		{"static article", `<html><body><h1>Title</h1><p>Plenty of server rendered text.</p></body></html>`, false},
		{"long page mentioning loading", `<html><body><p>` + longText + ` loading</p></body></html>`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := needsJavaScript([]byte(tt.body)); got != tt.want {
				t.Errorf("needsJavaScript() = %v, want %v", got, tt.want)
			}
		})
	}
}

const longText = "This paragraph is long enough that the page is clearly rendered on the server and has real content in it."

func TestAutoFetcher(t *testing.T) {
	rendered := Content{Body: []byte("<html><body><p>rendered</p></body></html>"), StatusCode: 200}

	tests := []struct {
		name         string
		static       *stubFetcher
		wantDynamic  int
		wantErr      bool
		wantRendered bool
	}{
		{
			name:   "static page kept",
			static: &stubFetcher{content: Content{Body: []byte(`<html><body><p>` + longText + `</p></body></html>`), StatusCode: 200}},
		},
		{
			name:         "spa shell re-fetched",
			static:       &stubFetcher{content: Content{Body: []byte(`<div id="app"></div>`), StatusCode: 200}},
			wantDynamic:  1,
			wantRendered: true,
		},
		{
			name:         "transport failure re-fetched",
			static:       &stubFetcher{err: errors.New("connection reset")},
			wantDynamic:  1,
			wantRendered: true,
		},
		{
			name:    "http error returned",
			static:  &stubFetcher{content: Content{StatusCode: 404}, err: errors.New("not found")},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dynamic := &stubFetcher{content: rendered}
			f := NewAuto(tt.static, dynamic)

			got, err := f.Fetch(context.Background(), "https://example.com", Options{})
			if (err != nil) != tt.wantErr {
				t.Fatalf("Fetch() error = %v, wantErr %v", err, tt.wantErr)
			}
			if dynamic.calls != tt.wantDynamic {
				t.Errorf("dynamic calls = %d, want %d", dynamic.calls, tt.wantDynamic)
			}
			if tt.wantRendered && string(got.Body) != string(rendered.Body) {
				t.Errorf("Body = %q, want rendered page", got.Body)
			}
		})
	}
}

func TestAutoFetcher_Close(t *testing.T) {
	static, dynamic := &stubFetcher{}, &stubFetcher{}
	f := NewAuto(static, dynamic)
	if err := f.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if !static.closed || !dynamic.closed {
		t.Error("Close() should close both fetchers")
	}
	if f.Type() != "auto" {
		t.Errorf("Type() = %q, want auto", f.Type())
	}
}
