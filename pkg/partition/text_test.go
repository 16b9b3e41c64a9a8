package partition

import (
	"reflect"
	"testing"
)

func TestPartitionText(t *testing.T) {
	input := "# Heading\r\n\r\nFirst paragraph\ncontinues here.\n\n   \n\nSecond paragraph.\n\n## Sub heading\n"

	want := []Element{
		{Type: Title, Text: "Heading"},
		{Type: NarrativeText, Text: "First paragraph\ncontinues here."},
		{Type: NarrativeText, Text: "Second paragraph."},
		{Type: Title, Text: "Sub heading"},
	}

	got := PartitionText(input)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("PartitionText() = %#v, want %#v", got, want)
	}
}

func TestPartitionText_Empty(t *testing.T) {
	if got := PartitionText(" \n\n \n"); len(got) != 0 {
		t.Errorf("expected no elements, got %v", got)
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		body        string
		want        contentKind
	}{
		{"html_header", "text/html; charset=utf-8", "", kindHTML},
		{"xhtml_header", "application/xhtml+xml", "", kindHTML},
		{"plain_header", "text/plain", "hello", kindText},
		{"markdown_header", "text/markdown; charset=utf-8", "# hi", kindText},
		{"pdf_header", "application/pdf", "", kindUnsupported},
		{"sniff_html", "", "<!DOCTYPE html><html><body><p>x</p></body></html>", kindHTML},
		{"sniff_octet_stream", "application/octet-stream", "<html><head></head><body>x</body></html>", kindHTML},
		{"sniff_text", "", "just some words", kindText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, mediaType := detect(tt.contentType, []byte(tt.body))
			if got != tt.want {
				t.Errorf("detect() = %v (%s), want %v", got, mediaType, tt.want)
			}
		})
	}
}
