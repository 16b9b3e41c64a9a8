package partition

import (
	"mime"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

type contentKind int

const (
	kindUnsupported contentKind = iota
	kindHTML
	kindText
)

var kindsByMediaType = map[string]contentKind{
	"text/html":             kindHTML,
	"application/xhtml+xml": kindHTML,
	"text/plain":            kindText,
	"text/markdown":         kindText,
	"text/x-markdown":       kindText,
}

// detect classifies a response by its Content-Type header, sniffing the
// body when the header is missing or generic.
func detect(contentType string, body []byte) (contentKind, string) {
	mediaType := parseMediaType(contentType)
	if mediaType == "" || mediaType == "application/octet-stream" {
		mediaType = parseMediaType(mimetype.Detect(body).String())
	}
	return kindsByMediaType[mediaType], mediaType
}

func parseMediaType(v string) string {
	if v == "" {
		return ""
	}
	mt, _, err := mime.ParseMediaType(v)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(v))
	}
	return mt
}
