package partition

import (
	"regexp"
	"strings"
)

var (
	blankLine       = regexp.MustCompile(`\n[ \t]*\n`)
	markdownHeading = regexp.MustCompile(`^#{1,6}\s+`)
)

// PartitionText splits plain text or markdown into paragraphs separated by
// blank lines. A paragraph that is a single markdown heading becomes a Title.
func PartitionText(text string) []Element {
	text = strings.ReplaceAll(text, "\r\n", "\n")

	var elements []Element
	for _, para := range blankLine.Split(text, -1) {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		if !strings.Contains(para, "\n") && markdownHeading.MatchString(para) {
			elements = append(elements, Element{Type: Title, Text: markdownHeading.ReplaceAllString(para, "")})
			continue
		}
		elements = append(elements, Element{Type: NarrativeText, Text: para})
	}
	return elements
}
