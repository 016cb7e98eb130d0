package ai

import (
	"regexp"
	"strings"
)

const fallbackTitle = "Untitled Story"

var (
	titleRe   = regexp.MustCompile(`TITLE:\s*(.+?)(?:\n|---)`)
	contentRe = regexp.MustCompile(`(?s)---\s*\n(.+)`)
)

// ParseStoryResponse splits a model completion into title and content.
// The expected shape is "TITLE: <title>\n---\n<content>"; a missing title
// falls back to "Untitled Story" and missing separator means the whole text
// is the content.
func ParseStoryResponse(text string) (title, content string) {
	title = fallbackTitle
	if m := titleRe.FindStringSubmatch(text); m != nil {
		if t := strings.TrimSpace(m[1]); t != "" {
			title = t
		}
	}

	content = text
	if m := contentRe.FindStringSubmatch(text); m != nil {
		content = m[1]
	}
	return title, strings.TrimSpace(content)
}
