package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStoryResponse(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantTitle   string
		wantContent string
	}{
		{
			name:        "well formed response",
			input:       "TITLE: The Sleepy Dragon\n---\nOnce upon a time there was a dragon.",
			wantTitle:   "The Sleepy Dragon",
			wantContent: "Once upon a time there was a dragon.",
		},
		{
			name:        "extra whitespace around title and content",
			input:       "TITLE:   Luna's Moonlight Adventure  \n---\n\n  The night was quiet.\n\nLuna tiptoed outside.  ",
			wantTitle:   "Luna's Moonlight Adventure",
			wantContent: "The night was quiet.\n\nLuna tiptoed outside.",
		},
		{
			name:        "missing title falls back",
			input:       "---\nA story without a title line.",
			wantTitle:   "Untitled Story",
			wantContent: "A story without a title line.",
		},
		{
			name:        "missing separator keeps whole text",
			input:       "Just a plain story body with no formatting at all.",
			wantTitle:   "Untitled Story",
			wantContent: "Just a plain story body with no formatting at all.",
		},
		{
			name:        "title present but no separator",
			input:       "TITLE: Lost Format\nThe model forgot the separator.",
			wantTitle:   "Lost Format",
			wantContent: "TITLE: Lost Format\nThe model forgot the separator.",
		},
		{
			name:        "multiline content survives",
			input:       "TITLE: Two Chapters\n---\nChapter one.\n\nChapter two.",
			wantTitle:   "Two Chapters",
			wantContent: "Chapter one.\n\nChapter two.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, content := ParseStoryResponse(tt.input)
			assert.Equal(t, tt.wantTitle, title)
			assert.Equal(t, tt.wantContent, content)
		})
	}
}
