package merger

import (
	"testing"

	"github.com/tranquocbao1210/verse-deck/pkg/pptx"
)

func TestExtractText(t *testing.T) {
	tests := []struct {
		name  string
		slide pptx.Slide
		want  string
	}{
		{
			name:  "no shapes",
			slide: pptx.Slide{},
			want:  "",
		},
		{
			name: "runs concatenated within a paragraph",
			slide: pptx.Slide{Shapes: []pptx.Shape{
				{Paragraphs: []pptx.Paragraph{{Runs: []string{"Amazing ", "grace"}}}},
			}},
			want: "Amazing grace",
		},
		{
			name: "paragraphs joined with newlines across shapes",
			slide: pptx.Slide{Shapes: []pptx.Shape{
				{Paragraphs: []pptx.Paragraph{
					{Runs: []string{"line one"}},
					{Runs: []string{"line two"}},
				}},
				{Paragraphs: []pptx.Paragraph{{Runs: []string{"line three"}}}},
			}},
			want: "line one\nline two\nline three",
		},
		{
			name: "whitespace-only paragraphs dropped",
			slide: pptx.Slide{Shapes: []pptx.Shape{
				{Paragraphs: []pptx.Paragraph{
					{Runs: []string{"  "}},
					{Runs: []string{"kept"}},
					{Runs: nil},
				}},
			}},
			want: "kept",
		},
		{
			name: "surrounding whitespace trimmed, internal kept",
			slide: pptx.Slide{Shapes: []pptx.Shape{
				{Paragraphs: []pptx.Paragraph{{Runs: []string{"  two  words  "}}}},
			}},
			want: "two  words",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractText(tt.slide); got != tt.want {
				t.Errorf("extractText() = %q, want %q", got, tt.want)
			}
		})
	}
}
