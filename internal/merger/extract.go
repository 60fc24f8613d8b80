package merger

import (
	"strings"

	"github.com/tranquocbao1210/verse-deck/pkg/pptx"
)

// extractText flattens one source slide to plain text: runs concatenated
// per paragraph, trimmed, empty paragraphs dropped, survivors joined with
// newlines in shape-then-paragraph order. Internal whitespace is untouched.
func extractText(slide pptx.Slide) string {
	var parts []string
	for _, shape := range slide.Shapes {
		for _, para := range shape.Paragraphs {
			var line strings.Builder
			for _, run := range para.Runs {
				line.WriteString(run)
			}
			if t := strings.TrimSpace(line.String()); t != "" {
				parts = append(parts, t)
			}
		}
	}
	return strings.Join(parts, "\n")
}
