package merger

import (
	"strings"
	"testing"

	"github.com/tranquocbao1210/verse-deck/pkg/pptx"
)

func TestTemplateDeck(t *testing.T) {
	out, err := TemplateDeck(DefaultStyle())
	if err != nil {
		t.Fatalf("TemplateDeck() error = %v", err)
	}

	p, err := pptx.Open(out)
	if err != nil {
		t.Fatalf("template deck does not reopen: %v", err)
	}
	if len(p.Slides) != 2 {
		t.Fatalf("template slides = %d, want 2", len(p.Slides))
	}
	if got := extractText(p.Slides[0]); got != "SAMPLE SONG TITLE" {
		t.Errorf("title slide text = %q", got)
	}
	if !strings.Contains(extractText(p.Slides[1]), "Sample verse") {
		t.Errorf("verse slide text = %q", extractText(p.Slides[1]))
	}
}

func TestScriptTemplateParses(t *testing.T) {
	records := parseScript([]byte(ScriptTemplate))
	if len(records) < 2 {
		t.Fatalf("template parsed to %d records, want at least 2", len(records))
	}
	if records[0].title != "Amazing Grace" {
		t.Errorf("first record title = %q, want Amazing Grace", records[0].title)
	}
	if len(records[0].body) == 0 {
		t.Error("first record should have verse lines")
	}
}
