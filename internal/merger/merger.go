package merger

import (
	"context"
	"fmt"
	"strings"

	"github.com/tranquocbao1210/verse-deck/pkg/pptx"
)

// Merge runs the pipeline over the ordered items: decode, extract,
// classify, synthesize. Output slide order follows item order, and within
// an item the source's document order. If any item fails to decode the
// whole run fails and no partial deck is returned.
func (m *implMerger) Merge(ctx context.Context, items []SourceItem) ([]byte, error) {
	deck := pptx.NewDeck()

	for _, item := range items {
		switch item.Kind {
		case SourceDeck:
			if err := m.mergeDeck(ctx, deck, item); err != nil {
				return nil, err
			}
		case SourceScript:
			m.mergeScript(ctx, deck, item)
		default:
			return nil, fmt.Errorf("source %s: unknown kind %d", item.Name, item.Kind)
		}
	}

	out, err := deck.Bytes()
	if err != nil {
		return nil, fmt.Errorf("serialize output deck: %w", err)
	}

	m.logger.Info(ctx, "Merged %d source(s) into %d slide(s)", len(items), deck.SlideCount())
	return out, nil
}

// mergeDeck re-renders every non-empty slide of a source presentation.
// Classification state is scoped to this one item. A slide renders with
// title typography when the classifier marks it a title or when its text is
// all-caps; the two checks stay separate on purpose — a late all-caps slide
// does not consume the per-deck title slot but still gets title styling.
func (m *implMerger) mergeDeck(ctx context.Context, deck *pptx.Deck, item SourceItem) error {
	prs, err := pptx.Open(item.Data)
	if err != nil {
		return fmt.Errorf("decode %s: %w", item.Name, err)
	}

	cc := &classifyContext{}
	for _, slide := range prs.Slides {
		text := extractText(slide)
		if text == "" {
			continue
		}
		isTitle := cc.classify(text)
		m.synthesize(ctx, deck, text, isTitle || isAllCaps(text))
	}
	return nil
}

// mergeScript renders parsed script records: per record a title slide when
// a title is present, then a verse slide when body lines are present. Script
// slides carry an explicit role, so neither the classifier counters nor the
// all-caps override apply here.
func (m *implMerger) mergeScript(ctx context.Context, deck *pptx.Deck, item SourceItem) {
	for _, rec := range parseScript(item.Data) {
		if rec.title != "" {
			m.synthesize(ctx, deck, rec.title, true)
		}
		if len(rec.body) > 0 {
			m.synthesize(ctx, deck, strings.Join(rec.body, "\n"), false)
		}
	}
}
