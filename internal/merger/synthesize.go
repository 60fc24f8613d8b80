package merger

import (
	"context"

	"github.com/tranquocbao1210/verse-deck/pkg/pptx"
)

// synthesize appends one styled slide to the output deck. A background
// image that cannot be attached is dropped for that slide with a warning;
// the slide itself is always produced.
func (m *implMerger) synthesize(ctx context.Context, deck *pptx.Deck, text string, useTitleStyle bool) {
	style := m.style.verseText()
	if useTitleStyle {
		style = m.style.titleText()
	}

	if err := deck.AddTextSlide(text, style, m.style.Background); err != nil {
		m.logger.Warn(ctx, "Background image skipped for slide %d: %v", deck.SlideCount()+1, err)
		// Cannot fail without an image to attach.
		deck.AddTextSlide(text, style, nil) //nolint:errcheck
	}
}
