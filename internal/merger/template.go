package merger

import (
	"fmt"

	"github.com/tranquocbao1210/verse-deck/pkg/pptx"
)

// TemplateDeck builds a two-slide example deck (one title slide, one verse
// slide) rendered with the given style, so users can preview their
// configuration before merging real decks.
func TemplateDeck(style Style) ([]byte, error) {
	deck := pptx.NewDeck()

	if err := deck.AddTextSlide("SAMPLE SONG TITLE", style.titleText(), style.Background); err != nil {
		deck.AddTextSlide("SAMPLE SONG TITLE", style.titleText(), nil) //nolint:errcheck
	}
	verse := "Sample verse line one\nSample verse line two"
	if err := deck.AddTextSlide(verse, style.verseText(), style.Background); err != nil {
		deck.AddTextSlide(verse, style.verseText(), nil) //nolint:errcheck
	}

	out, err := deck.Bytes()
	if err != nil {
		return nil, fmt.Errorf("serialize template deck: %w", err)
	}
	return out, nil
}

// ScriptTemplate is an example text script exercising the full grammar.
const ScriptTemplate = `TITLE: "Amazing Grace"

Amazing grace how sweet the sound
That saved a wretch like me

I once was lost but now am found
Was blind but now I see

TITLE: How Great Thou Art

O Lord my God when I in awesome wonder
Consider all the worlds Thy hands have made
`
