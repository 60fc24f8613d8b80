package merger

import "github.com/tranquocbao1210/verse-deck/pkg/pptx"

// Style is the immutable rendering configuration for one merge run:
// typography for title slides, typography for verse slides, and an optional
// background image shared by every slide.
type Style struct {
	TitleColor pptx.RGB
	VerseColor pptx.RGB
	TitleFont  string
	VerseFont  string
	TitleSize  int
	VerseSize  int
	Background []byte
}

// DefaultStyle matches the classic lyric-deck look: yellow bold titles,
// white verses, Arial throughout, black background.
func DefaultStyle() Style {
	return Style{
		TitleColor: pptx.RGB{R: 255, G: 255, B: 0},
		VerseColor: pptx.RGB{R: 255, G: 255, B: 255},
		TitleFont:  "Arial",
		VerseFont:  "Arial",
		TitleSize:  72,
		VerseSize:  65,
	}
}

func (s Style) titleText() pptx.TextStyle {
	return pptx.TextStyle{Font: s.TitleFont, SizePt: s.TitleSize, Color: s.TitleColor, Bold: true}
}

func (s Style) verseText() pptx.TextStyle {
	return pptx.TextStyle{Font: s.VerseFont, SizePt: s.VerseSize, Color: s.VerseColor, Bold: false}
}
