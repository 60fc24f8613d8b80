// Package pptx reads and writes PresentationML (.pptx) documents.
//
// The reader decodes a deck into an ordered slide/shape/paragraph/run model,
// following the slide order declared in ppt/presentation.xml. The writer
// builds single-textbox slides on a fixed 16:9 canvas and serializes the
// whole deck to one byte buffer. Serialization is deterministic: identical
// input produces byte-identical output.
package pptx

import "fmt"

// ContentType is the MIME type of a PresentationML document.
const ContentType = "application/vnd.openxmlformats-officedocument.presentationml.presentation"

// DefaultFileName is the conventional name for a merged output deck.
const DefaultFileName = "merged_presentation.pptx"

// EMU per inch. All OOXML drawing coordinates are in English Metric Units.
const emuPerInch = 914400

// Fixed 16:9 canvas, 13.33in x 7.5in.
const (
	slideWidthEMU  = 12192000
	slideHeightEMU = 6858000
)

// RGB is a 24-bit color.
type RGB struct {
	R, G, B uint8
}

// Hex returns the color as an uppercase RRGGBB string, the form
// PresentationML expects in srgbClr values.
func (c RGB) Hex() string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

// TextStyle is the typography applied to a slide's single run.
type TextStyle struct {
	Font   string
	SizePt int
	Color  RGB
	Bold   bool
}
