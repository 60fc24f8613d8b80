package merger

import "context"

// SourceKind tags the two accepted input formats.
type SourceKind int

const (
	// SourceDeck is a PresentationML (.pptx) document.
	SourceDeck SourceKind = iota
	// SourceScript is a UTF-8 text script using the TITLE:/blank-line grammar.
	SourceScript
)

// SourceItem is one caller-supplied input. Item order is significant: it
// determines output slide order.
type SourceItem struct {
	Name string
	Kind SourceKind
	Data []byte
}

// Merger turns an ordered list of source items into one styled output deck.
type Merger interface {
	// Merge runs the whole pipeline once and returns the serialized deck.
	// It either succeeds completely or fails with no partial output.
	Merge(ctx context.Context, items []SourceItem) ([]byte, error)
}
