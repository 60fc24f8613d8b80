package merger

import "unicode"

// classifyContext tracks which title rules have fired within one source
// deck. A fresh context is created per deck and discarded afterwards; it is
// never shared across items.
type classifyContext struct {
	titleSeen     bool
	capsTitleSeen bool
}

// classify decides whether a slide is a title slide. Rule 1: the first
// non-empty slide of a deck is its title. Rule 2: after that, the first
// all-caps slide is also a title. Each rule fires at most once per deck.
func (c *classifyContext) classify(text string) bool {
	if !c.titleSeen {
		c.titleSeen = true
		return true
	}
	if isAllCaps(text) && !c.capsTitleSeen {
		c.capsTitleSeen = true
		return true
	}
	return false
}

// isAllCaps reports whether text has at least one letter and no lowercase
// letter. Digits and punctuation alone do not qualify.
func isAllCaps(text string) bool {
	hasLetter := false
	for _, r := range text {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsLetter(r) {
			hasLetter = true
		}
	}
	return hasLetter
}
