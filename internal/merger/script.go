package merger

import "strings"

const titleKeyword = "TITLE:"

// scriptRecord is one logical slide group parsed from a text script: an
// optional title line plus the verse lines that follow it.
type scriptRecord struct {
	title string
	body  []string
}

func (r scriptRecord) empty() bool {
	return r.title == "" && len(r.body) == 0
}

// parseScript applies the line grammar: a line starting with TITLE:
// (case-insensitive) begins a new record, a blank line ends the current
// verse block, anything else is a verse line. A title with no verse lines
// yet survives blank lines, so "TITLE: X" followed by a blank and then
// verses still parses as one record. Records with no content are dropped,
// so stray keywords and extra blank lines degrade harmlessly.
func parseScript(data []byte) []scriptRecord {
	var records []scriptRecord
	var cur scriptRecord

	flush := func() {
		if !cur.empty() {
			records = append(records, cur)
		}
		cur = scriptRecord{}
	}

	for _, line := range strings.Split(string(data), "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case len(trimmed) >= len(titleKeyword) && strings.EqualFold(trimmed[:len(titleKeyword)], titleKeyword):
			flush()
			cur.title = stripQuotes(strings.TrimSpace(trimmed[len(titleKeyword):]))
		case trimmed == "":
			if len(cur.body) > 0 {
				flush()
			}
		default:
			cur.body = append(cur.body, trimmed)
		}
	}
	flush()

	return records
}

// stripQuotes removes one matching pair of surrounding double quotes.
func stripQuotes(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}
