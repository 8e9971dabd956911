// Package wx holds the grammar shared by the METAR and TAF decoders:
// the tokenizer, the per-token field parsers (wind, visibility, weather
// phenomena, cloud layers) and the Russian phrase tables used to render
// decoded fields.
package wx

import "strings"

const remarksDelimiter = " RMK "

// SplitRemarks separates the free-text remarks section from the main body
// of a report. The delimiter is the first " RMK " at a word boundary; a
// report that merely ends in "RMK" yields empty remarks. Always succeeds.
func SplitRemarks(raw string) (body, remarks string) {
	s := strings.TrimSpace(raw)
	padded := " " + s + " "
	if idx := strings.Index(padded, remarksDelimiter); idx >= 0 {
		body = strings.TrimSpace(padded[:idx])
		remarks = strings.TrimSpace(padded[idx+len(remarksDelimiter):])
		return body, remarks
	}
	return s, ""
}

// Tokenize splits a report section into whitespace-delimited tokens,
// preserving their order. No token is merged or reordered; an empty input
// yields an empty token sequence.
func Tokenize(s string) []string {
	return strings.Fields(s)
}
