// Package words counts whitespace-delimited words in review text.
package words

import (
	"strings"
)

// Count returns the number of whitespace-delimited non-empty tokens in
// text. Runs of any Unicode whitespace act as a single separator, so
// empty or all-whitespace input counts as zero words.
func Count(text string) int {
	return len(strings.Fields(text))
}

// CountValue counts words in a decoded JSON value. Anything that is not
// a string (nil, numbers, nested objects, ...) counts as zero words
// rather than failing, so callers can feed record fields straight in.
func CountValue(v any) int {
	s, ok := v.(string)
	if !ok {
		return 0
	}
	return Count(s)
}
