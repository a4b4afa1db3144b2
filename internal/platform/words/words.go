package words

import "strings"

// Count reports the number of whitespace-separated words in text.
func Count(text string) int {
	return len(strings.Fields(text))
}
