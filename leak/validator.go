package leak

import "regexp"

// minMeaningfulLength is the minimum candidate length worth validating.
const minMeaningfulLength = 10

// minWordTokens is the number of word-like tokens a meaningful text must exceed.
const minWordTokens = 5

// wordToken matches runs of 3 or more consecutive alphabetic characters.
var wordToken = regexp.MustCompile(`[A-Za-z]{3,}`)

// IsMeaningful reports whether text looks like usable prose: at least 10
// characters long with more than 5 word-like tokens. It filters near-empty
// and purely symbolic or numeric extractions, nothing stricter.
func IsMeaningful(text string) bool {
	if len(text) < minMeaningfulLength {
		return false
	}
	return len(wordToken.FindAllString(text, minWordTokens+1)) > minWordTokens
}
