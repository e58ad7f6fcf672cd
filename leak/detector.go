package leak

import (
	"regexp"
	"strings"
)

// markers are literal tokens characteristic of raw PDF container syntax.
// A clean extraction of ordinary prose contains at most a few of these by
// coincidence; a leaked object stream contains most of them.
var markers = [...]string{
	"%PDF-",
	"endobj",
	"startxref",
	"xref",
	"<<",
	">>",
	"stream",
	"endstream",
	"/Filter",
	"/Length",
}

// minDistinctMarkers is the number of distinct container markers that must be
// present before the text is considered suspect at all.
const minDistinctMarkers = 5

// maxNonReadableRatio is the fraction of non-printable characters above which
// marker-dense text is classified as a leak.
const maxNonReadableRatio = 0.5

// minResidueRatio is the minimum fraction of the text that must remain after
// stripping container tokens for the text to count as readable content.
const minResidueRatio = 0.15

// residuePatterns strip container-syntax tokens when computing the readable
// residue of a candidate text. Order matters only in that longer tokens are
// removed before their substrings.
var residuePatterns = []*regexp.Regexp{
	regexp.MustCompile(`%PDF-[0-9.]*`),
	regexp.MustCompile(`\bendstream\b`),
	regexp.MustCompile(`\bendobj\b`),
	regexp.MustCompile(`\bstartxref\b`),
	regexp.MustCompile(`\bxref\b`),
	regexp.MustCompile(`\bstream\b`),
	regexp.MustCompile(`\bobj\b`),
	regexp.MustCompile(`<<|>>`),
	regexp.MustCompile(`/[A-Za-z0-9]+`),
	regexp.MustCompile(`\b\d+\s+\d+\b`),
	regexp.MustCompile(`\s+`),
}

// IsStructureLeak reports whether text is raw container syntax that escaped
// the decoder rather than human-readable content. Text containing fewer than
// 5 distinct container markers is always clean. Marker-dense text is a leak
// when either independent test fires:
//
//  1. more than half of the characters fall outside the printable range, or
//  2. after stripping all container-like tokens, less than 15% of the original
//     text remains.
func IsStructureLeak(text string) bool {
	if countDistinctMarkers(text) < minDistinctMarkers {
		return false
	}

	if nonReadableRatio(text) > maxNonReadableRatio {
		return true
	}

	return readableResidueRatio(text) < minResidueRatio
}

// countDistinctMarkers counts how many distinct container markers occur in text.
func countDistinctMarkers(text string) int {
	count := 0
	for _, m := range markers {
		if strings.Contains(text, m) {
			count++
		}
	}
	return count
}

// nonReadableRatio returns the fraction of characters outside printable ASCII
// plus common whitespace.
func nonReadableRatio(text string) float64 {
	total := 0
	nonReadable := 0
	for _, r := range text {
		total++
		if r == '\n' || r == '\r' || r == '\t' || (r >= 0x20 && r <= 0x7E) {
			continue
		}
		nonReadable++
	}
	if total == 0 {
		return 0
	}
	return float64(nonReadable) / float64(total)
}

// readableResidueRatio strips container-like tokens from text and returns the
// ratio of the remaining length to the original length.
func readableResidueRatio(text string) float64 {
	stripped := text
	for _, pat := range residuePatterns {
		stripped = pat.ReplaceAllString(stripped, "")
	}
	return float64(len(stripped)) / float64(len(text))
}
