package salvage

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/salvage/model"
)

// rawTextMinLength is the minimum cleaned length for raw bytes to count as
// usable text rather than noise.
const rawTextMinLength = 200

// rawFallback is the last-resort tier. It interprets the raw bytes as text,
// strips everything non-printable, and returns the result if it is long
// enough and not itself container syntax. Otherwise it synthesizes a
// placeholder page describing the failure. It never fails: the caller always
// receives a single displayable page.
func (s *Service) rawFallback(data []byte, filename string) []model.Page {
	cleaned := sanitize(string(data))
	if len(cleaned) > rawTextMinLength &&
		!strings.Contains(cleaned, "%PDF-") &&
		!strings.Contains(cleaned, "endobj") {
		return []model.Page{{Text: cleaned, Number: 1}}
	}

	return []model.Page{{Text: placeholder(filename, int64(len(data))), Number: 1}}
}

// sanitize normalizes text and strips characters outside basic printable
// ASCII plus newline and tab, then trims.
func sanitize(s string) string {
	s = norm.NFC.String(s)
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r == '\n' || r == '\t' || (r >= 0x20 && r <= 0x7E) {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

// placeholder builds the fixed-format substitute document returned when no
// tier could produce text.
func placeholder(filename string, size int64) string {
	return fmt.Sprintf(`Unable to extract text from %s (%s).

No readable text could be recovered from this document. It may use an
unsupported encoding, contain scanned images instead of selectable text, or
be protected.`, filename, humanSize(size))
}

// humanSize formats a byte count for humans.
func humanSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for x := n / unit; x >= unit; x /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(n)/float64(div), "KMGTPE"[exp])
}
