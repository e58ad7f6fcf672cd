package text

import (
	"math"
	"sort"
	"strings"

	"github.com/tsawler/salvage/model"
)

// lineBreakThreshold is the vertical distance, in document-space units, that
// separates two runs onto different lines.
const lineBreakThreshold = 5.0

// Reconstruct turns an unordered set of text runs for one page into a single
// string with line breaks at line boundaries. Runs are ordered top-to-bottom
// by vertical position, ties broken left-to-right; a new line starts whenever
// the vertical distance from the previous run exceeds lineBreakThreshold.
// Empty runs are skipped. Runs carrying malformed positions fall back to
// plain concatenation in encounter order; Reconstruct never fails.
func Reconstruct(runs []model.TextRun) string {
	if len(runs) == 0 {
		return ""
	}

	if hasMalformedPositions(runs) {
		return Concatenate(runs)
	}

	sorted := make([]model.TextRun, len(runs))
	copy(sorted, runs)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Y != sorted[j].Y {
			return sorted[i].Y > sorted[j].Y
		}
		return sorted[i].X < sorted[j].X
	})

	var b strings.Builder
	started := false
	var lastY float64
	for _, run := range sorted {
		content := strings.TrimSpace(run.Content)
		if content == "" {
			continue
		}
		if started {
			if math.Abs(run.Y-lastY) > lineBreakThreshold {
				b.WriteByte('\n')
			} else {
				b.WriteByte(' ')
			}
		}
		b.WriteString(content)
		lastY = run.Y
		started = true
	}
	return b.String()
}

// Concatenate joins the non-empty run contents in encounter order, separated
// by single spaces. No positional reasoning is applied.
func Concatenate(runs []model.TextRun) string {
	var b strings.Builder
	for _, run := range runs {
		content := strings.TrimSpace(run.Content)
		if content == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(content)
	}
	return b.String()
}

// hasMalformedPositions reports whether any run carries a coordinate that
// would break positional ordering.
func hasMalformedPositions(runs []model.TextRun) bool {
	for _, run := range runs {
		if math.IsNaN(run.X) || math.IsNaN(run.Y) || math.IsInf(run.X, 0) || math.IsInf(run.Y, 0) {
			return true
		}
	}
	return false
}
