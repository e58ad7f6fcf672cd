package decoder

import (
	"math"

	"github.com/tsawler/salvage/model"
)

// baselineTolerance is the maximum vertical distance between two text items
// still considered to share a baseline.
const baselineTolerance = 0.5

// combineAdjacent merges consecutive runs that share a baseline and advance
// rightward into single runs. Decoders emit word- or character-level items;
// merging them reduces run count and keeps line reconstruction cheap. The
// merged run keeps the position of its first item.
func combineAdjacent(runs []model.TextRun) []model.TextRun {
	if len(runs) < 2 {
		return runs
	}

	combined := make([]model.TextRun, 0, len(runs))
	current := runs[0]
	for _, next := range runs[1:] {
		if math.Abs(next.Y-current.Y) <= baselineTolerance && next.X >= current.X {
			current.Content += next.Content
			continue
		}
		combined = append(combined, current)
		current = next
	}
	combined = append(combined, current)
	return combined
}
