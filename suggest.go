package weathericon

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// Suggest returns the table label closest to label, or "" when none is
// within the edit-distance limit for that label's length. Comparison ignores
// case and surrounding whitespace. Ties go to the earlier entry.
//
// Suggest is advisory only. It does not change what Resolve matches.
func (t *Table) Suggest(label string) string {
	in := strings.ToLower(strings.TrimSpace(label))
	if in == "" {
		return ""
	}

	best, bestDist := "", -1
	for _, e := range t.entries {
		cand := strings.ToLower(e.Label)
		dist := levenshtein.ComputeDistance(in, cand)
		if dist > distanceLimit(len(cand)) {
			continue
		}
		if bestDist < 0 || dist < bestDist {
			best, bestDist = e.Label, dist
		}
	}
	return best
}

func distanceLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
