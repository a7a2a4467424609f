package analytics

import "math"

// DiversificationScore rates how evenly the portfolio spreads across asset
// types, from 0 (fully concentrated or empty) to 100.
//
// The base score inverts the Herfindahl-Hirschman Index of the type shares,
// normalized so a perfectly even split over n types scores 100 and full
// concentration scores 0. A bonus of up to 15 points rewards holding many
// distinct types (full bonus at 5 or more).
func DiversificationScore(allocations []AssetAllocation) int {
	if len(allocations) == 0 {
		return 0
	}

	total := totalValue(allocations)
	if total == 0 {
		return 0
	}

	hhi := 0.0
	for i := range allocations {
		p := allocations[i].TotalValue / total
		hhi += p * p
	}

	n := float64(len(allocations))
	base := 0.0
	if n > 1 {
		// HHI ranges from 1/n (even split) to 1 (single type).
		base = (1 - hhi) / (1 - 1/n) * 100
	}
	// A single-type portfolio is minimal diversification: base stays 0.

	bonus := math.Min(n/5, 1) * 15
	score := base + bonus

	return int(math.Round(math.Max(0, math.Min(100, score))))
}
