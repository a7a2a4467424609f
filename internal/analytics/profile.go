package analytics

import "math"

var riskScores = map[string]float64{
	"conservative":    20,
	"moderate":        50,
	"aggressive":      75,
	"very_aggressive": 95,
}

var horizonScores = map[string]float64{
	"short":     15,
	"medium":    40,
	"long":      70,
	"very_long": 90,
}

var experienceScores = map[string]float64{
	"beginner":     20,
	"intermediate": 50,
	"advanced":     75,
	"expert":       95,
}

// ProfileScore computes the investor profile score in [0,100] as a weighted
// sum of the questionnaire answers (risk 40%, horizon 30%, experience 30%).
// Unrecognized values count as 50 in their term.
func ProfileScore(riskTolerance, investmentHorizon, experience string) int {
	return int(math.Round(
		lookupScore(riskScores, riskTolerance)*0.4 +
			lookupScore(horizonScores, investmentHorizon)*0.3 +
			lookupScore(experienceScores, experience)*0.3,
	))
}

func lookupScore(table map[string]float64, key string) float64 {
	if v, ok := table[key]; ok {
		return v
	}
	return 50
}
