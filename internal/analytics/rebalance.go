package analytics

import (
	"fmt"
	"math"
	"sort"

	"finboard/internal/models"
)

// RebalanceAction indicates the direction of a suggested adjustment.
type RebalanceAction string

const (
	ActionReduce   RebalanceAction = "reduce"
	ActionIncrease RebalanceAction = "increase"
)

// Priority buckets for rebalancing suggestions.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// RebalanceSuggestion advises moving an asset type toward its target share.
type RebalanceSuggestion struct {
	AssetType      models.AssetType `json:"assetType"`
	CurrentPercent float64          `json:"currentPercent"`
	TargetPercent  float64          `json:"targetPercent"`
	Action         RebalanceAction  `json:"action"`
	Label          string           `json:"label"`
	Description    string           `json:"description"`
	Priority       Priority         `json:"priority"`
}

var priorityOrder = map[Priority]int{
	PriorityHigh:   0,
	PriorityMedium: 1,
	PriorityLow:    2,
}

// Suggest emits a rebalancing suggestion for every allocation whose share
// deviates from its target by more than 5 percentage points. Results are
// sorted high priority first; ties keep encounter order. Types without a
// target table entry are skipped.
func Suggest(allocations []AssetAllocation) []RebalanceSuggestion {
	total := totalValue(allocations)
	if total == 0 {
		return []RebalanceSuggestion{}
	}

	suggestions := []RebalanceSuggestion{}

	for i := range allocations {
		band, ok := TargetAllocation[allocations[i].Type]
		if !ok {
			continue
		}

		currentPercent := allocations[i].TotalValue / total * 100
		diff := currentPercent - band.Target

		if math.Abs(diff) <= 5 {
			continue
		}

		action := ActionIncrease
		if diff > 0 {
			action = ActionReduce
		}

		priority := PriorityLow
		switch {
		case math.Abs(diff) > 15:
			priority = PriorityHigh
		case math.Abs(diff) > 10:
			priority = PriorityMedium
		}

		var description string
		if action == ActionReduce {
			description = fmt.Sprintf("%s overweight at %.0f%% -> reduce to %.0f%%", band.Label, currentPercent, band.Target)
		} else {
			description = fmt.Sprintf("%s underweight at %.0f%% -> increase to %.0f%%", band.Label, currentPercent, band.Target)
		}

		suggestions = append(suggestions, RebalanceSuggestion{
			AssetType:      allocations[i].Type,
			CurrentPercent: math.Round(currentPercent*10) / 10,
			TargetPercent:  band.Target,
			Action:         action,
			Label:          band.Label,
			Description:    description,
			Priority:       priority,
		})
	}

	sort.SliceStable(suggestions, func(a, b int) bool {
		return priorityOrder[suggestions[a].Priority] < priorityOrder[suggestions[b].Priority]
	})

	return suggestions
}
