package analytics

import (
	"math"

	"finboard/internal/models"
)

// AssetAllocation is the aggregated value of all assets of one type.
type AssetAllocation struct {
	Type       models.AssetType `json:"type"`
	TotalValue float64          `json:"totalValue"`
	Percentage float64          `json:"percentage"`
	Count      int              `json:"count"`
}

// Aggregate groups assets by type, summing current values and counting
// members. Percentages are relative to the grand total across all types,
// rounded to one decimal. When the grand total is zero all percentages are
// zero. No ordering is guaranteed; callers sort as needed.
func Aggregate(assets []models.Asset) []AssetAllocation {
	type bucket struct {
		value float64
		count int
	}

	buckets := make(map[models.AssetType]*bucket)
	order := make([]models.AssetType, 0, len(TargetAllocation))
	grandTotal := 0.0

	for i := range assets {
		value := assets[i].TotalValue()
		grandTotal += value

		b, ok := buckets[assets[i].Type]
		if !ok {
			b = &bucket{}
			buckets[assets[i].Type] = b
			order = append(order, assets[i].Type)
		}
		b.value += value
		b.count++
	}

	allocations := make([]AssetAllocation, 0, len(order))
	for _, t := range order {
		b := buckets[t]
		pct := 0.0
		if grandTotal > 0 {
			pct = math.Round(b.value/grandTotal*1000) / 10
		}
		allocations = append(allocations, AssetAllocation{
			Type:       t,
			TotalValue: b.value,
			Percentage: pct,
			Count:      b.count,
		})
	}

	return allocations
}

// totalValue sums allocation values.
func totalValue(allocations []AssetAllocation) float64 {
	total := 0.0
	for i := range allocations {
		total += allocations[i].TotalValue
	}
	return total
}
