package analytics

import (
	"fmt"
	"math"

	"finboard/internal/models"
)

// AlertSeverity grades exposure alerts.
type AlertSeverity string

const (
	SeverityCritical AlertSeverity = "critical"
	SeverityWarning  AlertSeverity = "warning"
	SeverityInfo     AlertSeverity = "info"
)

// ExposureAlert flags an allocation outside its recommended band.
type ExposureAlert struct {
	Type           models.AssetType `json:"type"`
	Severity       AlertSeverity    `json:"severity"`
	Message        string           `json:"message"`
	CurrentPercent float64          `json:"currentPercent"`
	Threshold      float64          `json:"threshold"`
}

// Alerts reports allocations breaching their configured min/max band.
// Overexposure past the max is a warning, or critical once more than 10
// points past it. Underexposure below the min is informational and only
// reported for types actually held. A type produces at most one alert, and
// types the user holds none of are never reported.
func Alerts(allocations []AssetAllocation) []ExposureAlert {
	total := totalValue(allocations)
	if total == 0 {
		return []ExposureAlert{}
	}

	alerts := []ExposureAlert{}

	for i := range allocations {
		band, ok := TargetAllocation[allocations[i].Type]
		if !ok {
			continue
		}

		currentPercent := allocations[i].TotalValue / total * 100

		if currentPercent > band.Max {
			severity := SeverityWarning
			if currentPercent > band.Max+10 {
				severity = SeverityCritical
			}
			alerts = append(alerts, ExposureAlert{
				Type:           allocations[i].Type,
				Severity:       severity,
				Message:        fmt.Sprintf("%s represents %.1f%% of the portfolio (recommended max: %.0f%%)", band.Label, currentPercent, band.Max),
				CurrentPercent: math.Round(currentPercent*10) / 10,
				Threshold:      band.Max,
			})
			continue
		}

		if currentPercent < band.Min && allocations[i].TotalValue > 0 {
			alerts = append(alerts, ExposureAlert{
				Type:           allocations[i].Type,
				Severity:       SeverityInfo,
				Message:        fmt.Sprintf("%s underrepresented at %.1f%% (recommended min: %.0f%%)", band.Label, currentPercent, band.Min),
				CurrentPercent: math.Round(currentPercent*10) / 10,
				Threshold:      band.Min,
			})
		}
	}

	return alerts
}
