// Package simulation computes deterministic compound-interest projections
// under three rate scenarios. All functions are pure; nothing is persisted.
package simulation

import (
	"math"

	apperrors "finboard/internal/errors"
)

// Params are the transient inputs of a projection.
type Params struct {
	InitialAmount       float64 `json:"initialAmount"`
	MonthlyContribution float64 `json:"monthlyContribution"`
	AnnualRate          float64 `json:"annualRate"`
	DurationYears       int     `json:"durationYears"`
}

// EchoedParams mirrors the validated inputs plus the derived scenario rates.
type EchoedParams struct {
	Params
	PessimisticRate float64 `json:"pessimisticRate"`
	OptimisticRate  float64 `json:"optimisticRate"`
}

// YearlyPoint holds the projected value of each scenario at one year mark.
// Contributions is the money-put-in baseline: the initial amount plus the
// plain sum of monthly contributions, without compounding.
type YearlyPoint struct {
	Year          int     `json:"year"`
	Pessimistic   float64 `json:"pessimistic"`
	Average       float64 `json:"average"`
	Optimistic    float64 `json:"optimistic"`
	Contributions float64 `json:"contributions"`
}

// Milestone holds scenario values and earned interest at a fixed year mark.
type Milestone struct {
	Years               int     `json:"years"`
	Pessimistic         float64 `json:"pessimistic"`
	Average             float64 `json:"average"`
	Optimistic          float64 `json:"optimistic"`
	TotalContributions  float64 `json:"totalContributions"`
	PessimisticInterest float64 `json:"pessimisticInterest"`
	AverageInterest     float64 `json:"averageInterest"`
	OptimisticInterest  float64 `json:"optimisticInterest"`
}

// ScenarioSummary holds the final-year outcome of one rate scenario.
type ScenarioSummary struct {
	FinalValue     float64 `json:"finalValue"`
	InterestEarned float64 `json:"interestEarned"`
	InterestRatio  float64 `json:"interestRatio"`
	Rate           float64 `json:"rate"`
}

// Summary aggregates the final-year outcomes of all three scenarios.
type Summary struct {
	TotalContributions float64         `json:"totalContributions"`
	Pessimistic        ScenarioSummary `json:"pessimistic"`
	Average            ScenarioSummary `json:"average"`
	Optimistic         ScenarioSummary `json:"optimistic"`
}

// Projection is the full output of a simulation run.
type Projection struct {
	YearlyData []YearlyPoint `json:"yearlyData"`
	Milestones []Milestone   `json:"milestones"`
	Summary    Summary       `json:"summary"`
	Params     EchoedParams  `json:"params"`
}

// milestoneYears are the fixed marks reported in the milestone table,
// filtered to the simulation duration. The exact duration is always included
// as the final milestone so the table agrees with the summary block.
var milestoneYears = []int{5, 10, 20, 30}

// MaxDurationYears bounds the simulation horizon.
const MaxDurationYears = 50

// Validate rejects out-of-range parameters. Values are never clamped.
func (p Params) Validate() error {
	if p.InitialAmount < 0 || p.MonthlyContribution < 0 || p.AnnualRate < 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidSimulation, "Parameters must not be negative")
	}
	if p.DurationYears < 1 {
		return apperrors.WithMessage(apperrors.ErrInvalidSimulation, "Duration must be at least 1 year")
	}
	if p.DurationYears > MaxDurationYears {
		return apperrors.WithMessage(apperrors.ErrInvalidSimulation, "Duration cannot exceed 50 years")
	}
	return nil
}

// FutureValue computes the monthly-compounded future value of a present
// value plus a recurring monthly contribution:
//
//	FV = PV(1+r)^n + PMT[((1+r)^n - 1)/r]
//
// where r is the monthly rate and n the number of months. A zero rate
// degenerates to the plain sum, with no floating-point drift.
func FutureValue(pv, pmt, annualRate float64, years int) float64 {
	monthlyRate := annualRate / 100 / 12
	months := float64(years * 12)

	if monthlyRate == 0 {
		return pv + pmt*months
	}

	compound := math.Pow(1+monthlyRate, months)
	return pv*compound + pmt*((compound-1)/monthlyRate)
}

// Project runs the projection for the given parameters. Three scenarios are
// always computed: pessimistic (rate - 3, floored at 0), average, and
// optimistic (rate + 3). Monetary outputs are rounded to whole units;
// interest ratios to two decimals.
func Project(params Params) (*Projection, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	pessimisticRate := math.Max(0, params.AnnualRate-3)
	optimisticRate := params.AnnualRate + 3

	scenarios := func(years int) (p, a, o float64) {
		p = math.Round(FutureValue(params.InitialAmount, params.MonthlyContribution, pessimisticRate, years))
		a = math.Round(FutureValue(params.InitialAmount, params.MonthlyContribution, params.AnnualRate, years))
		o = math.Round(FutureValue(params.InitialAmount, params.MonthlyContribution, optimisticRate, years))
		return
	}
	contributions := func(years int) float64 {
		return params.InitialAmount + params.MonthlyContribution*12*float64(years)
	}

	yearlyData := make([]YearlyPoint, 0, params.DurationYears+1)
	for year := 0; year <= params.DurationYears; year++ {
		p, a, o := scenarios(year)
		yearlyData = append(yearlyData, YearlyPoint{
			Year:          year,
			Pessimistic:   p,
			Average:       a,
			Optimistic:    o,
			Contributions: contributions(year),
		})
	}

	milestones := []Milestone{}
	for _, years := range withFinalYear(milestoneYears, params.DurationYears) {
		p, a, o := scenarios(years)
		total := math.Round(contributions(years))
		milestones = append(milestones, Milestone{
			Years:               years,
			Pessimistic:         p,
			Average:             a,
			Optimistic:          o,
			TotalContributions:  total,
			PessimisticInterest: p - total,
			AverageInterest:     a - total,
			OptimisticInterest:  o - total,
		})
	}

	totalContributions := contributions(params.DurationYears)
	finalP, finalA, finalO := scenarios(params.DurationYears)

	summarize := func(finalValue, rate float64) ScenarioSummary {
		interest := finalValue - totalContributions
		ratio := 0.0
		if totalContributions > 0 {
			ratio = math.Round(interest/totalContributions*10000) / 100
		}
		return ScenarioSummary{
			FinalValue:     finalValue,
			InterestEarned: interest,
			InterestRatio:  ratio,
			Rate:           rate,
		}
	}

	return &Projection{
		YearlyData: yearlyData,
		Milestones: milestones,
		Summary: Summary{
			TotalContributions: math.Round(totalContributions),
			Pessimistic:        summarize(finalP, pessimisticRate),
			Average:            summarize(finalA, params.AnnualRate),
			Optimistic:         summarize(finalO, optimisticRate),
		},
		Params: EchoedParams{
			Params:          params,
			PessimisticRate: pessimisticRate,
			OptimisticRate:  optimisticRate,
		},
	}, nil
}

// withFinalYear filters the fixed milestone marks to the duration and
// appends the duration itself when it is not already one of them.
func withFinalYear(marks []int, duration int) []int {
	years := make([]int, 0, len(marks)+1)
	for _, y := range marks {
		if y <= duration {
			years = append(years, y)
		}
	}
	if len(years) == 0 || years[len(years)-1] != duration {
		years = append(years, duration)
	}
	return years
}
