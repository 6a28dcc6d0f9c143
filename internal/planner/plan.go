// Package planner turns a weight-loss goal into a safety-bounded daily
// calorie target and macronutrient split.
package planner

import (
	"fmt"
	"math"

	"lg/bmi-checker-go/internal/metrics"
)

// Policy constants. They are fixed on purpose and have no configuration
// surface.
const (
	KcalPerKg        = 7700 // energy in 1 kg of body fat
	MaxSafeDeficit   = 1000 // kcal/day
	MinDailyCalories = 1200 // kcal/day
)

// Outcome tags which kind of plan was produced.
type Outcome string

const (
	// OutcomeNoChange: target is not below current mass; only Message is set.
	OutcomeNoChange Outcome = "no_change"
	// OutcomeOK: a plan with no warnings.
	OutcomeOK Outcome = "ok"
	// OutcomeWarnings: a plan with at least one clamp warning.
	OutcomeWarnings Outcome = "warnings"
)

// Warning codes.
const (
	WarnDeficitClamped = "deficit_clamped"
	WarnBelowMinIntake = "below_min_intake"
)

// Warning is an advisory attached to a plan.
type Warning struct {
	Code    string `json:"code" yaml:"code"`
	Message string `json:"message" yaml:"message"`
}

// Request is the input to PlanWeightChange. Masses are kilograms, TDEE is
// kcal/day and Days is the requested timeframe.
type Request struct {
	CurrentKg float64
	TargetKg  float64
	TDEE      int
	Days      int
	Sex       metrics.Sex
}

// Plan is the result of one planning call. Numeric fields are zero when
// Outcome is OutcomeNoChange.
type Plan struct {
	Outcome                Outcome     `json:"outcome" yaml:"outcome"`
	Message                string      `json:"message,omitempty" yaml:"message,omitempty"`
	Sex                    metrics.Sex `json:"sex" yaml:"sex"`
	KgToLose               float64     `json:"kg_to_lose" yaml:"kg_to_lose"`
	TotalKcalNeeded        int         `json:"total_kcal_needed" yaml:"total_kcal_needed"`
	DailyDeficit           int         `json:"daily_deficit" yaml:"daily_deficit"`
	SuggestedDailyCalories int         `json:"suggested_daily_calories" yaml:"suggested_daily_calories"`
	Warnings               []Warning   `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	WeeklyLossKg           float64     `json:"weekly_loss_kg" yaml:"weekly_loss_kg"`
	EstimatedWeeks         float64     `json:"estimated_weeks" yaml:"estimated_weeks"`
}

// HasPlan reports whether the plan carries deficit figures.
func (p Plan) HasPlan() bool { return p.Outcome != OutcomeNoChange }

// PlanWeightChange computes a daily calorie target that removes
// (current - target) kg of fat over req.Days days.
//
// The daily deficit is capped at MaxSafeDeficit, in which case the timeframe
// is stretched to what the cap allows. The suggested intake never goes below
// MinDailyCalories. Each cap adds its own warning; both may fire.
func PlanWeightChange(req Request) Plan {
	kgToLose := req.CurrentKg - req.TargetKg
	if kgToLose <= 0 {
		return Plan{
			Outcome: OutcomeNoChange,
			Message: "Target weight is not less than current weight. No calorie deficit needed.",
			Sex:     req.Sex,
		}
	}

	totalKcal := kgToLose * KcalPerKg
	deficit := totalKcal / float64(max(req.Days, 1))
	weeks := float64(req.Days) / 7

	var warnings []Warning
	if deficit > MaxSafeDeficit {
		deficit = MaxSafeDeficit
		weeks = totalKcal / (deficit * 7)
		warnings = append(warnings, Warning{
			Code: WarnDeficitClamped,
			Message: fmt.Sprintf("Required deficit exceeds common safety recommendations; using max safe deficit of %d kcal/day. "+
				"Consider a longer timeframe or consult a professional.", MaxSafeDeficit),
		})
	}

	suggested := float64(req.TDEE) - deficit
	if suggested < MinDailyCalories {
		suggested = MinDailyCalories
		warnings = append(warnings, Warning{
			Code: WarnBelowMinIntake,
			Message: fmt.Sprintf("Calculated intake would fall below minimum recommended calories (%d kcal/day). "+
				"Use caution and consult a professional.", MinDailyCalories),
		})
	}

	outcome := OutcomeOK
	if len(warnings) > 0 {
		outcome = OutcomeWarnings
	}

	// Round, not truncate: (85.3-80)*7700 is 40809.99999999998 in float64.
	return Plan{
		Outcome:                outcome,
		Sex:                    req.Sex,
		KgToLose:               roundTo(kgToLose, 2),
		TotalKcalNeeded:        int(math.Round(totalKcal)),
		DailyDeficit:           int(math.Round(deficit)),
		SuggestedDailyCalories: int(math.Round(suggested)),
		Warnings:               warnings,
		WeeklyLossKg:           roundTo(deficit*7/KcalPerKg, 3),
		EstimatedWeeks:         roundTo(weeks, 1),
	}
}

// DaysFromWeeks converts a timeframe in weeks to whole days, rounding half to
// even, with a minimum of one day.
func DaysFromWeeks(weeks float64) int {
	return max(1, int(math.RoundToEven(weeks*7)))
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
