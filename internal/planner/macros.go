package planner

import (
	"math"

	"lg/bmi-checker-go/internal/metrics"
)

// FatFraction is the share of daily calories assigned to fat.
const FatFraction = 0.28

const (
	kcalPerGramProtein = 4
	kcalPerGramCarb    = 4
	kcalPerGramFat     = 9
)

// Macros is a daily macronutrient split in grams and kilocalories.
type Macros struct {
	ProteinG    int `json:"protein_g" yaml:"protein_g"`
	FatG        int `json:"fat_g" yaml:"fat_g"`
	CarbG       int `json:"carb_g" yaml:"carb_g"`
	ProteinKcal int `json:"protein_kcal" yaml:"protein_kcal"`
	FatKcal     int `json:"fat_kcal" yaml:"fat_kcal"`
	CarbKcal    int `json:"carb_kcal" yaml:"carb_kcal"`
}

// RecommendMacros splits dailyKcal into protein, fat and carbohydrate.
//
// Protein is the tier's g/kg coefficient times body mass (unknown tiers use
// the sedentary coefficient). Fat is FatFraction of the calories. Carbs take
// whatever is left, never less than zero.
func RecommendMacros(dailyKcal int, massKg float64, activityKey string) Macros {
	level := metrics.ActivityOrDefault(activityKey)

	proteinG := int(math.RoundToEven(level.ProteinPerKg * massKg))
	proteinKcal := proteinG * kcalPerGramProtein

	fatKcal := float64(dailyKcal) * FatFraction
	fatG := int(math.RoundToEven(fatKcal / kcalPerGramFat))

	carbKcal := float64(dailyKcal) - (float64(proteinKcal) + fatKcal)
	carbKcal = math.Max(carbKcal, 0)
	carbG := int(math.RoundToEven(carbKcal / kcalPerGramCarb))

	return Macros{
		ProteinG:    proteinG,
		FatG:        fatG,
		CarbG:       carbG,
		ProteinKcal: proteinKcal,
		FatKcal:     int(math.Round(fatKcal)),
		CarbKcal:    int(math.Round(carbKcal)),
	}
}
