package metrics

import (
	"math"
	"strings"
)

// Sex selects the Mifflin-St Jeor variant.
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
	SexOther  Sex = "other"
)

// ParseSex maps free text to a Sex by its first letter: m… is male, f… is
// female, anything else (including blank) is other.
func ParseSex(token string) Sex {
	s := strings.ToLower(strings.TrimSpace(token))
	switch {
	case strings.HasPrefix(s, "m"):
		return SexMale
	case strings.HasPrefix(s, "f"):
		return SexFemale
	default:
		return SexOther
	}
}

// BMR computes basal metabolic rate (kcal/day) via Mifflin-St Jeor: male adds
// 5, female subtracts 161. Any other sex gets the mean of the two.
func BMR(massKg, heightCm float64, ageYears int, sex Sex) float64 {
	base := 10*massKg + 6.25*heightCm - 5*float64(ageYears)
	male := base + 5
	female := base - 161
	switch sex {
	case SexMale:
		return male
	case SexFemale:
		return female
	default:
		return (male + female) / 2
	}
}

// TDEE scales bmr by the multiplier of activityKey and rounds to the nearest
// kcal, half to even. Unknown keys use the sedentary multiplier rather than
// failing.
func TDEE(bmr float64, activityKey string) int {
	return int(math.RoundToEven(bmr * ActivityOrDefault(activityKey).Multiplier))
}
