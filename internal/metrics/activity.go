package metrics

// ActivityLevel is one of the five fixed habitual-exercise tiers.
type ActivityLevel struct {
	Key          string  // menu key, "1".."5"
	Name         string  // short identifier, e.g. "moderate"
	Label        string  // description shown to the user
	Multiplier   float64 // applied to BMR to get TDEE
	ProteinPerKg float64 // grams of protein per kg of body mass
}

// activityLevels is the single source of truth for the tiers, in menu order.
// The numbers are fixed policy and must not be tuned.
var activityLevels = []ActivityLevel{
	{Key: "1", Name: "sedentary", Label: "sedentary (little or no exercise)", Multiplier: 1.2, ProteinPerKg: 1.6},
	{Key: "2", Name: "light", Label: "lightly active (light exercise 1-3 days/week)", Multiplier: 1.375, ProteinPerKg: 1.6},
	{Key: "3", Name: "moderate", Label: "moderately active (moderate exercise 3-5 days/week)", Multiplier: 1.55, ProteinPerKg: 1.8},
	{Key: "4", Name: "active", Label: "very active (hard exercise 6-7 days/week)", Multiplier: 1.725, ProteinPerKg: 2.0},
	{Key: "5", Name: "very_active", Label: "extra active (very hard exercise / physical job)", Multiplier: 1.9, ProteinPerKg: 2.2},
}

// DefaultActivityKey is used whenever a key is missing or unknown.
const DefaultActivityKey = "1"

// ActivityLevels returns the tiers in menu order. The slice is a copy.
func ActivityLevels() []ActivityLevel {
	out := make([]ActivityLevel, len(activityLevels))
	copy(out, activityLevels)
	return out
}

// LookupActivity finds a tier by menu key ("3") or name ("moderate").
func LookupActivity(key string) (ActivityLevel, bool) {
	for _, a := range activityLevels {
		if a.Key == key || a.Name == key {
			return a, true
		}
	}
	return ActivityLevel{}, false
}

// ActivityOrDefault is LookupActivity with a silent fallback to the
// sedentary tier.
func ActivityOrDefault(key string) ActivityLevel {
	if a, ok := LookupActivity(key); ok {
		return a
	}
	return activityLevels[0]
}
