package quantity

import "strings"

// Mass is a body mass in kilograms, rounded to 2 decimal places.
type Mass float64

// Kilograms returns the mass as a plain float64.
func (m Mass) Kilograms() float64 { return float64(m) }

// ParseMass accepts "70", "70 kg", "70kg", "154 lb", "154lbs" and returns
// kilograms. A missing unit means kilograms. The unit is recognised by its
// first letter only: k… is kilograms, l… is pounds.
func ParseMass(raw string) (Mass, error) {
	s := normalize(raw)
	if s == "" {
		return 0, parseErr(DimensionMass, raw, ErrEmptyInput)
	}

	pairs, ok := tokenize(s)
	if !ok || len(pairs) != 1 {
		return 0, parseErr(DimensionMass, raw, ErrUnparseable)
	}
	p := pairs[0]

	var kg float64
	switch {
	case p.unit == "" || strings.HasPrefix(p.unit, "k"):
		kg = p.value
	case strings.HasPrefix(p.unit, "l"):
		kg = p.value * KilogramsPerPound
	default:
		return 0, parseErr(DimensionMass, raw, ErrUnknownUnit)
	}

	// Checked after rounding: "0.004 kg" rounds to zero.
	kg = round(kg, 2)
	if kg <= 0 {
		return 0, parseErr(DimensionMass, raw, ErrNonPositive)
	}
	return Mass(kg), nil
}
