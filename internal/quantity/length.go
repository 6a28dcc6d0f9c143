package quantity

import "strings"

// Length is a body height in centimetres, rounded to 1 decimal place.
// No plausibility range is enforced.
type Length float64

// Centimetres returns the length as a plain float64.
func (l Length) Centimetres() float64 { return float64(l) }

type lengthUnit int

const (
	unitNone lengthUnit = iota
	unitCentimetre
	unitMetre
	unitFoot
	unitInch
)

var lengthUnits = map[string]lengthUnit{
	"":            unitNone,
	"cm":          unitCentimetre,
	"cms":         unitCentimetre,
	"centimeter":  unitCentimetre,
	"centimeters": unitCentimetre,
	"centimetre":  unitCentimetre,
	"centimetres": unitCentimetre,
	"m":           unitMetre,
	"meter":       unitMetre,
	"meters":      unitMetre,
	"metre":       unitMetre,
	"metres":      unitMetre,
	"ft":          unitFoot,
	"foot":        unitFoot,
	"feet":        unitFoot,
	"in":          unitInch,
	"inch":        unitInch,
	"inches":      unitInch,
}

// quoteReplacer turns the feet/inch quote marks into unit words so that
// 5'9" tokenizes like "5 ft 9 in".
var quoteReplacer = strings.NewReplacer(`"`, " in ", `'`, " ft ")

// ParseLength accepts heights such as "170", "170 cm", "1.75", "1.75 m",
// "5 ft 9 in", `5'9"`, "5ft9in" and "5 9", and returns centimetres.
//
// A single number without a unit is metres when below MetresThreshold and
// centimetres otherwise, so "1.75" and "175" both give 175.0. In feet/inch
// forms each magnitude is the number directly before its unit word and
// inches default to 0. With no unit words at all, two or more numbers are
// read as feet then inches.
func ParseLength(raw string) (Length, error) {
	s := quoteReplacer.Replace(normalize(raw))
	if strings.TrimSpace(s) == "" {
		return 0, parseErr(DimensionLength, raw, ErrEmptyInput)
	}

	pairs, ok := tokenize(s)
	if !ok {
		return 0, parseErr(DimensionLength, raw, ErrUnparseable)
	}

	units := make([]lengthUnit, len(pairs))
	for i, p := range pairs {
		u, known := lengthUnits[p.unit]
		if !known {
			return 0, parseErr(DimensionLength, raw, ErrUnknownUnit)
		}
		units[i] = u
	}

	cm, ok := resolveLength(pairs, units)
	if !ok {
		return 0, parseErr(DimensionLength, raw, ErrUnparseable)
	}
	cm = round(cm, 1)
	if cm <= 0 {
		return 0, parseErr(DimensionLength, raw, ErrNonPositive)
	}
	return Length(cm), nil
}

func resolveLength(pairs []pair, units []lengthUnit) (float64, bool) {
	if len(pairs) == 1 {
		v := pairs[0].value
		switch units[0] {
		case unitNone:
			if v < MetresThreshold {
				return v * CentimetresPerMetre, true
			}
			return v, true
		case unitCentimetre:
			return v, true
		case unitMetre:
			return v * CentimetresPerMetre, true
		}
	}

	var (
		feet, inches       float64
		haveFeet, haveInch bool
		bare               []float64
	)
	for i, p := range pairs {
		switch units[i] {
		case unitFoot:
			if haveFeet {
				return 0, false
			}
			feet, haveFeet = p.value, true
		case unitInch:
			if haveInch {
				return 0, false
			}
			inches, haveInch = p.value, true
		case unitNone:
			bare = append(bare, p.value)
		default:
			// cm or m mixed with other tokens
			return 0, false
		}
	}

	switch {
	case haveFeet:
		return feet*CentimetresPerFoot + inches*CentimetresPerInch, true
	case haveInch:
		return 0, false
	case len(bare) >= 2:
		return bare[0]*CentimetresPerFoot + bare[1]*CentimetresPerInch, true
	}
	return 0, false
}
