// Package quantity turns loosely formatted weight and height strings into
// canonical metric values.
//
// Both parsers share one grammar: after normalisation the input is split by
// pairPattern into (number, unit-word) pairs, optionally separated by
// whitespace. The number is `123`, `123.`, `123.45` or `.45`; the unit word is
// a run of lower-case letters and may be empty. Everything between pairs must
// be whitespace. Each parser then decides which pair lists it accepts.
package quantity

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Conversion factors.
const (
	KilogramsPerPound   = 0.45359237
	CentimetresPerFoot  = 30.48
	CentimetresPerInch  = 2.54
	CentimetresPerMetre = 100.0
)

// MetresThreshold: a lone unit-less height below this is read as metres.
const MetresThreshold = 3.0

var pairPattern = regexp.MustCompile(`(\d+(?:\.\d*)?|\.\d+)\s*([a-z]*)`)

type pair struct {
	value float64
	unit  string
}

// tokenize splits s into pairs. ok is false when anything other than
// whitespace appears between pairs, or when two numbers touch ("1.2.3").
func tokenize(s string) (pairs []pair, ok bool) {
	last := 0
	glued := false
	for _, m := range pairPattern.FindAllStringSubmatchIndex(s, -1) {
		gap := s[last:m[0]]
		if strings.TrimSpace(gap) != "" || (glued && gap == "") {
			return nil, false
		}
		v, err := strconv.ParseFloat(s[m[2]:m[3]], 64)
		if err != nil {
			return nil, false
		}
		unit := s[m[4]:m[5]]
		pairs = append(pairs, pair{value: v, unit: unit})
		// A bare number that consumed no trailing space must not be
		// immediately followed by another number.
		glued = unit == "" && m[1] == m[3]
		last = m[1]
	}
	if len(pairs) == 0 || strings.TrimSpace(s[last:]) != "" {
		return nil, false
	}
	return pairs, true
}

// normalize lower-cases, trims and accepts a comma as decimal separator.
func normalize(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	return strings.ReplaceAll(s, ",", ".")
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
