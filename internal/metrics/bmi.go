package metrics

import "math"

// Category is a BMI classification band.
type Category string

const (
	Underweight Category = "Underweight"
	Normal      Category = "Normal"
	Overweight  Category = "Overweight"
	Obesity     Category = "Obesity"
)

// BMI expects mass in kilograms and height in centimetres and rounds to one
// decimal place. Both inputs must already be positive.
func BMI(massKg, heightCm float64) float64 {
	h := heightCm / 100.0
	return math.Round(massKg/(h*h)*10) / 10
}

// Categorize uses half-open bands [18.5, 25) and [25, 30); 30 and above is
// Obesity.
func Categorize(bmi float64) Category {
	switch {
	case bmi < 18.5:
		return Underweight
	case bmi < 25.0:
		return Normal
	case bmi < 30.0:
		return Overweight
	default:
		return Obesity
	}
}

// Label is the user-facing name of the band.
func (c Category) Label() string {
	if c == Normal {
		return "Normal (healthy weight)"
	}
	return string(c)
}

// Advice is a one-sentence general suggestion for the category.
func (c Category) Advice() string {
	switch c {
	case Underweight:
		return "If underweight, focus on nutritious calorie-dense foods and consider a medical check-up."
	case Normal:
		return "Maintain balanced nutrition and regular activity to keep your healthy weight."
	case Overweight:
		return "A modest calorie deficit and increased activity can help. Aim for 0.5–1 kg per week."
	default:
		return "For BMI in the obesity range, consult a healthcare professional for a personalized plan."
	}
}
