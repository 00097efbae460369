package user

import (
	"errors"
	"math"
)

var (
	ErrMissingMeasurements = errors.New("height and weight must be positive")
	ErrImplausible         = errors.New("height/weight out of plausible range")
)

// BMIReport is the body of GET /users/:id/bmi.
type BMIReport struct {
	UserID   int     `json:"userId"`
	Height   float64 `json:"height"`
	Weight   float64 `json:"weight"`
	BMI      float64 `json:"bmi"`
	Category string  `json:"category"`
}

// CalculateBMI expects height in centimeters and weight in kilograms. The
// result is rounded to two decimals.
func CalculateBMI(heightCm, weightKg float64) (float64, error) {
	if heightCm <= 0 || weightKg <= 0 {
		return 0, ErrMissingMeasurements
	}
	if heightCm < 50 || heightCm > 250 || weightKg < 10 || weightKg > 400 {
		return 0, ErrImplausible
	}

	h := heightCm / 100.0
	bmi := weightKg / (h * h)
	return math.Round(bmi*100) / 100, nil
}

func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25.0:
		return "Normal weight"
	case bmi < 30.0:
		return "Overweight"
	case bmi < 35.0:
		return "Obesity class I"
	case bmi < 40.0:
		return "Obesity class II"
	default:
		return "Obesity class III"
	}
}
