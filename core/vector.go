package core

import "math"

// Norm returns the L2 norm of a vector.
func Norm(v []float64) float64 {
	var sum float64
	for _, val := range v {
		sum += val * val
	}
	return math.Sqrt(sum)
}

// Normalize normalizes a vector to unit length.
// Returns a new vector. If the input is a zero vector, returns a zero vector.
func Normalize(v []float64) []float64 {
	if len(v) == 0 {
		return v
	}

	magnitude := Norm(v)

	// Can't normalize zero vector
	if magnitude == 0 {
		result := make([]float64, len(v))
		return result
	}

	result := make([]float64, len(v))
	for i, val := range v {
		result[i] = val / magnitude
	}
	return result
}

// ValidateVector checks that every element is finite.
// Returns ErrInvalidFeatureValue wrapped with the offending index otherwise.
func ValidateVector(v []float64) error {
	for i, val := range v {
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return invalidValueError(i, val)
		}
	}
	return nil
}
