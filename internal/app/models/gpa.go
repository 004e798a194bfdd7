package models

import "strconv"

// GPAResult is the outcome of a GPA calculation. All three fields are always
// present together.
type GPAResult struct {
	GPA             float64 `json:"gpa"`
	WeightedAverage float64 `json:"weightedAverage"`
	TotalCredits    float64 `json:"totalCredits"`
}

// FormatNumber prints a number without trailing zeros (3 -> "3", 3.5 -> "3.5").
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
