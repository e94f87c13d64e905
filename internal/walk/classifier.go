package walk

import (
	"strconv"
	"strings"

	"github.com/minseokang/walkmate/internal/breeds"
	"github.com/minseokang/walkmate/internal/domain"
)

// FallbackWalkMinutes is returned when a breed is not in the reference table.
const FallbackWalkMinutes = 20

// WeightStatus classifies a dog's weight against its breed thresholds.
type WeightStatus string

const (
	WeightUnknown    WeightStatus = "Unknown"
	WeightNormal     WeightStatus = "Normal"
	WeightOverweight WeightStatus = "Overweight"
)

// RecommendedWalkMinutes returns the recommended daily walk duration for a
// breed and age. Age arrives as a raw form value; anything non-numeric counts
// as 0 so a bad field lands in the puppy band instead of failing.
func RecommendedWalkMinutes(table *breeds.Table, breed, age string) int {
	p, ok := table.Lookup(breed)
	if !ok {
		return FallbackWalkMinutes
	}

	years := coerceInt(age)
	switch {
	case years < p.PuppyAge:
		return p.PuppyWalkTime
	case years <= p.AdultAge:
		return p.AdultWalkTime
	default:
		return p.SeniorWalkTime
	}
}

// ClassifyWeight compares a dog's weight against the gender-specific
// overweight threshold for its breed. The boundary is inclusive: exactly at
// the threshold is Overweight. An unknown breed, an unparseable weight or a
// gender without a threshold yields Unknown rather than an error.
func ClassifyWeight(table *breeds.Table, breed string, gender domain.Gender, weight string) WeightStatus {
	p, ok := table.Lookup(breed)
	if !ok {
		return WeightUnknown
	}

	lbs, ok := coerceFloat(weight)
	if !ok {
		return WeightUnknown
	}

	var threshold float64
	switch gender {
	case domain.GenderMale:
		threshold = p.OverweightMale
	case domain.GenderFemale:
		threshold = p.OverweightFemale
	default:
		return WeightUnknown
	}

	if lbs >= threshold {
		return WeightOverweight
	}
	return WeightNormal
}

func coerceInt(s string) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < 0 {
		return 0
	}
	return v
}

func coerceFloat(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}
