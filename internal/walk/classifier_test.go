package walk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minseokang/walkmate/internal/breeds"
	"github.com/minseokang/walkmate/internal/domain"
)

const testDataset = `[
  {
    "Breed": "Labrador Retriever",
    "Puppy_Age": 1,
    "Adult_Age": 7,
    "Puppy_Walk_Time(Min)": 20,
    "Adult_Walk_Time(Min)": 60,
    "Senior_Walk_Time(Min)": 30,
    "Overweight_Male(lbs)": 80,
    "Overweight_Female(lbs)": 70
  },
  {
    "Breed": "Great Dane",
    "Puppy_Age": 2,
    "Adult_Age": 5,
    "Puppy_Walk_Time(Min)": 15,
    "Adult_Walk_Time(Min)": 45,
    "Senior_Walk_Time(Min)": 20,
    "Overweight_Male(lbs)": 175,
    "Overweight_Female(lbs)": 140
  }
]`

func testTable(t *testing.T) *breeds.Table {
	t.Helper()
	table, err := breeds.Parse([]byte(testDataset))
	require.NoError(t, err)
	return table
}

func TestRecommendedWalkMinutesBands(t *testing.T) {
	table := testTable(t)

	tests := []struct {
		name  string
		breed string
		age   string
		want  int
	}{
		{"puppy below cutoff", "Labrador Retriever", "0", 20},
		{"adult at lower bound", "Labrador Retriever", "1", 60},
		{"adult mid band", "Labrador Retriever", "4", 60},
		{"adult at upper bound inclusive", "Labrador Retriever", "7", 60},
		{"senior above cutoff", "Labrador Retriever", "8", 30},
		{"giant breed puppy", "Great Dane", "1", 15},
		{"giant breed senior", "Great Dane", "6", 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RecommendedWalkMinutes(table, tt.breed, tt.age))
		})
	}
}

func TestRecommendedWalkMinutesCaseInsensitive(t *testing.T) {
	table := testTable(t)

	assert.Equal(t,
		RecommendedWalkMinutes(table, "Labrador Retriever", "4"),
		RecommendedWalkMinutes(table, "labrador retriever", "4"))
}

func TestRecommendedWalkMinutesUnknownBreedFallback(t *testing.T) {
	table := testTable(t)

	assert.Equal(t, FallbackWalkMinutes, RecommendedWalkMinutes(table, "Direwolf", "4"))
	assert.Equal(t, FallbackWalkMinutes, RecommendedWalkMinutes(table, "", "4"))
}

func TestRecommendedWalkMinutesNonNumericAge(t *testing.T) {
	table := testTable(t)

	// Non-numeric and negative ages coerce to 0, landing in the puppy band.
	assert.Equal(t, 20, RecommendedWalkMinutes(table, "Labrador Retriever", "N/A"))
	assert.Equal(t, 20, RecommendedWalkMinutes(table, "Labrador Retriever", ""))
	assert.Equal(t, 20, RecommendedWalkMinutes(table, "Labrador Retriever", "-3"))
}

func TestClassifyWeightThresholds(t *testing.T) {
	table := testTable(t)

	tests := []struct {
		name   string
		gender domain.Gender
		weight string
		want   WeightStatus
	}{
		{"male below threshold", domain.GenderMale, "79.9", WeightNormal},
		{"male exactly at threshold", domain.GenderMale, "80", WeightOverweight},
		{"male above threshold", domain.GenderMale, "90", WeightOverweight},
		{"female below male threshold but at female", domain.GenderFemale, "70", WeightOverweight},
		{"female below threshold", domain.GenderFemale, "69.5", WeightNormal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyWeight(table, "Labrador Retriever", tt.gender, tt.weight)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassifyWeightCaseInsensitiveBreed(t *testing.T) {
	table := testTable(t)

	assert.Equal(t,
		ClassifyWeight(table, "Labrador Retriever", domain.GenderMale, "85"),
		ClassifyWeight(table, "labrador retriever", domain.GenderMale, "85"))
}

func TestClassifyWeightUnknownCases(t *testing.T) {
	table := testTable(t)

	assert.Equal(t, WeightUnknown, ClassifyWeight(table, "Direwolf", domain.GenderMale, "80"))
	assert.Equal(t, WeightUnknown, ClassifyWeight(table, "Labrador Retriever", domain.GenderMale, "heavy"))
	assert.Equal(t, WeightUnknown, ClassifyWeight(table, "Labrador Retriever", domain.GenderMale, ""))
	assert.Equal(t, WeightUnknown, ClassifyWeight(table, "Labrador Retriever", "other", "80"))
}

func TestClassifierIsIdempotent(t *testing.T) {
	table := testTable(t)

	first := RecommendedWalkMinutes(table, "Great Dane", "3")
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, RecommendedWalkMinutes(table, "Great Dane", "3"))
	}
}
