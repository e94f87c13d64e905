package breeds

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
)

//go:embed dogbreeds.json
var dataset embed.FS

// Profile holds the reference data for a single breed: the age cutoffs for
// the puppy/adult/senior bands, the recommended walk time for each band and
// the gender-specific overweight thresholds.
type Profile struct {
	Breed            string  `json:"Breed"`
	PuppyAge         int     `json:"Puppy_Age"`
	AdultAge         int     `json:"Adult_Age"`
	PuppyWalkTime    int     `json:"Puppy_Walk_Time(Min)"`
	AdultWalkTime    int     `json:"Adult_Walk_Time(Min)"`
	SeniorWalkTime   int     `json:"Senior_Walk_Time(Min)"`
	OverweightMale   float64 `json:"Overweight_Male(lbs)"`
	OverweightFemale float64 `json:"Overweight_Female(lbs)"`
}

// Table is the breed reference table. It is immutable after Load and safe
// for concurrent reads.
type Table struct {
	profiles map[string]Profile
}

// Load parses the bundled breed dataset. It is called once at startup.
func Load() (*Table, error) {
	data, err := dataset.ReadFile("dogbreeds.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read breed dataset: %w", err)
	}
	return Parse(data)
}

// Parse builds a table from raw JSON. Split out from Load so tests can feed
// their own datasets.
func Parse(data []byte) (*Table, error) {
	var entries []Profile
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse breed dataset: %w", err)
	}

	profiles := make(map[string]Profile, len(entries))
	for _, p := range entries {
		profiles[strings.ToLower(p.Breed)] = p
	}

	return &Table{profiles: profiles}, nil
}

// Lookup finds a breed profile by name. The match is case-insensitive and
// exact; a miss returns ok=false, never an error.
func (t *Table) Lookup(breed string) (Profile, bool) {
	p, ok := t.profiles[strings.ToLower(strings.TrimSpace(breed))]
	return p, ok
}

// Len returns the number of breeds in the table.
func (t *Table) Len() int {
	return len(t.profiles)
}
