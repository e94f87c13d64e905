package domain

import (
	"time"
)

// Gender of a dog. Only male and female carry overweight thresholds in the
// breed reference data.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Identity is the signed-in user as seen by the core: a stable unique id and
// a contact address. The display name on activity records is derived from the
// contact address.
type Identity struct {
	UID   string
	Email string
}

// Dog is a registered dog owned by a user. Age and weight keep the raw form
// values the owner entered; the classifier coerces them defensively. The core
// reads this entity but never mutates it.
type Dog struct {
	ID        uint
	OwnerUID  string
	Name      string
	Breed     string
	Gender    Gender
	Age       string
	Weight    string
	PhotoRef  string
	CreatedAt time.Time
}

// ActivityRecord is the persisted outcome of a saved walk session. The same
// record is written to the owner's private history and to the public
// leaderboard; the timestamp is assigned by the record store at write time.
type ActivityRecord struct {
	ID         uint
	OwnerUID   string
	Username   string
	DogName    string
	DogAge     string
	WalkedTime float64 // minutes, two-decimal rounding
	Steps      int
	PhotoRef   string
	Timestamp  time.Time
}
