package models

// Counters holds the next id for each collection. Ids are monotonic
// and never reused, even after deletes.
type Counters struct {
	Users         int `json:"users"`
	Foods         int `json:"foods"`
	Drinks        int `json:"drinks"`
	Announcements int `json:"announcements"`
}
