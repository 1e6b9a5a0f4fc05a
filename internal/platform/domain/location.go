package domain

// Location lookup tables consumed read-only by registration and filter
// forms. Seeded at bootstrap, managed out of band.

type State struct {
	ID     string
	Name   string
	NameTE string // Telugu display name
}

type District struct {
	ID      string
	StateID string
	Name    string
	NameTE  string
}

type Constituency struct {
	ID         string
	DistrictID string
	Name       string
}
