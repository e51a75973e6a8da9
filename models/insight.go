package models

// Insight is the structured result of a neighborhood lookup for one listing.
type Insight struct {
	Pitch        string   `json:"pitch"`
	NearbyPoints []string `json:"nearbyPoints"`
	Vibe         string   `json:"vibe"`
	Sources      []Source `json:"sources"`
}

type Source struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

// SmartCriteria is what the smart-search extraction returns. All fields are
// optional; a zero value means the query said nothing about it.
type SmartCriteria struct {
	Type      string  `json:"type,omitempty"`
	MaxBudget float64 `json:"maxBudget,omitempty"`
	Area      string  `json:"area,omitempty"`
}
