package models

// CityRecord is an immutable reference-data entry for a city the inventory serves.
type CityRecord struct {
	Name    string   `json:"name"`
	IATA    string   `json:"iata"`
	Aliases []string `json:"aliases,omitempty"`
}
