// File: services/intent/extractor.go
package intent

import (
	"strings"
	"time"

	"flywise/models"
)

// Extractor is the deterministic slot-extraction layer: city fuzzy matching,
// date/passenger/selection/detail parsing, SSR keyword scanning and the
// affirmative/negative classifiers. It holds the city reference data and is
// safe for concurrent use once built.
type Extractor struct {
	cities     []models.CityRecord
	candidates []cityCandidate
	byIATA     map[string]models.CityRecord

	// now is injectable so date roll-forward rules are testable.
	now func() time.Time
}

// cityCandidate maps one matchable surface form (name, code or alias) back
// to its underlying city record.
type cityCandidate struct {
	text string
	iata string
}

// NewExtractor builds an extractor over the given city reference data.
func NewExtractor(cities []models.CityRecord) *Extractor {
	e := &Extractor{
		cities: cities,
		byIATA: make(map[string]models.CityRecord, len(cities)),
		now:    time.Now,
	}
	for _, city := range cities {
		e.byIATA[strings.ToUpper(city.IATA)] = city

		e.candidates = append(e.candidates, cityCandidate{text: strings.ToLower(city.Name), iata: city.IATA})
		e.candidates = append(e.candidates, cityCandidate{text: strings.ToLower(city.IATA), iata: city.IATA})
		for _, alias := range city.Aliases {
			e.candidates = append(e.candidates, cityCandidate{text: strings.ToLower(alias), iata: city.IATA})
		}
	}
	return e
}

// CityByIATA resolves a canonical city record from its IATA code.
func (e *Extractor) CityByIATA(code string) (models.CityRecord, bool) {
	city, ok := e.byIATA[strings.ToUpper(code)]
	return city, ok
}

// Cities returns the underlying reference data.
func (e *Extractor) Cities() []models.CityRecord {
	return e.cities
}
