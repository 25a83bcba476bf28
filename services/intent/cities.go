package intent

import (
	"regexp"
	"strings"

	"flywise/models"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// cityMatchFloor is the minimum similarity (0-100) for a fuzzy city match.
const cityMatchFloor = 85

var (
	wordPattern = regexp.MustCompile(`\b\w+\b`)
	iataPattern = regexp.MustCompile(`\b[A-Z]{3}\b`)
)

// ExtractCities finds every distinct city mentioned in the message, in
// first-seen order. Tokens and adjacent token pairs are fuzzy-matched
// against canonical names, IATA codes and aliases; bare uppercase 3-letter
// tokens are additionally tried as exact IATA codes. Results are
// deduplicated by city identity, not by matched surface form.
func (e *Extractor) ExtractCities(message string) []models.CityRecord {
	var found []models.CityRecord
	seen := make(map[string]bool)

	add := func(iata string) {
		if seen[iata] {
			return
		}
		if city, ok := e.byIATA[strings.ToUpper(iata)]; ok {
			seen[iata] = true
			found = append(found, city)
		}
	}

	words := wordPattern.FindAllString(strings.ToLower(message), -1)
	for i, word := range words {
		// Short tokens produce too many false positives.
		if len(word) < 3 {
			continue
		}

		if iata, ok := e.bestMatch(word); ok {
			add(iata)
		}

		// Adjacent pairs catch multi-word names like "abu dhabi".
		if i < len(words)-1 {
			pair := word + " " + words[i+1]
			if len(pair) >= 6 {
				if iata, ok := e.bestMatch(pair); ok {
					add(iata)
				}
			}
		}
	}

	// Bare uppercase tokens are tried as codes directly, including ones the
	// fuzzy pass skipped.
	for _, code := range iataPattern.FindAllString(message, -1) {
		add(code)
	}

	return found
}

// bestMatch returns the IATA code of the closest candidate at or above the
// similarity floor.
func (e *Extractor) bestMatch(token string) (string, bool) {
	lev := metrics.NewLevenshtein()

	bestScore := 0
	bestIATA := ""
	for _, cand := range e.candidates {
		score := int(strutil.Similarity(token, cand.text, lev) * 100)
		if score > bestScore {
			bestScore = score
			bestIATA = cand.iata
		}
	}
	if bestScore >= cityMatchFloor {
		return bestIATA, true
	}
	return "", false
}
