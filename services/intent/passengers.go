package intent

import (
	"regexp"
	"strings"
)

// PassengerCounts is the parsed passenger mix of one utterance.
type PassengerCounts struct {
	Adults   int
	Children int
	Infants  int
}

// Total returns the combined count across categories.
func (c PassengerCounts) Total() int {
	return c.Adults + c.Children + c.Infants
}

var (
	adultPattern  = regexp.MustCompile(`(\d+)\s*adult`)
	childPattern  = regexp.MustCompile(`(\d+)\s*child`)
	infantPattern = regexp.MustCompile(`(\d+)\s*infant`)
	groupPattern  = regexp.MustCompile(`(\d+)\s*(?:passenger|people|pax|traveller|traveler|ticket)`)
	leadingNumber = regexp.MustCompile(`\b(\d+)\b`)
	soloPhrases   = []string{"just me", "only me", "myself", "travelling alone", "traveling alone", "solo"}
	// Ordered so the lowest word wins when an utterance carries several.
	smallNumberWords = []struct {
		word  string
		count int
	}{
		{"one", 1},
		{"two", 2},
		{"three", 3},
		{"four", 4},
	}
)

// ExtractPassengerCounts parses the passenger mix from free text. Precedence
// is fixed and deterministic: explicit category patterns ("2 adults",
// "1 child") win; then solo-travel phrases force exactly one adult; then a
// bare leading number up to 9 is read as the adult count; finally the small
// number words one..four are tried. A later rule never overrides an earlier
// successful one. ok is false when nothing matched.
func (e *Extractor) ExtractPassengerCounts(message string) (PassengerCounts, bool) {
	lower := strings.ToLower(message)
	var counts PassengerCounts
	matched := false

	if m := adultPattern.FindStringSubmatch(lower); m != nil {
		counts.Adults = atoiSafe(m[1])
		matched = true
	}
	if m := childPattern.FindStringSubmatch(lower); m != nil {
		counts.Children = atoiSafe(m[1])
		matched = true
	}
	if m := infantPattern.FindStringSubmatch(lower); m != nil {
		counts.Infants = atoiSafe(m[1])
		matched = true
	}
	if !matched {
		if m := groupPattern.FindStringSubmatch(lower); m != nil {
			// Unqualified headcounts are assumed to be adults.
			counts.Adults = atoiSafe(m[1])
			matched = true
		}
	}
	if matched {
		return counts, true
	}

	for _, phrase := range soloPhrases {
		if strings.Contains(lower, phrase) {
			return PassengerCounts{Adults: 1}, true
		}
	}

	if m := leadingNumber.FindStringSubmatch(lower); m != nil {
		if n := atoiSafe(m[1]); n >= 1 && n <= 9 {
			return PassengerCounts{Adults: n}, true
		}
	}

	for _, nw := range smallNumberWords {
		if containsWord(lower, nw.word) {
			return PassengerCounts{Adults: nw.count}, true
		}
	}

	return PassengerCounts{}, false
}

func containsWord(text, word string) bool {
	for _, w := range wordPattern.FindAllString(text, -1) {
		if w == word {
			return true
		}
	}
	return false
}
