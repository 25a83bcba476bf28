package intent

import (
	"regexp"
	"strings"
)

var (
	optionPattern     = regexp.MustCompile(`option\s*(\d+)`)
	bareNumberPattern = regexp.MustCompile(`^(\d+)$`)
)

// ordinalWords in lookup order; "first" must not shadow "twenty-first"
// because selections only go up to five options anyway.
var ordinalWords = []struct {
	word  string
	index int
}{
	{"first", 1}, {"1st", 1},
	{"second", 2}, {"2nd", 2},
	{"third", 3}, {"3rd", 3},
	{"fourth", 4}, {"4th", 4},
	{"fifth", 5}, {"5th", 5},
}

// ExtractSelection parses a flight option choice and returns its 1-based
// index. Accepted forms: "option N", a bare integer, or an ordinal word or
// abbreviation up to fifth.
func (e *Extractor) ExtractSelection(message string) (int, bool) {
	lower := strings.ToLower(strings.TrimSpace(message))

	if m := optionPattern.FindStringSubmatch(lower); m != nil {
		return atoiSafe(m[1]), true
	}
	if m := bareNumberPattern.FindStringSubmatch(lower); m != nil {
		return atoiSafe(m[1]), true
	}
	for _, ord := range ordinalWords {
		if strings.Contains(lower, ord.word) {
			return ord.index, true
		}
	}
	return 0, false
}
