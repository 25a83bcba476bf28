package intent

import "strings"

// SSRPreference is one detected special-service request category/preference
// pair, prior to SSR code resolution.
type SSRPreference struct {
	Category   string
	Preference string
}

var mealKeywords = []struct {
	keyword    string
	preference string
}{
	{"vegetarian", "vegetarian"},
	{"veg", "vegetarian"},
	{"vegan", "vegan"},
	{"halal", "halal"},
	{"kosher", "kosher"},
	{"diabetic", "diabetic"},
	{"child meal", "child"},
}

// ExtractSSRRequests scans free text for special-service keywords across the
// meal, seat, assistance and baggage categories. Multiple requests may come
// out of a single utterance; none is also a valid outcome.
func (e *Extractor) ExtractSSRRequests(message string) []SSRPreference {
	lower := strings.ToLower(message)
	var requests []SSRPreference
	have := make(map[SSRPreference]bool)

	add := func(category, preference string) {
		pref := SSRPreference{Category: category, Preference: preference}
		if !have[pref] {
			have[pref] = true
			requests = append(requests, pref)
		}
	}

	for _, meal := range mealKeywords {
		if meal.keyword == "veg" {
			// "veg" alone, not as a prefix of an already matched keyword.
			if containsWord(lower, "veg") {
				add("meal", meal.preference)
			}
			continue
		}
		if strings.Contains(lower, meal.keyword) {
			add("meal", meal.preference)
		}
	}

	if strings.Contains(lower, "window") {
		add("seat", "window")
	} else if strings.Contains(lower, "aisle") {
		add("seat", "aisle")
	}
	if strings.Contains(lower, "legroom") {
		add("seat", "extra_legroom")
	}

	if strings.Contains(lower, "wheelchair") {
		add("assistance", "wheelchair")
	}

	if strings.Contains(lower, "extra baggage") || strings.Contains(lower, "additional baggage") {
		add("baggage", "extra")
	}
	if strings.Contains(lower, "sports equipment") || strings.Contains(lower, "golf bag") {
		add("baggage", "sports")
	}

	return requests
}
