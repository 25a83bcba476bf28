package intent

import "strings"

var affirmativeWords = []string{
	"yes", "ok", "okay", "sure", "confirm", "proceed", "book it", "go ahead",
}

var negativeWords = []string{
	"no", "cancel", "stop", "quit", "exit", "abort",
}

var bookingKeywords = []string{
	"book flight", "flight booking", "book a flight", "reserve flight",
	"travel", "fly to", "going to", "trip to", "want to fly",
	"need flight", "flight ticket", "air ticket", "airline",
	"flight search", "find flight", "check flight",
}

var travelWords = []string{"to", "from", "flight", "fly", "travel", "trip"}

var resetPhrases = []string{
	"i need to book flight", "i want to book flight", "book me a flight",
	"i need another flight", "i want another flight", "book another flight",
	"new booking", "fresh booking", "start over",
	"book flight", "i need flight", "i want flight",
}

func matchesAny(lower string, phrases []string) bool {
	for _, phrase := range phrases {
		if strings.Contains(phrase, " ") {
			if strings.Contains(lower, phrase) {
				return true
			}
			continue
		}
		if containsWord(lower, phrase) {
			return true
		}
	}
	return false
}

// IsAffirmative reports whether the message confirms the pending action.
func IsAffirmative(message string) bool {
	return matchesAny(strings.ToLower(strings.TrimSpace(message)), affirmativeWords)
}

// IsNegative reports whether the message declines or aborts the pending action.
func IsNegative(message string) bool {
	return matchesAny(strings.ToLower(strings.TrimSpace(message)), negativeWords)
}

// HasBookingIntent reports whether free text looks like the start of a flight
// booking request. A known city mentioned alongside a travel word counts even
// without an explicit booking keyword.
func (e *Extractor) HasBookingIntent(message string) bool {
	lower := strings.ToLower(message)
	for _, kw := range bookingKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	if len(e.ExtractCities(message)) > 0 {
		for _, word := range travelWords {
			if containsWord(lower, word) {
				return true
			}
		}
	}
	return false
}

// HasResetIntent reports whether the message asks to abandon the finished
// conversation and start a new booking.
func HasResetIntent(message string) bool {
	lower := strings.ToLower(strings.TrimSpace(message))
	for _, phrase := range resetPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}
