package intent

import (
	"strings"

	"flywise/models"
)

// ExtractPassengerDetails parses one passenger record from a comma-separated
// line: "Full Name, Date of Birth, Passport Number, Nationality". The name
// must contain at least two tokens and the date of birth must parse; any
// violation rejects the whole record so partial passengers are never stored.
func (e *Extractor) ExtractPassengerDetails(message string) (models.Passenger, bool) {
	parts := strings.Split(message, ",")
	if len(parts) < 4 {
		return models.Passenger{}, false
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	nameParts := strings.Fields(parts[0])
	if len(nameParts) < 2 {
		return models.Passenger{}, false
	}

	dob, ok := ParseLenientDate(parts[1])
	if !ok {
		return models.Passenger{}, false
	}

	if parts[2] == "" || parts[3] == "" {
		return models.Passenger{}, false
	}

	return models.Passenger{
		FirstName:      nameParts[0],
		LastName:       strings.Join(nameParts[1:], " "),
		DateOfBirth:    dob.Format("2006-01-02"),
		PassportNumber: parts[2],
		Nationality:    parts[3],
	}, true
}
