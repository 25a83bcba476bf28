package models

// NLU intents.
const (
	IntentBooking = "flight_booking"
	IntentOther   = "other"
)

// NLUSlots is the snapshot of already-collected booking slots sent to the
// oracle so it only asks for what is still missing.
type NLUSlots struct {
	SourceCity      string `json:"source_city,omitempty"`
	DestinationCity string `json:"destination_city,omitempty"`
	DepartureDate   string `json:"departure_date,omitempty"`
	Adults          int    `json:"adults"`
	Children        int    `json:"children"`
	Infants         int    `json:"infants"`
}

// NLUExtracted holds the fields the oracle pulled out of one utterance.
// City fields carry raw surface text; canonical resolution stays with the
// deterministic city matcher.
type NLUExtracted struct {
	SourceCity      string `json:"source_city,omitempty"`
	DestinationCity string `json:"destination_city,omitempty"`
	DepartureDate   string `json:"departure_date,omitempty"`
	Adults          int    `json:"adults,omitempty"`
	Children        int    `json:"children,omitempty"`
	Infants         int    `json:"infants,omitempty"`
}

// NLUAnalysis is the normalized oracle response for one utterance.
type NLUAnalysis struct {
	Intent       string       `json:"intent"`
	Extracted    NLUExtracted `json:"extracted_data"`
	Confidence   float64      `json:"confidence"`
	NextQuestion string       `json:"next_question"`
	Reasoning    string       `json:"reasoning"`
}
