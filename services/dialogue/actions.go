package dialogue

import "strings"

// TicketAction is a post-upload request classified from free text while a
// parsed ticket is in context.
type TicketAction string

const (
	ActionNone          TicketAction = ""
	ActionComparePrices TicketAction = "compare_prices"
	ActionSearchSimilar TicketAction = "search_similar"
	ActionNewBooking    TicketAction = "new_booking"
	ActionBookExact     TicketAction = "book_exact"
	ActionBookBetter    TicketAction = "book_better_price"
)

// Price vocabulary comes first: it overlaps heavily with generic flight
// wording, so checking it later would misroute questions like
// "how much does it cost" into a flight search.
var actionRules = []struct {
	action  TicketAction
	phrases []string
}{
	{ActionComparePrices, []string{
		"compare price", "price comparison", "show price", "check price",
		"what about price", "tell me price", "price detail", "price difference",
		"how much", "what is the price", "what's the price", "compare with",
		"cost", "fare", "rate",
	}},
	{ActionSearchSimilar, []string{
		"similar flight", "search similar", "find similar", "other flight",
		"alternative flight", "more option", "other option", "what else",
	}},
	{ActionNewBooking, []string{
		"new booking", "different route", "another route", "book different",
		"fresh booking", "start over",
	}},
	{ActionBookExact, []string{
		"book this flight", "book same flight", "book the same", "book exact",
		"rebook this", "book it as is",
	}},
	{ActionBookBetter, []string{
		"book with new price", "book with better price", "book at your price",
		"better price", "book with your price", "go ahead", "proceed",
		"book it", "book now", "yes book",
	}},
}

// ClassifyTicketAction maps free text to a post-upload action. Rules are
// checked in fixed priority order; the first phrase hit wins, and no hit
// lets the caller fall through to default handling.
func ClassifyTicketAction(message string) TicketAction {
	lower := strings.ToLower(strings.TrimSpace(message))
	for _, rule := range actionRules {
		for _, phrase := range rule.phrases {
			if strings.Contains(lower, phrase) {
				return rule.action
			}
		}
	}
	return ActionNone
}
