package dialogue

import (
	"fmt"
	"strings"

	"flywise/models"
)

const welcomeMessage = `✈️ *Welcome to Flight Booking Assistant!*

I can help you book flights quickly and easily. To get started, just tell me:

*Examples:*
• "I want to book a flight"
• "Flight to Dubai"
• "Book flight from Delhi to Mumbai tomorrow"

*What can I help you with today?* 🛫`

const askSourceMessage = "🛫 *Great! Let's book your flight.*\n\n*Which city are you flying from?*"

const retrySourceMessage = `🏙️ I couldn't find that city. Please provide a valid departure city.

*Examples:* Delhi, Mumbai, Bangalore, Hyderabad, Chennai

*Which city are you flying from?*`

const retryDestinationMessage = `🏙️ I couldn't find that city. Please provide a valid destination city.

*Examples:* Dubai, London, Singapore, Bangkok

*Where would you like to fly to?*`

const sameCityMessage = "🤔 Source and destination cannot be the same. Please choose a different destination city."

const retryDateMessage = `📅 I couldn't understand the date. Please provide your travel date.

*Examples:*
• "July 15"
• "15/07/2025"
• "Tomorrow"
• "Next week"

*When would you like to travel?*`

const askPassengersMessage = "👥 *How many passengers will be traveling?*"

const retryPassengersMessage = `👥 Please tell me how many passengers will be traveling.

*Examples:*
• "1 adult"
• "2 adults"
• "2 adults and 1 child"
• "Just me"

*How many passengers?*`

const tooManyPassengersMessage = "👥 Maximum 9 passengers allowed per booking. Please reduce the number of passengers."

const passengerDetailsRetryMessage = `❌ Invalid format. Please provide passenger details in this format:

*Full Name, Date of Birth, Passport Number, Nationality*

*Example:*
John Doe, 10-May-1990, A1234567, Indian

*Please try again:*`

const askSSRMessage = `✅ *All passenger details saved!*

🍽️ *Special Requests (Optional):*
Do you have any special requests for your flight?

*Examples:*
• "Vegetarian meal and window seat"
• "Wheelchair assistance"
• "Extra baggage"
• "No special requests"

*Any special requests?*`

const confirmRetryMessage = `Please confirm your booking:

• Type "*yes*" or "*confirm*" to proceed with booking
• Type "*no*" or "*cancel*" to cancel

*Would you like to proceed?*`

const bookingCancelledMessage = "❌ *Booking Cancelled*\n\nNo worries! Feel free to start a new search anytime. Just say 'book flight' when you're ready. ✈️"

const bookingFailedMessage = "❌ *Booking Failed*\n\nSorry, there was an issue processing your booking. Please try again or contact support."

const completedIdleMessage = `✈️ *How can I help you today?*

• Type "*book flight*" to start a new booking
• Type "*help*" for assistance

*What would you like to do?*`

const turnFailedMessage = "❌ Something went wrong. Please tell me about your travel plans again."

const askOfficeIDMessage = `🏢 *Corporate Booking*

Great! I'll book this route at our best available price.

Please provide your *office ID* to complete the booking.

*Example:* CORP-MUMBAI-001`

const retryOfficeIDMessage = `❌ That doesn't look like a valid office ID.

Office IDs are 4-20 characters of letters, digits and dashes.

*Example:* CORP-MUMBAI-001

*Please enter your office ID:*`

func askDestinationMessage(sourceCity string) string {
	return fmt.Sprintf("🛬 *Flying from %s.*\n\n*Where would you like to go?*", sourceCity)
}

func askDateMessage(destinationCity string) string {
	return fmt.Sprintf("📅 *Flying to %s.*\n\n*When would you like to travel?*", destinationCity)
}

func noFlightsMessage(source, destination, date string) string {
	return fmt.Sprintf(`❌ *No flights found*

Sorry, no flights available from %s to %s on %s.

*Try:*
• Different dates
• Different destinations
• Or tell me about alternative travel plans`, source, destination, date)
}

func noRouteMessage(source, destination string, alternatives []string) string {
	return fmt.Sprintf(`❌ No flights available from %s to %s.

*Available destinations from %s:*
%s

*Please choose one of these destinations:*`, source, destination, source, strings.Join(alternatives, ", "))
}

func flightSelectedMessage(f models.Flight, adults int) string {
	if adults <= 1 {
		return fmt.Sprintf(`✅ *Flight Selected:* %s %s

👤 *Passenger Details Required:*
Please provide passenger information in this format:
*Full Name, Date of Birth, Passport Number, Nationality*

*Example:*
John Doe, 10-May-1990, A1234567, Indian

*Please enter passenger details:*`, f.Airline, f.FlightID)
	}
	return fmt.Sprintf(`✅ *Flight Selected:* %s %s

👥 *Passenger Details Required (%d passengers):*
Please provide details for passenger 1 in this format:
*Full Name, Date of Birth, Passport Number, Nationality*

*Example:*
John Doe, 10-May-1990, A1234567, Indian

*Passenger 1 details:*`, f.Airline, f.FlightID, adults)
}

func invalidSelectionMessage(optionCount int) string {
	return fmt.Sprintf(`❌ Invalid selection. Please choose a number between 1 and %d.

*Example:* Type "*1*" to select the first option.

*Which flight would you like to select?*`, optionCount)
}

func nextPassengerMessage(saved, next int) string {
	return fmt.Sprintf(`✅ *Passenger %d details saved!*

👤 *Please provide details for passenger %d:*
*Full Name, Date of Birth, Passport Number, Nationality*

*Passenger %d details:*`, saved, next, next)
}

func humanSupportMessage(reference string) string {
	return fmt.Sprintf(`🆘 *Need Human Assistance*

I'm having trouble understanding your request. Let me connect you with our support team.

*Your support ticket ID: #%s*

Meanwhile, you can:
• Try rephrasing your request
• Type "*help*" for assistance
• Type "*book flight*" to start over

Our team will contact you shortly! 📞`, reference)
}

func bookingSummaryMessage(session *models.ConversationSession) string {
	data := session.Data
	f := data.SelectedFlight

	var passengerSummary string
	if len(data.Passengers) == 1 {
		p := data.Passengers[0]
		passengerSummary = fmt.Sprintf("👤 *Passenger:* %s %s", p.FirstName, p.LastName)
	} else {
		var names []string
		for _, p := range data.Passengers {
			names = append(names, fmt.Sprintf("• %s %s", p.FirstName, p.LastName))
		}
		passengerSummary = "👥 *Passengers:*\n" + strings.Join(names, "\n")
	}

	ssrSummary := ""
	if len(data.SpecialRequests) > 0 {
		var lines []string
		for _, ssr := range data.SpecialRequests {
			lines = append(lines, "• "+ssr.Description)
		}
		ssrSummary = "\n\n🍽️ *Special Requests:*\n" + strings.Join(lines, "\n")
	}

	return fmt.Sprintf(`📋 *BOOKING SUMMARY*

✈️ *Flight:* %s %s
🛫 *Route:* %s → %s
📅 *Date:* %s
🕐 *Time:* %s - %s
💰 *Total Price:* ₹%s

%s%s

*Please confirm your booking:*
• Type "*yes*" or "*confirm*" to proceed
• Type "*no*" or "*cancel*" to cancel

*Proceed with booking?*`,
		f.Airline, f.FlightID,
		data.SourceCity.Name, data.DestinationCity.Name,
		data.DepartureDate,
		f.DepartureTime, f.ArrivalTime,
		models.FormatAmount(f.Price),
		passengerSummary, ssrSummary)
}

func priceComparisonMessage(ticket *models.TicketDetails, comparison *models.PriceComparison) string {
	if comparison == nil || !comparison.Available {
		var sb strings.Builder
		sb.WriteString("📊 *Price Comparison*\n\nWe couldn't compare prices for this route.\n")
		if comparison != nil && comparison.Suggestion != "" {
			sb.WriteString("\n" + comparison.Suggestion + "\n")
			sb.WriteString("\n*We fly from:* " + strings.Join(comparison.AvailableOrigins, ", "))
			sb.WriteString("\n*Popular destinations:* " + strings.Join(comparison.PopularDestinations, ", "))
		}
		return sb.String()
	}

	verdict := ""
	switch comparison.Recommendation {
	case models.PriceCheaper:
		verdict = fmt.Sprintf("💰 *Great news!* We can save you ₹%s (%.0f%%).\n\nSay \"*book with new price*\" to rebook at our price!",
			models.FormatAmount(comparison.PriceDifference), comparison.SavingsPercent)
	case models.PriceSimilar:
		verdict = "👍 Your ticket price is in line with our best fare."
	default:
		verdict = "✅ Your ticket is already cheaper than our best fare. Nice deal!"
	}

	return fmt.Sprintf(`📊 *Price Comparison*

✈️ *Your Ticket:* %s %s
🛫 *Route:* %s → %s
💵 *Your Price:* ₹%s
🏷️ *Our Best Price:* ₹%s

%s`,
		ticket.Airline, ticket.FlightNumber,
		ticket.OriginCity, ticket.DestinationCity,
		models.FormatAmount(comparison.TicketPrice),
		models.FormatAmount(comparison.BestSystemPrice),
		verdict)
}
