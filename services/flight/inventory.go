package flight

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"flywise/models"
)

// Inventory is the in-memory flight schedule, loaded once at startup.
// All lookups key on uppercase IATA codes.
type Inventory struct {
	flights []models.Flight
}

func NewInventory(flights []models.Flight) *Inventory {
	return &Inventory{flights: flights}
}

// LoadInventory reads the flight schedule from a JSON file.
func LoadInventory(path string) (*Inventory, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read flight inventory: %w", err)
	}
	var flights []models.Flight
	if err := json.Unmarshal(raw, &flights); err != nil {
		return nil, fmt.Errorf("decode flight inventory: %w", err)
	}
	return &Inventory{flights: flights}, nil
}

// AdjustedPrice computes the total fare for a passenger mix. Children pay
// 75% of the adult fare, infants 10%, truncated to whole currency units.
func AdjustedPrice(base, adults, children, infants int) int {
	total := float64(base)*float64(adults) +
		float64(base)*0.75*float64(children) +
		float64(base)*0.10*float64(infants)
	return int(total)
}

// Search returns flights on the route with prices adjusted for the passenger
// mix, cheapest first. Route codes are case-insensitive.
func (inv *Inventory) Search(origin, destination string, adults, children, infants int) []models.Flight {
	origin = strings.ToUpper(origin)
	destination = strings.ToUpper(destination)
	if adults <= 0 {
		adults = 1
	}

	var results []models.Flight
	for _, f := range inv.flights {
		if f.Origin != origin || f.Destination != destination {
			continue
		}
		adjusted := f
		adjusted.Price = AdjustedPrice(f.Price, adults, children, infants)
		results = append(results, adjusted)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Price < results[j].Price })
	return results
}

// ValidateRoute reports whether at least one flight serves the route.
func (inv *Inventory) ValidateRoute(origin, destination string) bool {
	origin = strings.ToUpper(origin)
	destination = strings.ToUpper(destination)
	for _, f := range inv.flights {
		if f.Origin == origin && f.Destination == destination {
			return true
		}
	}
	return false
}

// DestinationsFrom lists the destination codes reachable from an origin.
func (inv *Inventory) DestinationsFrom(origin string) []string {
	origin = strings.ToUpper(origin)
	seen := make(map[string]bool)
	var out []string
	for _, f := range inv.flights {
		if f.Origin == origin && !seen[f.Destination] {
			seen[f.Destination] = true
			out = append(out, f.Destination)
		}
	}
	sort.Strings(out)
	return out
}

// OriginsTo lists the origin codes with service to a destination.
func (inv *Inventory) OriginsTo(destination string) []string {
	destination = strings.ToUpper(destination)
	seen := make(map[string]bool)
	var out []string
	for _, f := range inv.flights {
		if f.Destination == destination && !seen[f.Origin] {
			seen[f.Origin] = true
			out = append(out, f.Origin)
		}
	}
	sort.Strings(out)
	return out
}

// PriceRange returns the lowest and highest base fare on a route, and
// whether the route is served at all.
func (inv *Inventory) PriceRange(origin, destination string) (min, max int, ok bool) {
	origin = strings.ToUpper(origin)
	destination = strings.ToUpper(destination)
	for _, f := range inv.flights {
		if f.Origin != origin || f.Destination != destination {
			continue
		}
		if !ok {
			min, max, ok = f.Price, f.Price, true
			continue
		}
		if f.Price < min {
			min = f.Price
		}
		if f.Price > max {
			max = f.Price
		}
	}
	return min, max, ok
}

// FormatFlights renders a numbered list of options for the chat channel.
func FormatFlights(flights []models.Flight) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🎯 Found %d flights for you!\n", len(flights)))
	for i, f := range flights {
		sb.WriteString("\n")
		sb.WriteString(f.FormatForDisplay(i + 1))
		sb.WriteString("\n")
	}
	sb.WriteString("\nReply with the option number to select a flight (e.g. \"1\" or \"option 2\").")
	return sb.String()
}
