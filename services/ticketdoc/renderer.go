package ticketdoc

import (
	"bytes"
	"fmt"
	"time"

	"flywise/models"

	"github.com/jung-kurt/gofpdf"
)

// Renderer produces the e-ticket PDF delivered after a rebooking.
type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Render(booking models.Booking) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 24)
	pdf.SetTextColor(0, 0, 128)
	pdf.CellFormat(0, 14, "FLIGHT TICKET", "", 1, "C", false, 0, "")
	pdf.Ln(6)

	r.section(pdf, "BOOKING DETAILS")
	r.rows(pdf, [][2]string{
		{"PNR:", booking.PNR},
		{"Booking Date:", booking.BookingDate.Format("2006-01-02")},
		{"Booking Time:", booking.BookingDate.Format("15:04")},
		{"Office ID:", orNA(booking.OfficeID)},
		{"Status:", booking.Status},
	})

	r.section(pdf, "FLIGHT DETAILS")
	f := booking.Flight
	r.rows(pdf, [][2]string{
		{"Airline:", f.Airline},
		{"Flight Number:", f.FlightID},
		{"From:", f.Origin},
		{"To:", f.Destination},
		{"Departure Time:", f.DepartureTime},
		{"Arrival Time:", f.ArrivalTime},
		{"Duration:", f.Duration},
		{"Aircraft:", f.Aircraft},
		{"Fare:", fmt.Sprintf("INR %s", models.FormatAmount(f.Price))},
	})

	r.section(pdf, "PASSENGERS")
	for i, p := range booking.Passengers {
		r.rows(pdf, [][2]string{
			{fmt.Sprintf("Passenger %d:", i + 1), fmt.Sprintf("%s %s", p.FirstName, p.LastName)},
		})
	}

	if len(booking.SpecialRequests) > 0 {
		r.section(pdf, "SPECIAL REQUESTS")
		for _, ssr := range booking.SpecialRequests {
			r.rows(pdf, [][2]string{{ssr.Code + ":", ssr.Description}})
		}
	}

	pdf.Ln(8)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.SetTextColor(100, 100, 100)
	pdf.CellFormat(0, 6, fmt.Sprintf("Generated %s - have a pleasant flight!",
		time.Now().Format("2006-01-02 15:04")), "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render ticket pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) section(pdf *gofpdf.Fpdf, title string) {
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(0, 0, 128)
	pdf.CellFormat(0, 10, title, "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}

func (r *Renderer) rows(pdf *gofpdf.Fpdf, rows [][2]string) {
	pdf.SetFont("Helvetica", "", 11)
	for _, row := range rows {
		pdf.SetFillColor(230, 230, 230)
		pdf.CellFormat(50, 8, row[0], "1", 0, "L", true, 0, "")
		pdf.CellFormat(90, 8, row[1], "1", 1, "L", false, 0, "")
	}
}

func orNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}
