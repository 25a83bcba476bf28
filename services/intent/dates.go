package intent

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

var (
	numericDatePattern   = regexp.MustCompile(`\b(\d{1,2})[-/](\d{1,2})(?:[-/](\d{2,4}))?\b`)
	dayMonthPattern      = regexp.MustCompile(`\b(\d{1,2})(?:st|nd|rd|th)?\s+(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*(?:\s+(\d{2,4}))?\b`)
	monthDayPattern      = regexp.MustCompile(`\b(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\s+(\d{1,2})(?:st|nd|rd|th)?(?:\s+(\d{2,4}))?\b`)
	relativeDatePattern  = regexp.MustCompile(`\b(today|tomorrow|next week|next month)\b`)
)

var monthsByPrefix = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

// ExtractDate finds a travel date in the message and returns it in
// YYYY-MM-DD form. Explicit numeric dates are tried first, then month-name
// forms in either order, then relative keywords. The returned date is never
// in the past: a date whose year has already passed rolls forward to the
// current year, and if it is still historical it rolls one more year.
func (e *Extractor) ExtractDate(message string) (string, bool) {
	lower := strings.ToLower(message)
	today := e.today()

	if m := relativeDatePattern.FindString(lower); m != "" {
		switch m {
		case "today":
			return formatDate(today), true
		case "tomorrow":
			return formatDate(today.AddDate(0, 0, 1)), true
		case "next week":
			return formatDate(today.AddDate(0, 0, 7)), true
		case "next month":
			return formatDate(today.AddDate(0, 0, 30)), true
		}
	}

	if m := numericDatePattern.FindStringSubmatch(lower); m != nil {
		candidate := m[0]
		if m[3] == "" {
			candidate = fmt.Sprintf("%s/%s/%d", m[1], m[2], today.Year())
		}
		if t, err := dateparse.ParseAny(candidate); err == nil {
			return formatDate(e.rollForward(t)), true
		}
	}

	if m := dayMonthPattern.FindStringSubmatch(lower); m != nil {
		if t, ok := e.composeDate(m[2], m[1], m[3]); ok {
			return formatDate(e.rollForward(t)), true
		}
	}

	if m := monthDayPattern.FindStringSubmatch(lower); m != nil {
		if t, ok := e.composeDate(m[1], m[2], m[3]); ok {
			return formatDate(e.rollForward(t)), true
		}
	}

	return "", false
}

// ParseLenientDate parses a single date expression in any common format,
// used for passenger dates of birth. No roll-forward is applied.
func ParseLenientDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	if t, err := dateparse.ParseAny(value); err == nil {
		return t, true
	}
	for _, layout := range []string{"2-Jan-2006", "2 Jan 2006", "2 January 2006", "02.01.2006"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func (e *Extractor) composeDate(monthText, dayText, yearText string) (time.Time, bool) {
	month, ok := monthsByPrefix[monthText[:3]]
	if !ok {
		return time.Time{}, false
	}
	day := atoiSafe(dayText)
	if day < 1 || day > 31 {
		return time.Time{}, false
	}
	year := atoiSafe(yearText)
	if year == 0 {
		year = e.today().Year()
	} else if year < 100 {
		year += 2000
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local), true
}

// rollForward guarantees the returned date is not historical.
func (e *Extractor) rollForward(t time.Time) time.Time {
	today := e.today()
	if t.Year() < today.Year() {
		t = time.Date(today.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
	}
	if t.Before(today) {
		t = t.AddDate(1, 0, 0)
	}
	return t
}

func (e *Extractor) today() time.Time {
	now := e.now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
}

func formatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

func atoiSafe(s string) int {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0
		}
		n = n*10 + int(r-'0')
	}
	return n
}
