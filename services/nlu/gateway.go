package nlu

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"flywise/models"
	"flywise/utils"

	"go.uber.org/zap"
)

const analysisPrompt = `You are a flight booking assistant analyzing a customer message.

Customer message: %q

Known booking details so far:
- Source city: %s
- Destination city: %s
- Departure date: %s

Respond with ONLY a JSON object, no prose, using exactly this shape:
{
  "intent": "flight_booking" or "other",
  "extracted_data": {
    "source_city": "" or city name,
    "destination_city": "" or city name,
    "departure_date": "" or YYYY-MM-DD,
    "adults": 0 or a number,
    "children": 0 or a number,
    "infants": 0 or a number
  },
  "confidence": 0.0 to 1.0,
  "next_question": "the single best question to ask next",
  "reasoning": "one short sentence"
}`

// Gateway wraps the oracle with a timeout and a scripted fallback so a
// slow or failing model can never stall a conversation turn.
type Gateway struct {
	oracle  Oracle
	timeout time.Duration
}

func NewGateway(oracle Oracle, timeout time.Duration) *Gateway {
	if timeout <= 0 {
		timeout = 8 * time.Second
	}
	return &Gateway{oracle: oracle, timeout: timeout}
}

// Analyze asks the oracle to classify the utterance against the known slots.
// Any failure (no oracle, timeout, transport error, unparseable reply)
// returns the fallback analysis; the caller always gets a usable result.
func (g *Gateway) Analyze(ctx context.Context, utterance string, known models.NLUSlots) models.NLUAnalysis {
	if g == nil || g.oracle == nil {
		return FallbackAnalysis()
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	prompt := fmt.Sprintf(analysisPrompt, utterance,
		orUnknown(known.SourceCity), orUnknown(known.DestinationCity), orUnknown(known.DepartureDate))

	raw, err := g.oracle.GenerateContent(ctx, prompt)
	if err != nil {
		utils.GetLogger().Warn("NLU oracle call failed, using fallback", zap.Error(err))
		return FallbackAnalysis()
	}

	analysis, err := parseAnalysis(raw)
	if err != nil {
		utils.GetLogger().Warn("NLU oracle returned unparseable analysis",
			zap.Error(err), zap.String("raw", truncate(raw, 200)))
		return FallbackAnalysis()
	}
	return analysis
}

// FallbackAnalysis is the scripted result used whenever the oracle is
// unavailable. It assumes booking intent so the deterministic flow can
// keep collecting slots.
func FallbackAnalysis() models.NLUAnalysis {
	return models.NLUAnalysis{
		Intent:       models.IntentBooking,
		Confidence:   0.5,
		NextQuestion: "Which city are you flying from?",
		Reasoning:    "fallback analysis, oracle unavailable",
	}
}

func parseAnalysis(raw string) (models.NLUAnalysis, error) {
	cleaned := stripFences(raw)
	var analysis models.NLUAnalysis
	if err := json.Unmarshal([]byte(cleaned), &analysis); err != nil {
		return models.NLUAnalysis{}, fmt.Errorf("decode analysis: %w", err)
	}
	if analysis.Intent != models.IntentBooking {
		analysis.Intent = models.IntentOther
	}
	return analysis, nil
}

// stripFences removes a surrounding ```json ... ``` block if the model
// wrapped its reply in one.
func stripFences(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func orUnknown(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
