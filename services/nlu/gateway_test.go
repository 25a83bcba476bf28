package nlu

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flywise/models"
)

const analysisReply = `{
  "intent": "flight_booking",
  "extracted_data": {"source_city": "Delhi", "destination_city": "Dubai", "adults": 2},
  "confidence": 0.92,
  "next_question": "What date are you flying?",
  "reasoning": "explicit route"
}`

func TestAnalyzeParsesOracleReply(t *testing.T) {
	oracle := &ScriptedOracle{Replies: []string{analysisReply}}
	g := NewGateway(oracle, time.Second)

	got := g.Analyze(context.Background(), "Delhi to Dubai for 2", models.NLUSlots{})
	assert.Equal(t, models.IntentBooking, got.Intent)
	assert.Equal(t, "Delhi", got.Extracted.SourceCity)
	assert.Equal(t, "Dubai", got.Extracted.DestinationCity)
	assert.Equal(t, 2, got.Extracted.Adults)
	assert.InDelta(t, 0.92, got.Confidence, 0.001)
}

func TestAnalyzeStripsCodeFences(t *testing.T) {
	oracle := &ScriptedOracle{Replies: []string{"```json\n" + analysisReply + "\n```"}}
	g := NewGateway(oracle, time.Second)

	got := g.Analyze(context.Background(), "Delhi to Dubai", models.NLUSlots{})
	assert.Equal(t, "Dubai", got.Extracted.DestinationCity)
}

func TestAnalyzeNormalizesUnknownIntent(t *testing.T) {
	oracle := &ScriptedOracle{Replies: []string{`{"intent": "chitchat", "confidence": 0.8}`}}
	g := NewGateway(oracle, time.Second)

	got := g.Analyze(context.Background(), "how are you", models.NLUSlots{})
	assert.Equal(t, models.IntentOther, got.Intent)
}

func TestAnalyzeFallsBackOnError(t *testing.T) {
	oracle := &ScriptedOracle{Err: errors.New("quota exceeded")}
	g := NewGateway(oracle, time.Second)

	got := g.Analyze(context.Background(), "hi", models.NLUSlots{})
	assert.Equal(t, FallbackAnalysis(), got)
}

func TestAnalyzeFallsBackOnGarbage(t *testing.T) {
	oracle := &ScriptedOracle{Replies: []string{"I think the customer wants a flight."}}
	g := NewGateway(oracle, time.Second)

	got := g.Analyze(context.Background(), "hi", models.NLUSlots{})
	assert.Equal(t, FallbackAnalysis(), got)
}

func TestAnalyzeNilOracle(t *testing.T) {
	g := NewGateway(nil, 0)

	got := g.Analyze(context.Background(), "hi", models.NLUSlots{})
	assert.Equal(t, models.IntentBooking, got.Intent)
	assert.Equal(t, "Which city are you flying from?", got.NextQuestion)
}

func TestAnalyzeSendsKnownSlots(t *testing.T) {
	oracle := &ScriptedOracle{Replies: []string{analysisReply}}
	g := NewGateway(oracle, time.Second)

	g.Analyze(context.Background(), "tomorrow", models.NLUSlots{SourceCity: "Delhi"})
	require.Len(t, oracle.Calls, 1)
	assert.Contains(t, oracle.Calls[0], "Delhi")
	assert.Contains(t, oracle.Calls[0], "tomorrow")
}
