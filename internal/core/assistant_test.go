package core

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/supportloop/triage/internal/core/rank"
	"github.com/supportloop/triage/internal/core/respond"
	"github.com/supportloop/triage/internal/store"
)

func newTestAssistant(embedder *MockEmbedder, llmMock *MockLLM) (*Assistant, *store.TicketStore) {
	s := store.NewTicketStore(store.DemoTickets)
	a := NewAssistant(s, rank.NewRanker(embedder), respond.NewResponder(llmMock))
	return a, s
}

func TestAnalyze_FullCycle(t *testing.T) {
	llmMock := &MockLLM{Response: `{
		"issue_summary": ["Billing issue."],
		"customer_sentiment": "Upset",
		"draft_reply": "We will refund you.",
		"recommended_actions": ["Refund the double charge"]
	}`}
	a, _ := newTestAssistant(&MockEmbedder{Vector: []float32{0.1, 0.2}}, llmMock)

	result := a.Analyze(context.Background(), "customer charged twice", 3)

	assert.Equal(t, "customer charged twice", result.Query)
	assert.Len(t, result.Context, 3)
	assert.Equal(t, "Upset", result.Response.CustomerSentiment)
	assert.Equal(t, []string{"Refund the double charge"}, result.Response.RecommendedActions)

	// Retrieved ticket texts make it into the responder prompt.
	assert.Len(t, llmMock.Prompts, 1)
	for _, doc := range result.Context {
		assert.Contains(t, llmMock.Prompts[0], doc)
	}
}

func TestAnalyze_ConstantEmbeddingsPreserveTicketOrder(t *testing.T) {
	// Identical vectors everywhere means every score ties at 1; the
	// retrieved context must then follow store order.
	a, s := newTestAssistant(&MockEmbedder{Vector: []float32{0.1, 0.1}}, &MockLLM{Response: "{}"})

	result := a.Analyze(context.Background(), "anything", 3)

	tickets := s.List()
	assert.Equal(t, []string{tickets[0].Content, tickets[1].Content, tickets[2].Content}, result.Context)
}

func TestAnalyze_EmbedderDownStillResponds(t *testing.T) {
	llmMock := &MockLLM{Response: `{"draft_reply": "Hello"}`}
	a, _ := newTestAssistant(&MockEmbedder{Err: fmt.Errorf("process exited")}, llmMock)

	result := a.Analyze(context.Background(), "anything", 2)

	assert.Len(t, result.Context, 2)
	assert.Equal(t, "Hello", result.Response.DraftReply)
}

func TestAnalyze_MalformedResponderOutput(t *testing.T) {
	a, _ := newTestAssistant(&MockEmbedder{Vector: []float32{1}}, &MockLLM{Response: "not json"})

	result := a.Analyze(context.Background(), "anything", 1)

	assert.Equal(t, "not json", result.Response.DraftReply)
	assert.Empty(t, result.Response.RecommendedActions)
}
