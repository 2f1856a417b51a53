package respond

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/supportloop/triage/internal/core/model"
	"github.com/supportloop/triage/internal/llm"
)

const promptTemplate = `You are an AI customer support assistant. Based on the customer issue and the related tickets below, produce a JSON object with exactly these fields:
- "issue_summary": a list of short sentences summarizing the issue
- "customer_sentiment": one word describing the customer's mood
- "draft_reply": a polite draft reply to the customer
- "recommended_actions": a list of concrete follow-up actions

Output ONLY the JSON object.

Customer issue:
%s

Related tickets:
%s`

// Responder turns retrieved ticket context into a structured
// AgentResponse via an injected LLM client.
type Responder struct {
	client llm.LLMClient
}

func NewResponder(client llm.LLMClient) *Responder {
	return &Responder{client: client}
}

// Respond never fails: malformed or non-JSON model output is absorbed
// into a degraded response that preserves the raw text in the draft
// reply field.
func (r *Responder) Respond(ctx context.Context, query string, contextDocs []string) model.AgentResponse {
	prompt := fmt.Sprintf(promptTemplate, query, strings.Join(contextDocs, "\n"))

	raw, err := r.client.Generate(ctx, prompt)
	if err != nil {
		log.Printf("Responder call failed: %v", err)
		return degraded(err.Error())
	}

	resp, err := parseResponse(raw)
	if err != nil {
		log.Printf("Responder output not parseable: %v", err)
		return degraded(raw)
	}
	return resp
}

// parseResponse extracts the JSON object from the model output,
// tolerating surrounding markdown fences or prose.
func parseResponse(raw string) (model.AgentResponse, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || start > end {
		return model.AgentResponse{}, fmt.Errorf("no JSON object found in response")
	}

	var resp model.AgentResponse
	if err := json.Unmarshal([]byte(raw[start:end+1]), &resp); err != nil {
		return model.AgentResponse{}, fmt.Errorf("failed to unmarshal JSON: %w", err)
	}
	if resp.CustomerSentiment == "" {
		resp.CustomerSentiment = "Unknown"
	}
	if resp.RecommendedActions == nil {
		resp.RecommendedActions = []string{}
	}
	if resp.IssueSummary == nil {
		resp.IssueSummary = []string{}
	}
	return resp, nil
}

func degraded(raw string) model.AgentResponse {
	return model.AgentResponse{
		IssueSummary:       []string{"Failed to parse JSON."},
		CustomerSentiment:  "Unknown",
		DraftReply:         raw,
		RecommendedActions: []string{},
	}
}
