package model

// AgentResponse is the structured output of the responder: a summary of
// the issue, the perceived customer sentiment, a draft reply, and a list
// of recommended follow-up actions.
type AgentResponse struct {
	IssueSummary       []string `json:"issue_summary"`
	CustomerSentiment  string   `json:"customer_sentiment"`
	DraftReply         string   `json:"draft_reply"`
	RecommendedActions []string `json:"recommended_actions"`
}

// AnalysisResult is what one full retrieve-and-respond cycle produces.
type AnalysisResult struct {
	Query    string        `json:"query"`
	Context  []string      `json:"context"`
	Response AgentResponse `json:"response"`
}
