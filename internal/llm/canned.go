package llm

import (
	"context"
)

const cannedDimension = 768

// CannedClient is the offline demo provider. Generate returns a fixed
// JSON payload and Embed returns a constant vector, so the full
// retrieve-and-respond cycle runs with no external process.
type CannedClient struct{}

func NewCannedClient() *CannedClient {
	return &CannedClient{}
}

func (c *CannedClient) Generate(ctx context.Context, prompt string) (string, error) {
	return `{
  "issue_summary": ["The customer reports login crashes and billing issues."],
  "customer_sentiment": "Frustrated",
  "draft_reply": "Dear Customer, we are investigating your issue. Regarding the app crash, our engineers are working on a fix. For billing concerns, our support team will resolve the double charge promptly.",
  "recommended_actions": ["Fix the app crash issue", "Resolve the double charge", "Follow up with the customer to ensure satisfaction"]
}`, nil
}

func (c *CannedClient) Embed(ctx context.Context, text string) ([]float32, error) {
	v := make([]float32, cannedDimension)
	for i := range v {
		v[i] = 0.1
	}
	return v, nil
}
