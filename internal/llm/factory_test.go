package llm

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/supportloop/triage/internal/config"
)

func TestNewClient_DefaultsToCanned(t *testing.T) {
	gen, emb, err := NewClient(context.Background(), config.LLMConfig{})
	require.NoError(t, err)
	assert.IsType(t, &CannedClient{}, gen)
	assert.IsType(t, &CannedClient{}, emb)
}

func TestNewClient_UnsupportedProvider(t *testing.T) {
	_, _, err := NewClient(context.Background(), config.LLMConfig{Provider: "mainframe"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported llm provider")
}

func TestNewClient_ClaudeHasNoEmbedder(t *testing.T) {
	gen, emb, err := NewClient(context.Background(), config.LLMConfig{Provider: "claude", APIKey: "k", Model: "m"})
	require.NoError(t, err)
	assert.NotNil(t, gen)
	assert.Nil(t, emb)
}

func TestCannedClient_GenerateIsValidJSON(t *testing.T) {
	c := NewCannedClient()

	raw, err := c.Generate(context.Background(), "anything")
	require.NoError(t, err)

	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &payload))
	assert.Contains(t, payload, "issue_summary")
	assert.Contains(t, payload, "customer_sentiment")
	assert.Contains(t, payload, "draft_reply")
	assert.Contains(t, payload, "recommended_actions")
}

func TestCannedClient_EmbedDimension(t *testing.T) {
	c := NewCannedClient()

	vec, err := c.Embed(context.Background(), "text")
	require.NoError(t, err)
	assert.Len(t, vec, 768)
	assert.Equal(t, float32(0.1), vec[0])
}
