package analyze_test

import (
	"context"
	"testing"

	"codeberg.org/mutker/droidpulse/internal/analyze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubClient scripts the chat reply for engine tests.
type stubClient struct {
	configured bool
	reply      string
	err        error
	prompts    []string
}

func (s *stubClient) Configured() bool { return s.configured }

func (s *stubClient) Chat(_ context.Context, prompt string, _ float64) (string, error) {
	s.prompts = append(s.prompts, prompt)
	return s.reply, s.err
}

const validReply = `{
  "health_score": 9,
  "summary": "Device is in excellent condition.",
  "critical_issues": [],
  "battery_analysis": {"status": "good", "detail": "Battery healthy"},
  "storage_analysis": {"status": "good", "detail": "Plenty of space"},
  "memory_analysis": {"status": "good", "detail": "Normal usage"},
  "network_analysis": {"status": "good", "detail": "Strong signal"},
  "security_findings": [],
  "recommendations": ["Keep the system updated"]
}`

func TestAnalyzeUsesAIWhenConfigured(t *testing.T) {
	client := &stubClient{configured: true, reply: validReply}
	engine := analyze.NewEngine(client, 0.3)

	res := engine.Analyze(context.Background(), healthyRecord())

	assert.Equal(t, analyze.SourceAI, res.Source)
	assert.Equal(t, 9, res.HealthScore)
	assert.Equal(t, "Device is in excellent condition.", res.Summary)
	require.Len(t, client.prompts, 1)
	assert.Contains(t, client.prompts[0], "DEVICE DATA:")
	assert.Contains(t, client.prompts[0], "HomeNet")
}

func TestAnalyzeFallsBackWhenUnconfigured(t *testing.T) {
	engine := analyze.NewEngine(&stubClient{configured: false}, 0.3)

	res := engine.Analyze(context.Background(), healthyRecord())

	assert.Equal(t, analyze.SourceRules, res.Source)
	assert.Equal(t, 10, res.HealthScore)
}

func TestAnalyzeFallsBackOnChatError(t *testing.T) {
	client := &stubClient{configured: true, err: assert.AnError}
	engine := analyze.NewEngine(client, 0.3)

	res := engine.Analyze(context.Background(), healthyRecord())

	assert.Equal(t, analyze.SourceRules, res.Source)
}

func TestAnalyzeFallsBackOnGarbageReply(t *testing.T) {
	client := &stubClient{configured: true, reply: "I cannot analyze this device, sorry."}
	engine := analyze.NewEngine(client, 0.3)

	res := engine.Analyze(context.Background(), healthyRecord())

	assert.Equal(t, analyze.SourceRules, res.Source)
}

func TestAnalyzeFallsBackOnInvalidShape(t *testing.T) {
	// Parses as JSON but fails validation: no health score.
	client := &stubClient{configured: true, reply: `{"summary": "ok"}`}
	engine := analyze.NewEngine(client, 0.3)

	res := engine.Analyze(context.Background(), healthyRecord())

	assert.Equal(t, analyze.SourceRules, res.Source)
}

func TestAnalyzeAcceptsFencedReply(t *testing.T) {
	client := &stubClient{configured: true, reply: "```json\n" + validReply + "\n```"}
	engine := analyze.NewEngine(client, 0.3)

	res := engine.Analyze(context.Background(), healthyRecord())

	assert.Equal(t, analyze.SourceAI, res.Source)
	assert.Equal(t, 9, res.HealthScore)
}

func TestStripFences(t *testing.T) {
	assert.Equal(t, `{"a":1}`, analyze.StripFences("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, analyze.StripFences("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, analyze.StripFences(`{"a":1}`))
	assert.Equal(t, `{"a":1}`, analyze.StripFences("  {\"a\":1}  "))
}
