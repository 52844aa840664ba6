// Package analyze turns a collected device record into a structured health
// verdict, preferring the language-model service and degrading to a
// deterministic rule table when it is unavailable or its reply fails strict
// validation.
package analyze

import (
	"context"
	"encoding/json"
	"strings"

	"codeberg.org/mutker/droidpulse/internal/collect"
	"codeberg.org/mutker/droidpulse/internal/errors"
	"codeberg.org/mutker/droidpulse/internal/logger"
)

// ChatClient submits a single prompt to the language-model service.
type ChatClient interface {
	Configured() bool
	Chat(ctx context.Context, prompt string, temperature float64) (string, error)
}

type Engine struct {
	client      ChatClient
	temperature float64
}

func NewEngine(client ChatClient, temperature float64) *Engine {
	return &Engine{client: client, temperature: temperature}
}

// Analyze never fails: the AI branch is attempted first, and any failure
// there (unconfigured service, transport error, unparsable or invalid reply)
// silently degrades to the rule-based analyzer.
func (e *Engine) Analyze(ctx context.Context, rec *collect.DeviceRecord) *Result {
	if e.client == nil || !e.client.Configured() {
		logger.Info().Msg("AI analysis not configured, using rule-based analysis")
		return RuleAnalysis(rec)
	}

	res, err := e.aiAnalysis(ctx, rec)
	if err != nil {
		logger.Warn().Err(err).Msg("AI analysis unavailable, falling back to rule-based analysis")
		return RuleAnalysis(rec)
	}

	logger.Info().Msg("AI analysis complete")

	return res
}

func (e *Engine) aiAnalysis(ctx context.Context, rec *collect.DeviceRecord) (*Result, error) {
	errFactory := errors.New()

	prompt, err := BuildPrompt(rec)
	if err != nil {
		return nil, errFactory.Wrap(errors.ErrAnalysisParse, err)
	}

	reply, err := e.client.Chat(ctx, prompt, e.temperature)
	if err != nil {
		return nil, err
	}

	var res Result
	if err := json.Unmarshal([]byte(StripFences(reply)), &res); err != nil {
		return nil, errFactory.Wrap(errors.ErrAnalysisParse, err)
	}
	if err := res.Validate(); err != nil {
		return nil, err
	}
	res.Source = SourceAI

	return &res, nil
}

// StripFences removes an optional markdown code fence wrapping, which models
// sometimes add despite instructions.
func StripFences(reply string) string {
	reply = strings.TrimSpace(reply)

	if strings.HasPrefix(reply, "```") {
		if _, rest, ok := strings.Cut(reply, "\n"); ok {
			reply = rest
		}
	}
	if strings.HasSuffix(reply, "```") {
		if idx := strings.LastIndex(reply, "```"); idx >= 0 {
			reply = reply[:idx]
		}
	}

	return strings.TrimSpace(reply)
}
