package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aktagon/llmkit/anthropic"
	"github.com/aktagon/llmkit/anthropic/types"
)

const scorerSystemPrompt = `You rate the sentiment of social media posts.
Given a post, respond with a single polarity score between -1.0 (very
negative) and 1.0 (very positive). 0.0 means neutral. Judge only the text
you are given.`

// claudeScorer delegates polarity scoring to Claude, constrained by a JSON
// output schema. Selected with --llm-sentiment; the lexicon scorer remains
// the default.
type claudeScorer struct {
	apiKey   string
	settings ScorerSettings
}

func newClaudeScorer(apiKey string, settings ScorerSettings) *claudeScorer {
	return &claudeScorer{apiKey: apiKey, settings: settings}
}

// requestSettings maps the scorer configuration onto one API request, so the
// configured model is what actually gets called.
func (c *claudeScorer) requestSettings() types.RequestSettings {
	return types.RequestSettings{
		Model:       c.settings.Model,
		MaxTokens:   c.settings.MaxTokens,
		Temperature: c.settings.Temperature,
	}
}

func (c *claudeScorer) Score(text string) (float64, error) {
	userPrompt := fmt.Sprintf("Post:\n%s", text)
	response, err := anthropic.PromptWithSettings(scorerSystemPrompt, userPrompt,
		strings.TrimSpace(sentimentSchema), c.apiKey, c.requestSettings())
	if err != nil {
		return 0, fmt.Errorf("scorer request failed: %w", err)
	}

	if len(response.Content) == 0 {
		return 0, fmt.Errorf("no content in scorer response")
	}
	return parseScoreResponse(response.Content[0].Text)
}

// parseScoreResponse decodes the model's JSON answer and clamps the score
// into [-1, 1] in case the model wanders outside the schema bounds.
func parseScoreResponse(text string) (float64, error) {
	var out struct {
		Score float64 `json:"score"`
	}
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		return 0, fmt.Errorf("parsing score JSON: %w", err)
	}

	if out.Score > 1 {
		out.Score = 1
	}
	if out.Score < -1 {
		out.Score = -1
	}
	return out.Score, nil
}
