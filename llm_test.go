package main

import "testing"

func TestClaudeScorerRequestSettings(t *testing.T) {
	scorer := newClaudeScorer("test-key", ScorerSettings{
		Model:       "claude-sonnet-4-20250514",
		MaxTokens:   200,
		Temperature: 0.5,
	})

	settings := scorer.requestSettings()
	if settings.Model != "claude-sonnet-4-20250514" {
		t.Errorf("request Model = %q, want the configured model", settings.Model)
	}
	if settings.MaxTokens != 200 {
		t.Errorf("request MaxTokens = %d, want 200", settings.MaxTokens)
	}
	if settings.Temperature != 0.5 {
		t.Errorf("request Temperature = %v, want 0.5", settings.Temperature)
	}
}

func TestBuildScorerSelectsClaude(t *testing.T) {
	llmSentiment = true
	apiKey = "test-key"
	defer func() {
		llmSentiment = false
		apiKey = ""
	}()

	settings := &Settings{Scorer: ScorerSettings{Model: "claude-sonnet-4-20250514"}}
	scorer, err := buildScorer(settings)
	if err != nil {
		t.Fatalf("buildScorer() error = %v", err)
	}

	cs, ok := scorer.(*claudeScorer)
	if !ok {
		t.Fatalf("buildScorer() = %T, want *claudeScorer", scorer)
	}
	if cs.settings.Model != settings.Scorer.Model {
		t.Errorf("scorer model = %q, want %q", cs.settings.Model, settings.Scorer.Model)
	}
}

func TestParseScoreResponse(t *testing.T) {
	tests := []struct {
		name     string
		response string
		expected float64
		wantErr  bool
	}{
		{"valid", `{"score": 0.7}`, 0.7, false},
		{"negative", `{"score": -0.35}`, -0.35, false},
		{"zero", `{"score": 0}`, 0, false},
		{"clamped high", `{"score": 1.4}`, 1, false},
		{"clamped low", `{"score": -2}`, -1, false},
		{"not json", "the post is positive", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, err := parseScoreResponse(tt.response)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseScoreResponse(%q) error = nil, want error", tt.response)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseScoreResponse(%q) error = %v", tt.response, err)
			}
			if score != tt.expected {
				t.Errorf("parseScoreResponse(%q) = %v, want %v", tt.response, score, tt.expected)
			}
		})
	}
}
