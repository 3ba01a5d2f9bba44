package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// scriptedSource replays a fixed sequence of page snapshots; once the
// sequence is exhausted every further pass sees an empty feed.
type scriptedSource struct {
	pages []string
	pos   int
}

func (s *scriptedSource) PageHTML() (string, error) {
	if s.pos < len(s.pages) {
		return s.pages[s.pos], nil
	}
	return feedPage(), nil
}

func (s *scriptedSource) ScrollBottom() error {
	s.pos++
	return nil
}

// scriptedScorer returns a canned score per exact text.
type scriptedScorer struct {
	scores map[string]float64
}

func (s *scriptedScorer) Score(text string) (float64, error) {
	return s.scores[text], nil
}

func testSettings() *Settings {
	return &Settings{
		OutputDirectory: "data",
		MaxNoNewPosts:   2,
	}
}

func TestProcessorRun(t *testing.T) {
	source := &scriptedSource{pages: []string{
		feedPage(
			postFixture{
				DataURN:       "urn:li:activity:1",
				Author:        "Jane Doe Jane Doe",
				ContentHTML:   "Great news for our team!",
				ReactionLabel: "12 reactions",
			},
		),
		feedPage(
			postFixture{ // same post surfaces again on the next pass
				DataURN:     "urn:li:activity:1",
				Author:      "Jane Doe Jane Doe",
				ContentHTML: "Great news for our team!",
			},
			postFixture{
				DataURN:       "urn:li:activity:2",
				Author:        "John Smith John Smith",
				ContentHTML:   "Layoffs are terrible.",
				ReactionLabel: "3 reactions",
			},
		),
	}}
	scorer := &scriptedScorer{scores: map[string]float64{
		"Great news for our team!": 0.7,
		"Layoffs are terrible.":    -0.5,
	}}

	dir := t.TempDir()
	opts := RunOptions{
		Keyword:    "acme",
		MaxPosts:   10,
		MaxScrolls: 20,
		CSVPath:    filepath.Join(dir, "acme_posts.csv"),
		ReportPath: filepath.Join(dir, "acme_posts_sentiment_report.txt"),
	}

	stats, err := NewProcessor(source, scorer, testSettings()).Run(opts)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if stats.Collected != 2 {
		t.Errorf("Collected = %d, want 2", stats.Collected)
	}
	if stats.Duplicates != 1 {
		t.Errorf("Duplicates = %d, want 1", stats.Duplicates)
	}
	if stats.Skipped != 0 {
		t.Errorf("Skipped = %d, want 0", stats.Skipped)
	}

	records, err := readRecordsCSV(opts.CSVPath)
	if err != nil {
		t.Fatalf("readRecordsCSV() error = %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("CSV has %d rows, want 2", len(records))
	}
	if records[0].ID != "1" || records[0].Sentiment != SentimentPositive {
		t.Errorf("row 0 = id %q sentiment %q, want id 1 positive", records[0].ID, records[0].Sentiment)
	}
	if records[1].ID != "2" || records[1].Sentiment != SentimentNegative {
		t.Errorf("row 1 = id %q sentiment %q, want id 2 negative", records[1].ID, records[1].Sentiment)
	}
	if records[0].AuthorName != "Jane Doe" {
		t.Errorf("row 0 author = %q, want Jane Doe", records[0].AuthorName)
	}

	report, err := os.ReadFile(opts.ReportPath)
	if err != nil {
		t.Fatalf("reading report: %v", err)
	}
	if !strings.Contains(string(report), "Total: 2, Positive: 1, Negative: 1, Neutral: 0") {
		t.Errorf("report missing summary line:\n%s", report)
	}
}

func TestProcessorRunStopsAtMaxPosts(t *testing.T) {
	source := &scriptedSource{pages: []string{
		feedPage(
			postFixture{DataURN: "urn:li:activity:1", ContentHTML: "first"},
			postFixture{DataURN: "urn:li:activity:2", ContentHTML: "second"},
			postFixture{DataURN: "urn:li:activity:3", ContentHTML: "third"},
		),
	}}

	dir := t.TempDir()
	opts := RunOptions{
		Keyword:    "acme",
		MaxPosts:   2,
		MaxScrolls: 20,
		CSVPath:    filepath.Join(dir, "posts.csv"),
		ReportPath: filepath.Join(dir, "report.txt"),
	}

	stats, err := NewProcessor(source, &scriptedScorer{}, testSettings()).Run(opts)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if stats.Collected != 2 {
		t.Errorf("Collected = %d, want 2", stats.Collected)
	}
	if stats.ScrollPasses != 0 {
		t.Errorf("ScrollPasses = %d, want 0 once the target is reached", stats.ScrollPasses)
	}
}

func TestProcessorRunStopsWhenFeedDriesUp(t *testing.T) {
	source := &scriptedSource{pages: []string{
		feedPage(postFixture{DataURN: "urn:li:activity:1", ContentHTML: "only post"}),
	}}

	dir := t.TempDir()
	opts := RunOptions{
		Keyword:    "acme",
		MaxPosts:   100,
		MaxScrolls: 50,
		CSVPath:    filepath.Join(dir, "posts.csv"),
		ReportPath: filepath.Join(dir, "report.txt"),
	}

	settings := testSettings()
	settings.MaxNoNewPosts = 3
	stats, err := NewProcessor(source, &scriptedScorer{}, settings).Run(opts)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if stats.Collected != 1 {
		t.Errorf("Collected = %d, want 1", stats.Collected)
	}
	if stats.ScrollPasses >= opts.MaxScrolls {
		t.Errorf("ScrollPasses = %d, should stop on empty passes before the scroll budget", stats.ScrollPasses)
	}
}

func TestBackfillSentiment(t *testing.T) {
	records := []PostRecord{
		{ID: "1", Content: "Great news for our team!", Sentiment: SentimentPositive, Score: 0.7},
		{ID: "2", Content: "Layoffs are terrible.", Sentiment: ""},
		{ID: "3", Content: "Quarterly report attached.", Sentiment: ""},
	}
	scorer := &scriptedScorer{scores: map[string]float64{
		"Layoffs are terrible.": -0.5,
	}}

	updated := backfillSentiment(records, newClassifier(scorer, Thresholds{}))

	if updated != 2 {
		t.Errorf("backfillSentiment() = %d, want 2", updated)
	}
	if records[0].Score != 0.7 {
		t.Errorf("already classified record was rescored: %v", records[0].Score)
	}
	if records[1].Sentiment != SentimentNegative {
		t.Errorf("records[1].Sentiment = %q, want negative", records[1].Sentiment)
	}
	if records[2].Sentiment != SentimentNeutral {
		t.Errorf("records[2].Sentiment = %q, want neutral", records[2].Sentiment)
	}
}

func TestKeywordSlug(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"acme", "acme"},
		{"Acme Corp", "acme-corp"},
		{"  AI & ML  ", "ai-ml"},
		{"c++ jobs", "c-jobs"},
		{"", "posts"},
		{"!!!", "posts"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := keywordSlug(tt.input); got != tt.expected {
				t.Errorf("keywordSlug(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
