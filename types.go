package main

import "time"

// Sentiment is the classification assigned to a post's content.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// PostRecord is the normalized representation of one scraped post.
// Records are immutable once written to the CSV.
type PostRecord struct {
	ID               string
	AuthorName       string
	AuthorProfileURL string
	JobTitle         string
	Content          string
	ReactionCount    int
	Sentiment        Sentiment
	Score            float64
	CollectedAt      time.Time
}

// RunStats tracks the outcome of one scraping run.
type RunStats struct {
	ScrollPasses int
	Skipped      int // wrappers dropped for missing required fields
	Duplicates   int
	Collected    int
}
