package main

import (
	"math"

	"github.com/jonreiter/govader"
)

// Scorer produces a polarity score in [-1.0, 1.0] for a piece of text.
type Scorer interface {
	Score(text string) (float64, error)
}

// vaderScorer scores text with the VADER lexicon. It is the default scorer:
// deterministic, offline, and cheap enough to run per post.
type vaderScorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func newVaderScorer() *vaderScorer {
	return &vaderScorer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

func (v *vaderScorer) Score(text string) (float64, error) {
	return v.analyzer.PolarityScores(text).Compound, nil
}

// classifier maps a scorer's continuous output to a Sentiment through the
// configured threshold bands.
type classifier struct {
	scorer     Scorer
	thresholds Thresholds
}

func newClassifier(scorer Scorer, thresholds Thresholds) *classifier {
	return &classifier{scorer: scorer, thresholds: thresholds}
}

// classify is total: empty text and scorer failures classify neutral with a
// zero score instead of propagating an error, so the pipeline never stops on
// a single post. The score is rounded to three decimals.
func (c *classifier) classify(text string) (Sentiment, float64) {
	if text == "" {
		return SentimentNeutral, 0
	}

	score, err := c.scorer.Score(text)
	if err != nil {
		debugLog("scoring failed, classifying neutral: %v", err)
		return SentimentNeutral, 0
	}

	score = math.Round(score*1000) / 1000
	return sentimentFor(score, c.thresholds), score
}

// sentimentFor applies the threshold bands to a score.
func sentimentFor(score float64, t Thresholds) Sentiment {
	switch {
	case score > t.Positive:
		return SentimentPositive
	case score < t.Negative:
		return SentimentNegative
	default:
		return SentimentNeutral
	}
}
