package main

import (
	"bytes"
	"fmt"
	"os"
	"sort"
	"text/template"
	"time"
)

const topAuthorLimit = 10

// authorCount is one entry in the report's top-author list.
type authorCount struct {
	Name  string
	Posts int
}

// summary holds everything the report template renders. It is a pure
// function of the final record sequence plus the threshold configuration.
type summary struct {
	GeneratedAt string
	Source      string

	Total    int
	Positive int
	Negative int
	Neutral  int

	PositivePct  float64
	NegativePct  float64
	NeutralPct   float64
	AverageScore float64
	Overall      string

	TotalReactions int
	AvgReactions   float64
	MaxReactions   int
	MinReactions   int

	AvgPositiveReactions float64
	AvgNegativeReactions float64
	AvgNeutralReactions  float64

	UniqueAuthors int
	TopAuthors    []authorCount

	ContentInsight    string
	EngagementInsight string
}

// summarize tallies the classified records. A record with an unset sentiment
// counts as neutral so the totals always add up.
func summarize(records []PostRecord, source string, thresholds Thresholds) summary {
	s := summary{
		GeneratedAt:  time.Now().UTC().Format(timestampLayout),
		Source:       source,
		Total:        len(records),
		MinReactions: 0,
	}
	if s.Total == 0 {
		s.Overall = "Overall Neutral"
		s.ContentInsight = "No posts collected"
		s.EngagementInsight = "No posts collected"
		return s
	}

	var scoreSum float64
	reactionsBySentiment := map[Sentiment][]int{}
	authors := map[string]int{}
	s.MinReactions = records[0].ReactionCount

	for _, r := range records {
		sentiment := r.Sentiment
		switch sentiment {
		case SentimentPositive:
			s.Positive++
		case SentimentNegative:
			s.Negative++
		default:
			sentiment = SentimentNeutral
			s.Neutral++
		}

		scoreSum += r.Score
		s.TotalReactions += r.ReactionCount
		if r.ReactionCount > s.MaxReactions {
			s.MaxReactions = r.ReactionCount
		}
		if r.ReactionCount < s.MinReactions {
			s.MinReactions = r.ReactionCount
		}
		reactionsBySentiment[sentiment] = append(reactionsBySentiment[sentiment], r.ReactionCount)
		if r.AuthorName != "" {
			authors[r.AuthorName]++
		}
	}

	total := float64(s.Total)
	s.PositivePct = float64(s.Positive) / total * 100
	s.NegativePct = float64(s.Negative) / total * 100
	s.NeutralPct = float64(s.Neutral) / total * 100
	s.AverageScore = scoreSum / total

	switch sentimentFor(s.AverageScore, thresholds) {
	case SentimentPositive:
		s.Overall = "Overall Positive"
	case SentimentNegative:
		s.Overall = "Overall Negative"
	default:
		s.Overall = "Overall Neutral"
	}

	s.AvgReactions = float64(s.TotalReactions) / total
	s.AvgPositiveReactions = average(reactionsBySentiment[SentimentPositive])
	s.AvgNegativeReactions = average(reactionsBySentiment[SentimentNegative])
	s.AvgNeutralReactions = average(reactionsBySentiment[SentimentNeutral])

	s.UniqueAuthors = len(authors)
	s.TopAuthors = topAuthors(authors, topAuthorLimit)

	switch {
	case s.PositivePct > 60:
		s.ContentInsight = "Strong positive sentiment - continue current strategy"
	case s.NegativePct > 40:
		s.ContentInsight = "High negative sentiment - review content strategy"
	default:
		s.ContentInsight = "Mixed sentiment - monitor trends"
	}

	switch {
	case s.AvgPositiveReactions > s.AvgNegativeReactions*1.5:
		s.EngagementInsight = "Positive content generates more engagement"
	case s.AvgNegativeReactions > s.AvgPositiveReactions*1.5:
		s.EngagementInsight = "Negative content generates more engagement"
	default:
		s.EngagementInsight = "Similar engagement across sentiment types"
	}

	return s
}

func average(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	return float64(sum) / float64(len(values))
}

// topAuthors returns the most frequent authors, ties broken by name so the
// report is deterministic.
func topAuthors(counts map[string]int, limit int) []authorCount {
	out := make([]authorCount, 0, len(counts))
	for name, posts := range counts {
		out = append(out, authorCount{Name: name, Posts: posts})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Posts != out[j].Posts {
			return out[i].Posts > out[j].Posts
		}
		return out[i].Name < out[j].Name
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// renderReport executes the embedded report template.
func renderReport(s summary) (string, error) {
	tmpl, err := template.New("report").Parse(defaultReportTemplate)
	if err != nil {
		return "", fmt.Errorf("parsing report template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, s); err != nil {
		return "", fmt.Errorf("executing report template: %w", err)
	}
	return buf.String(), nil
}

// writeReport renders the summary and writes it to path, overwriting any
// existing file.
func writeReport(path string, s summary) error {
	text, err := renderReport(s)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}
