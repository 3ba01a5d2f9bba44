package main

import (
	"fmt"
	"log"
	"regexp"
	"strings"
)

// feedSource supplies raw page snapshots of the search feed. The browser
// session implements it; tests script it.
type feedSource interface {
	PageHTML() (string, error)
	ScrollBottom() error
}

// RunOptions configure one scraping run.
type RunOptions struct {
	Keyword    string
	MaxPosts   int
	MaxScrolls int
	CSVPath    string
	ReportPath string
}

// Processor owns the pipeline for one run: snapshot, extract, dedupe,
// classify, collect, then write the CSV and report. The dedupe set is
// created at run start and discarded with the processor.
type Processor struct {
	source     feedSource
	extractor  *extractor
	classifier *classifier
	settings   *Settings
}

// NewProcessor wires the pipeline around a feed source and a scorer.
func NewProcessor(source feedSource, scorer Scorer, settings *Settings) *Processor {
	return &Processor{
		source:     source,
		extractor:  newExtractor(),
		classifier: newClassifier(scorer, settings.Thresholds),
		settings:   settings,
	}
}

// Run executes one end-to-end pass. It stops when the post target is
// reached, the scroll budget is exhausted, or too many consecutive passes
// bring nothing new. Records are written in discovery order.
func (p *Processor) Run(opts RunOptions) (RunStats, error) {
	var (
		stats   RunStats
		records []PostRecord
		noNew   int
	)
	dedupe := newDeduplicator()

	log.Printf("Collecting posts for %q (max %d)...", opts.Keyword, opts.MaxPosts)

	for len(records) < opts.MaxPosts && stats.ScrollPasses < opts.MaxScrolls && noNew < p.settings.MaxNoNewPosts {
		pageHTML, err := p.source.PageHTML()
		if err != nil {
			return stats, fmt.Errorf("reading feed: %w", err)
		}

		extracted, skipped, err := p.extractor.extractPage(pageHTML)
		if err != nil {
			return stats, fmt.Errorf("extracting posts: %w", err)
		}
		stats.Skipped += skipped

		newThisPass := 0
		for _, record := range extracted {
			if len(records) >= opts.MaxPosts {
				break
			}
			if !dedupe.accept(record.ID) {
				stats.Duplicates++
				continue
			}

			record.Sentiment, record.Score = p.classifier.classify(record.Content)
			records = append(records, record)
			newThisPass++

			log.Printf("✓ [%d/%d] post %s (%s %.3f): %s",
				len(records), opts.MaxPosts, record.ID,
				record.Sentiment, record.Score,
				contentPreview(record.Content, 70))
		}

		if newThisPass == 0 {
			noNew++
		} else {
			noNew = 0
		}

		if len(records) < opts.MaxPosts {
			if err := p.source.ScrollBottom(); err != nil {
				return stats, fmt.Errorf("loading more posts: %w", err)
			}
			stats.ScrollPasses++
		}
	}

	stats.Collected = dedupe.size()
	log.Printf("Collected %d unique posts (%d scroll passes, %d skipped, %d duplicate sightings)",
		stats.Collected, stats.ScrollPasses, stats.Skipped, stats.Duplicates)

	if err := writeRecordsCSV(opts.CSVPath, records); err != nil {
		return stats, err
	}
	log.Printf("✓ CSV written: %s", opts.CSVPath)

	s := summarize(records, opts.CSVPath, p.settings.Thresholds)
	if err := writeReport(opts.ReportPath, s); err != nil {
		return stats, err
	}
	log.Printf("✓ Report written: %s", opts.ReportPath)
	log.Printf("Summary: Total: %d, Positive: %d, Negative: %d, Neutral: %d",
		s.Total, s.Positive, s.Negative, s.Neutral)

	return stats, nil
}

// backfillSentiment classifies every record whose sentiment is still unset
// and returns how many rows changed. Used by the report subcommand's
// --update mode.
func backfillSentiment(records []PostRecord, c *classifier) int {
	updated := 0
	for i := range records {
		if records[i].Sentiment != "" {
			continue
		}
		records[i].Sentiment, records[i].Score = c.classify(records[i].Content)
		updated++
	}
	return updated
}

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// keywordSlug turns a search keyword into a filename-safe slug.
func keywordSlug(keyword string) string {
	slug := strings.ToLower(strings.TrimSpace(keyword))
	slug = slugPattern.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		return "posts"
	}
	return slug
}
